package frame

import (
	"fmt"
	"maps"

	"github.com/matzehuels/framelink/pkg/geom"
)

// Role says where on a member a link attaches.
type Role int

const (
	// RoleStart links meet the member exactly at its start point.
	RoleStart Role = iota
	// RoleSpan links meet the member strictly between its end points.
	RoleSpan
	// RoleEnd links meet the member exactly at its end point.
	RoleEnd
)

// Roles lists the three roles in storage order.
var Roles = [...]Role{RoleStart, RoleSpan, RoleEnd}

func (r Role) String() string {
	switch r {
	case RoleStart:
		return "start"
	case RoleSpan:
		return "span"
	case RoleEnd:
		return "end"
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// Metadata stores free-form attributes attached to a member by the
// surrounding editors. It is never nil once the member is in a model.
type Metadata map[string]any

// Releases records moment releases at the member ends.
type Releases struct {
	Start bool
	End   bool
}

// Member is a single linear structural element.
//
// Geometry (Start, End) and identity (Kind, ID, Name) are what the
// connectivity engine reads. Profile, Orientation, Releases and Meta are
// carried along untouched; changing them never requires recomputing
// adjacency.
type Member struct {
	ID   int
	Name string
	Kind Kind

	Start geom.Point
	End   geom.Point

	Profile     string   // section designation, e.g. "HEA200"
	Orientation float64  // rotation about the member axis, degrees
	Releases    Releases // moment releases
	Meta        Metadata

	StartConnected Names // members meeting this one at Start
	Connected      Names // members meeting this one mid-span
	EndConnected   Names // members meeting this one at End
}

// Link is one adjacency entry seen from the owning member.
type Link struct {
	Name string
	Role Role
}

// Set returns the adjacency set for the given role.
func (m *Member) Set(r Role) *Names {
	switch r {
	case RoleStart:
		return &m.StartConnected
	case RoleEnd:
		return &m.EndConnected
	default:
		return &m.Connected
	}
}

// RoleOf returns the role under which name is recorded.
func (m *Member) RoleOf(name string) (Role, bool) {
	for _, r := range Roles {
		if m.Set(r).Has(name) {
			return r, true
		}
	}
	return 0, false
}

// Links returns every adjacency entry, start first, then span, then end.
func (m *Member) Links() []Link {
	links := make([]Link, 0, m.LinkCount())
	for _, r := range Roles {
		for _, name := range *m.Set(r) {
			links = append(links, Link{Name: name, Role: r})
		}
	}
	return links
}

// LinkCount returns the total number of adjacency entries.
func (m *Member) LinkCount() int {
	return m.StartConnected.Len() + m.Connected.Len() + m.EndConnected.Len()
}

// Unlink removes name from all three sets and reports how many entries were
// removed.
func (m *Member) Unlink(name string) int {
	n := 0
	for _, r := range Roles {
		if m.Set(r).Remove(name) {
			n++
		}
	}
	return n
}

// ClearLinks empties all three adjacency sets.
func (m *Member) ClearLinks() {
	m.StartConnected, m.Connected, m.EndConnected = nil, nil, nil
}

// Length returns the member length in meters.
func (m *Member) Length() float64 { return geom.Distance(m.Start, m.End) }

// SameGeometry reports whether o has exactly the same end points.
func (m *Member) SameGeometry(o *Member) bool {
	return m.Start == o.Start && m.End == o.End
}

// Clone returns a deep copy of m.
func (m *Member) Clone() *Member {
	c := *m
	c.Meta = maps.Clone(m.Meta)
	c.StartConnected = m.StartConnected.Clone()
	c.Connected = m.Connected.Clone()
	c.EndConnected = m.EndConnected.Clone()
	return &c
}

// String returns the member name and geometry, e.g. "B1 (0.000, 3.000, 0.000)->(5.000, 3.000, 0.000)".
func (m *Member) String() string {
	return fmt.Sprintf("%s %v->%v", m.Name, m.Start, m.End)
}
