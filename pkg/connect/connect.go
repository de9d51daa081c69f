package connect

import (
	"time"

	"github.com/matzehuels/framelink/pkg/crossing"
	"github.com/matzehuels/framelink/pkg/frame"
	"github.com/matzehuels/framelink/pkg/geom"
	"github.com/matzehuels/framelink/pkg/observability"
)

// Connect returns a snapshot of model with mem inserted and every junction
// between mem and the existing members recorded on both sides.
//
// mem's own adjacency sets are ignored and recomputed. The model and mem
// are not modified; the returned model owns a copy of mem. onCrossing may
// be nil.
//
// Errors carry ferrors codes INVALID_INPUT, INVALID_MEMBER, INVALID_KIND,
// DUPLICATE_NAME or DUPLICATE_ID.
func (e *Engine) Connect(model *frame.Model, mem *frame.Member, onCrossing crossing.Func) (*frame.Model, error) {
	if err := checkModel(model); err != nil {
		return nil, err
	}
	if err := checkMember(mem); err != nil {
		return nil, err
	}
	if model.Has(mem.Name) {
		return nil, registryError(frame.ErrDuplicateName, "connect %s", mem.Name)
	}

	out := model.Clone()
	if err := e.insert(out, mem.Clone(), onCrossing); err != nil {
		return nil, err
	}
	return out, nil
}

// insert adds n to model in place and links it to every participating
// member already present.
func (e *Engine) insert(model *frame.Model, n *frame.Member, onCrossing crossing.Func) error {
	start := time.Now()
	n.ClearLinks()
	if err := model.Add(n); err != nil {
		return registryError(err, "connect %s", n.Name)
	}

	if !e.participates(n) {
		e.Logger.Debug("member stored without junctions",
			"model", model.Name, "member", n.Name, "kind", n.Kind,
			"degenerate", e.Grid.Degenerate(n.Start, n.End))
		observability.Connect().OnConnect(model.Name, n.Name, 0, time.Since(start))
		return nil
	}

	links := 0
	for _, m := range model.All() {
		if m == n || !e.participates(m) {
			continue
		}
		if e.Grid.SegmentsOverlap(n.Start, n.End, m.Start, m.End) {
			e.Logger.Debug("crossing", "model", model.Name, "member", n.Name, "other", m.Name)
			observability.Connect().OnCrossing(model.Name, n.Name, m.Name)
			if onCrossing != nil {
				onCrossing(n.Name, m.Name)
			}
			continue
		}
		links += e.link(n, m)
	}

	e.Logger.Debug("connected", "model", model.Name, "member", n.Name, "links", links)
	observability.Connect().OnConnect(model.Name, n.Name, links, time.Since(start))
	return nil
}

// link records the junctions between n and m on both members and returns
// the number of entries added. The caller has already ruled out overlap.
func (e *Engine) link(n, m *frame.Member) int {
	g := e.Grid
	added := 0
	add := func(owner *frame.Member, r frame.Role, other *frame.Member) {
		if owner.Set(r).Add(other.Name) {
			added++
			e.Logger.Debug("junction", "member", owner.Name, "role", r, "other", other.Name)
		}
	}

	for _, nr := range []frame.Role{frame.RoleStart, frame.RoleEnd} {
		p := endpoint(n, nr)
		switch {
		case g.Coincident(p, m.Start):
			add(n, nr, m)
			add(m, frame.RoleStart, n)
		case g.Coincident(p, m.End):
			add(n, nr, m)
			add(m, frame.RoleEnd, n)
		case g.Interior(p, m.Start, m.End):
			add(n, nr, m)
			add(m, frame.RoleSpan, n)
		}
	}

	for _, mr := range []frame.Role{frame.RoleStart, frame.RoleEnd} {
		if g.Interior(endpoint(m, mr), n.Start, n.End) {
			add(m, mr, n)
			add(n, frame.RoleSpan, m)
		}
	}
	return added
}

func endpoint(mem *frame.Member, r frame.Role) geom.Point {
	if r == frame.RoleEnd {
		return mem.End
	}
	return mem.Start
}

// Disconnect returns a snapshot of model in which no member references mem.
// If mem is in the model its own sets are cleared too; it stays registered.
// Disconnecting a member that is absent, or already disconnected, returns an
// equal snapshot. Only mem.Name is read.
func (e *Engine) Disconnect(model *frame.Model, mem *frame.Member) (*frame.Model, error) {
	if err := checkModel(model); err != nil {
		return nil, err
	}
	if mem == nil {
		return nil, checkMember(mem)
	}
	out := model.Clone()
	e.detach(out, mem.Name)
	return out, nil
}

// detach removes name from every adjacency set in model, in place.
func (e *Engine) detach(model *frame.Model, name string) int {
	removed := 0
	for _, m := range model.All() {
		if m.Name == name {
			m.ClearLinks()
			continue
		}
		removed += m.Unlink(name)
	}
	e.Logger.Debug("disconnected", "model", model.Name, "member", name, "references", removed)
	observability.Connect().OnDisconnect(model.Name, name, removed)
	return removed
}
