package connect

import (
	"fmt"
	"strings"

	ferrors "github.com/matzehuels/framelink/pkg/errors"
	"github.com/matzehuels/framelink/pkg/frame"
)

// Validate checks the stored adjacency of model against its geometry:
//
//   - every referenced member exists and no member references itself
//   - references are symmetric
//   - a name appears in at most one set of a member
//   - start/end entries sit at that end point, span entries touch the span
//   - ignored and zero-length members neither hold nor receive references
//
// All problems are collected into one INVARIANT_VIOLATION error wrapping a
// [ferrors.InvariantError].
func (e *Engine) Validate(model *frame.Model) error {
	if err := checkModel(model); err != nil {
		return err
	}
	var problems []string
	report := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	for _, m := range model.All() {
		if !e.participates(m) && m.LinkCount() > 0 {
			report("%s does not participate in junctions but has %d links", m.Name, m.LinkCount())
		}
		seen := make(map[string]frame.Role)
		for _, l := range m.Links() {
			if prev, dup := seen[l.Name]; dup {
				report("%s lists %s under both %s and %s", m.Name, l.Name, prev, l.Role)
				continue
			}
			seen[l.Name] = l.Role

			if l.Name == m.Name {
				report("%s references itself", m.Name)
				continue
			}
			other, ok := model.Lookup(l.Name)
			if !ok {
				report("%s lists %s which does not exist", m.Name, l.Name)
				continue
			}
			if _, back := other.RoleOf(m.Name); !back {
				report("%s lists %s but %s does not list %s", m.Name, other.Name, other.Name, m.Name)
			}
			if !e.participates(other) {
				report("%s lists %s which does not participate in junctions", m.Name, other.Name)
				continue
			}
			if !e.placed(m, l.Role, other) {
				report("%s lists %s under %s but the geometry does not meet there", m.Name, other.Name, l.Role)
			}
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return ferrors.Wrap(ferrors.ErrCodeInvariant,
		&ferrors.InvariantError{Model: model.Name, Problems: problems},
		"%d adjacency problems", len(problems))
}

// placed reports whether the geometry supports m listing other under r.
func (e *Engine) placed(m *frame.Member, r frame.Role, other *frame.Member) bool {
	g := e.Grid
	switch r {
	case frame.RoleStart, frame.RoleEnd:
		return g.OnSegment(endpoint(m, r), other.Start, other.End)
	default:
		return g.Interior(other.Start, m.Start, m.End) || g.Interior(other.End, m.Start, m.End)
	}
}

// Change is one adjacency difference between two snapshots.
type Change struct {
	Member string
	Other  string
	Role   frame.Role
	Added  bool
}

func (c Change) String() string {
	sign := "-"
	if c.Added {
		sign = "+"
	}
	return fmt.Sprintf("%s %s %s %s", sign, c.Member, c.Role, c.Other)
}

// Diff lists the adjacency entries present in b but not a (Added) and in a
// but not b. Members are visited in a's canonical order, then members only
// in b. An entry whose role changed shows up as one removal and one addition.
func Diff(a, b *frame.Model) []Change {
	var changes []Change
	visit := func(name string) {
		am, _ := a.Lookup(name)
		bm, _ := b.Lookup(name)
		for _, r := range frame.Roles {
			var as, bs frame.Names
			if am != nil {
				as = *am.Set(r)
			}
			if bm != nil {
				bs = *bm.Set(r)
			}
			for _, n := range as {
				if !bs.Has(n) {
					changes = append(changes, Change{Member: name, Other: n, Role: r})
				}
			}
			for _, n := range bs {
				if !as.Has(n) {
					changes = append(changes, Change{Member: name, Other: n, Role: r, Added: true})
				}
			}
		}
	}
	for _, m := range a.All() {
		visit(m.Name)
	}
	for _, m := range b.All() {
		if !a.Has(m.Name) {
			visit(m.Name)
		}
	}
	return changes
}

// FormatChanges renders changes one per line.
func FormatChanges(changes []Change) string {
	var sb strings.Builder
	for _, c := range changes {
		sb.WriteString(c.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
