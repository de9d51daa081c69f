package topology

import (
	"reflect"
	"testing"

	"github.com/matzehuels/framelink/pkg/connect"
	"github.com/matzehuels/framelink/pkg/frame"
	"github.com/matzehuels/framelink/pkg/geom"
)

func build(t *testing.T, members ...*frame.Member) *frame.Model {
	t.Helper()
	m, err := connect.New().Batch(frame.New("t"), members, nil)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func mem(id int, kind frame.Kind, name string, s, e geom.Point) *frame.Member {
	return &frame.Member{ID: id, Name: name, Kind: kind, Start: s, End: e}
}

func TestComponents(t *testing.T) {
	m := build(t,
		mem(1, frame.KindColumn, "C1", geom.Pt(0, 0, 0), geom.Pt(0, 3, 0)),
		mem(2, frame.KindColumn, "C2", geom.Pt(5, 0, 0), geom.Pt(5, 3, 0)),
		mem(3, frame.KindColumn, "C3", geom.Pt(20, 0, 0), geom.Pt(20, 3, 0)),
		mem(1, frame.KindBeam, "B1", geom.Pt(0, 3, 0), geom.Pt(5, 3, 0)),
		// A detached roof piece with a post, nowhere near the ground.
		mem(2, frame.KindBeam, "B2", geom.Pt(30, 6, 0), geom.Pt(35, 6, 0)),
		mem(1, frame.KindKneeBracing, "KB1", geom.Pt(31, 5, 0), geom.Pt(32, 6, 0)),
	)
	g := Build(m)

	if g.Len() != 6 {
		t.Errorf("Len() = %d, want 6", g.Len())
	}
	if g.Edges() != 3 {
		t.Errorf("Edges() = %d, want 3", g.Edges())
	}
	if d := g.Degree("B1"); d != 2 {
		t.Errorf("Degree(B1) = %d, want 2", d)
	}
	if d := g.Degree("nope"); d != -1 {
		t.Errorf("Degree(nope) = %d, want -1", d)
	}

	want := []Component{
		{Members: []string{"C1", "C2", "B1"}, Grounded: true},
		{Members: []string{"C3"}, Grounded: true},
		{Members: []string{"B2", "KB1"}, Grounded: false},
	}
	if got := g.Components(0, geom.DefaultGrid); !reflect.DeepEqual(got, want) {
		t.Errorf("Components() = %+v, want %+v", got, want)
	}
	if got := g.Isolated(); !reflect.DeepEqual(got, []string{"C3"}) {
		t.Errorf("Isolated() = %v", got)
	}
	if got := g.Floating(0, geom.DefaultGrid); !reflect.DeepEqual(got, []string{"B2", "KB1"}) {
		t.Errorf("Floating() = %v", got)
	}
	// Raising the base level strands everything except the roof piece's post.
	if got := g.Floating(5, geom.DefaultGrid); !reflect.DeepEqual(got, []string{"C1", "C2", "B1", "C3"}) {
		t.Errorf("Floating(5) = %v", got)
	}
}

func TestBuildSkipsDanglingReferences(t *testing.T) {
	m := frame.New("t")
	c := mem(1, frame.KindColumn, "C1", geom.Pt(0, 0, 0), geom.Pt(0, 3, 0))
	c.EndConnected = frame.NewNames("GHOST", "C1")
	if err := m.Add(c); err != nil {
		t.Fatal(err)
	}
	g := Build(m)
	if g.Edges() != 0 {
		t.Errorf("Edges() = %d, want 0", g.Edges())
	}
}
