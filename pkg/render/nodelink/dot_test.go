package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/framelink/pkg/connect"
	"github.com/matzehuels/framelink/pkg/crossing"
	"github.com/matzehuels/framelink/pkg/frame"
	"github.com/matzehuels/framelink/pkg/geom"
)

func portal(t *testing.T) (*frame.Model, *crossing.Collector) {
	t.Helper()
	var c crossing.Collector
	m, err := connect.New().Batch(frame.New("Portal"), []*frame.Member{
		{ID: 1, Name: "C1", Kind: frame.KindColumn, Start: geom.Pt(0, 0, 0), End: geom.Pt(0, 3, 0)},
		{ID: 2, Name: "C2", Kind: frame.KindColumn, Start: geom.Pt(5, 0, 0), End: geom.Pt(5, 3, 0)},
		{ID: 1, Name: "B1", Kind: frame.KindBeam, Start: geom.Pt(0, 3, 0), End: geom.Pt(5, 3, 0), Profile: "IPE300"},
		{ID: 1, Name: "VB1", Kind: frame.KindVerticalBracing, Start: geom.Pt(1, 2, 0), End: geom.Pt(4, 4, 0)},
	}, c.Report)
	if err != nil {
		t.Fatal(err)
	}
	return m, &c
}

func TestToDOT(t *testing.T) {
	m, c := portal(t)
	dot := ToDOT(m, Options{Crossings: c.Pairs()})

	for _, want := range []string{
		"graph G {",
		"rankdir=BT;",
		`label="Portal";`,
		`"C1" [label="C1"`,
		`"B1" -- "C1" [label="start/end"];`,
		`"B1" -- "C2" [label="end/end"];`,
		`"VB1" -- "B1" [style=dashed, color=red`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
	if strings.Count(dot, " -- ") != 3 {
		t.Errorf("want 2 adjacency edges and 1 crossing edge:\n%s", dot)
	}
	if !strings.Contains(dot, `"VB1" [label="VB1", color="#f28e2b", penwidth=2, style="rounded,filled,dashed"`) {
		t.Errorf("unconnected bracing should be drawn dashed:\n%s", dot)
	}
}

func TestToDOTDetailedElevation(t *testing.T) {
	m, _ := portal(t)
	dot := ToDOT(m, Options{Detailed: true, Elevation: true})

	for _, want := range []string{
		"layout=neato;",
		`pos="180.0,216.0!"`, // B1 midpoint (2.5, 3)
		`BEAM\nIPE300\n(0.000, 3.000, 0.000) -> (5.000, 3.000, 0.000)`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "crossing") {
		t.Error("crossings drawn without being requested")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="x"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.00 50.00" width="100" height="50">`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}
}
