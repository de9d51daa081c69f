package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/framelink/pkg/crossing"
	"github.com/matzehuels/framelink/pkg/frame"
	"github.com/matzehuels/framelink/pkg/geom"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes kind, profile and end points in node labels.
	// When false, only the member name is shown.
	Detailed bool

	// Elevation pins every node at its member midpoint (X, Y) and switches
	// the layout engine to neato.
	Elevation bool

	// Crossings are drawn as dashed red edges between the two members.
	Crossings []crossing.Pair
}

var kindColors = map[frame.Kind]string{
	frame.KindColumn:            "#4e79a7",
	frame.KindBeam:              "#59a14f",
	frame.KindCantilever:        "#8cd17d",
	frame.KindVerticalBracing:   "#f28e2b",
	frame.KindHorizontalBracing: "#ffbe7d",
	frame.KindKneeBracing:       "#e15759",
	frame.KindStaircase:         "#b07aa1",
	frame.KindTrussChord:        "#9c755f",
	frame.KindTrussWeb:          "#bab0ac",
}

// pointsPerMeter scales model coordinates to Graphviz points in elevation
// mode.
const pointsPerMeter = 72

// ToDOT converts the adjacency of a model to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG] or [RenderPNG].
//
// Every connected pair yields a single edge labeled with the role each side
// records, e.g. "end/start". Members are emitted in canonical model order.
func ToDOT(m *frame.Model, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	if opts.Elevation {
		buf.WriteString("  layout=neato;\n")
		buf.WriteString("  splines=true;\n")
	} else {
		buf.WriteString("  rankdir=BT;\n")
	}
	fmt.Fprintf(&buf, "  label=%q;\n", m.Name)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.15,0.05\"];\n")
	buf.WriteString("  edge [fontsize=10];\n")
	buf.WriteString("\n")

	for _, mem := range m.All() {
		attrs := fmtAttrs(mem, fmtLabel(mem, opts.Detailed))
		if opts.Elevation {
			mid := geom.Midpoint(mem.Start, mem.End)
			attrs = append(attrs, fmt.Sprintf("pos=\"%.1f,%.1f!\"", mid.X*pointsPerMeter, mid.Y*pointsPerMeter))
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", mem.Name, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, mem := range m.All() {
		for _, l := range mem.Links() {
			other, ok := m.Lookup(l.Name)
			if !ok || other.Name <= mem.Name {
				continue
			}
			back, _ := other.RoleOf(mem.Name)
			fmt.Fprintf(&buf, "  %q -- %q [label=%q];\n", mem.Name, other.Name, l.Role.String()+"/"+back.String())
		}
	}

	for _, p := range opts.Crossings {
		if !m.Has(p.A) || !m.Has(p.B) {
			continue
		}
		fmt.Fprintf(&buf, "  %q -- %q [style=dashed, color=red, fontcolor=red, label=\"crossing\"];\n", p.A, p.B)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(mem *frame.Member, detailed bool) string {
	if !detailed {
		return mem.Name
	}

	parts := []string{mem.Kind.String()}
	if mem.Profile != "" {
		parts = append(parts, mem.Profile)
	}
	parts = append(parts, mem.Start.String()+" -> "+mem.End.String())
	for _, k := range slices.Sorted(maps.Keys(mem.Meta)) {
		parts = append(parts, fmt.Sprintf("%s: %v", k, mem.Meta[k]))
	}

	return mem.Name + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(mem *frame.Member, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if c, ok := kindColors[mem.Kind]; ok {
		attrs = append(attrs, fmt.Sprintf("color=%q", c), "penwidth=2")
	}
	if mem.LinkCount() == 0 {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	out, err := render(dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(out), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return render(dot, graphviz.PNG)
}

func render(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	if strings.Contains(dot, "layout=neato;") {
		gv.SetLayout(graphviz.NEATO)
	}

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
