// Package nodelink renders frame adjacency as node-link diagrams.
//
// # Overview
//
// Each member becomes a node and each connected member pair an edge, so the
// diagram shows how load can travel through the frame. Crossing pairs can be
// drawn as dashed red edges to flag clashes.
//
// # Usage
//
// Convert a model to DOT format, then render to SVG or PNG:
//
//	dot := nodelink.ToDOT(model, nodelink.Options{Crossings: collector.Pairs()})
//	svg, err := nodelink.RenderSVG(dot)
//	png, err := nodelink.RenderPNG(dot)
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: node labels include kind, profile and end points
//   - Elevation: nodes are pinned at their member midpoints (X right, Y up)
//     and laid out with neato, which gives a rough elevation view
//   - Crossings: pairs to draw as clash edges
//
// # DOT Format
//
// The [ToDOT] function produces an undirected Graphviz graph that can be
// rendered in process or saved and processed with external Graphviz tools.
// Edge labels give the role on each side, e.g. "end/start" for a beam
// sitting on a column top.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process rendering.
package nodelink
