// Package pkg provides the core libraries for framelink, the connectivity
// engine for 3-D structural frame models.
//
// # Overview
//
// A frame model is a set of straight members (columns, beams, cantilevers,
// bracing, staircases, truss chords and webs) between two 3-D points. Each
// member records which other members meet it at its start, along its span
// and at its end. framelink keeps those three sets correct and symmetric as
// members are added, moved and removed, and reports members that cross or
// overlap without forming a junction.
//
// # Architecture
//
// The typical data flow:
//
//	model file (.json / .toml / .yaml)
//	         ↓
//	    [io] package (import, derive missing names and IDs)
//	         ↓
//	    [connect] package (connect / disconnect / rebuild / validate)
//	         ↓                         ↘
//	    [topology] package          [crossing] notifications
//	         ↓
//	    [render/nodelink] package (DOT, SVG, PNG)
//
// # Quick Start
//
//	e := connect.New()
//	m := frame.New("Frame 1")
//	m, _ = e.Connect(m, &frame.Member{ID: 1, Name: "C1", Kind: frame.KindColumn,
//	    Start: geom.Pt(0, 0, 0), End: geom.Pt(0, 3, 0)}, nil)
//	m, _ = e.Connect(m, &frame.Member{ID: 1, Name: "B1", Kind: frame.KindBeam,
//	    Start: geom.Pt(0, 3, 0), End: geom.Pt(5, 3, 0)}, crossing.LogReporter(nil, m.Name))
//
// # Main Packages
//
// [geom] - Points, rounding grids and segment tests (coincidence, on-segment,
// collinear overlap, interior crossing) built on gonum's r3 vectors.
//
// [frame] - Member kinds, the member record with its three adjacency sets,
// and the model registry keyed by kind and name.
//
// [connect] - The connectivity engine. Every edit returns a new model
// snapshot and leaves its input untouched.
//
// [crossing] - Crossing notification callbacks: logging, collecting, fan-out.
//
// [topology] - Connected sub-structures and floating members, using gonum's
// graph packages.
//
// [config] - TOML settings for precision, tolerance and ignored kinds.
//
// [io] - Model file import and export.
//
// [render/nodelink] - Connectivity diagrams via Graphviz.
//
// [errors] - Coded errors shared by every package.
//
// [observability] - Hooks for connect, disconnect, crossing and file events.
//
// # Testing
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/connect/...  # Specific package
//	go test -run Example       # Examples only
//
// [geom]: https://pkg.go.dev/github.com/matzehuels/framelink/pkg/geom
// [frame]: https://pkg.go.dev/github.com/matzehuels/framelink/pkg/frame
// [connect]: https://pkg.go.dev/github.com/matzehuels/framelink/pkg/connect
// [crossing]: https://pkg.go.dev/github.com/matzehuels/framelink/pkg/crossing
// [topology]: https://pkg.go.dev/github.com/matzehuels/framelink/pkg/topology
// [config]: https://pkg.go.dev/github.com/matzehuels/framelink/pkg/config
// [io]: https://pkg.go.dev/github.com/matzehuels/framelink/pkg/io
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/framelink/pkg/render/nodelink
// [errors]: https://pkg.go.dev/github.com/matzehuels/framelink/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/framelink/pkg/observability
package pkg
