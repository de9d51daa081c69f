// Package io reads and writes frame models as JSON, TOML or YAML.
//
// # Overview
//
// A model file lists the members of one structural unit together with their
// stored adjacency. The same document shape is used for all three formats;
// the format is picked from the file extension (.json, .toml, .yaml, .yml).
//
// # JSON Format
//
//	{
//	  "name": "Frame 1",
//	  "base_elevation": 0,
//	  "members": [
//	    {"kind": "COLUMN", "id": 1, "name": "C1", "start": [0, 0, 0], "end": [0, 3, 0],
//	     "end_connected": ["B1"]},
//	    {"kind": "BEAM", "id": 1, "name": "B1", "start": [0, 3, 0], "end": [5, 3, 0],
//	     "profile": "IPE300", "start_connected": ["C1"]}
//	  ]
//	}
//
// # Member Fields
//
// Required:
//   - kind: one of the member kinds, e.g. "COLUMN" or "vertical_bracing"
//   - start, end: [x, y, z] in meters
//
// Optional:
//   - id: positive integer, unique per kind (next free ID if omitted)
//   - name: unique across the model (kind prefix + id if omitted)
//   - profile, orientation, releases, meta: carried through untouched
//   - start_connected, connected, end_connected: stored adjacency
//
// Stored adjacency is loaded as written. Use the connect package to validate
// it or to rebuild it from geometry.
//
// # Import and Export
//
// Use [ImportModel] and [ExportModel] for files, or [ReadModel] and
// [WriteModel] for any reader or writer with an explicit [Format].
package io
