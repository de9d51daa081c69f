// Package frame provides the member registry of a 3-D frame model.
//
// # Overview
//
// A frame model is built from linear structural members: columns, beams,
// cantilevers, bracings, staircase segments and truss members. Each [Member]
// is a straight segment from Start to End with a [Kind], an ID unique within
// its kind, and a derived Name such as "C12" or "B7".
//
// Every member carries three adjacency sets of member names:
//
//   - StartConnected: members meeting this one exactly at its start point
//   - Connected: members meeting this one strictly between start and end
//   - EndConnected: members meeting this one exactly at its end point
//
// The sets are maintained by the connect package; this package only stores
// them and keeps them well-formed (sorted, duplicate-free).
//
// # Basic Usage
//
//	m := frame.New("Frame 1")
//	id, name := m.NextName(frame.KindColumn) // 1, "C1"
//	_ = m.Add(&frame.Member{
//	    ID: id, Name: name, Kind: frame.KindColumn,
//	    Start: geom.Pt(0, 0, 0), End: geom.Pt(0, 3, 0),
//	})
//
// Look members up with [Model.Lookup] (by name), [Model.Find] (by kind and
// name) or [Model.FindByID]. Iterate with [Model.Members] for one kind or
// [Model.All] for every member in canonical kind order.
//
// # Names
//
// Adjacency references members by bare name, so a Model refuses two members
// with the same name even when their kinds differ. [Model.NextName] derives a
// free name from the kind prefix and the next ID.
//
// # Concurrency
//
// A Model is not safe for concurrent mutation. Use [Model.Clone] to take an
// independent snapshot.
package frame
