// Package connect maintains member adjacency in a frame model.
//
// # Overview
//
// Every edit to a frame model goes through this package. [Engine.Connect]
// inserts a member and records every junction it forms with the members
// already present; [Engine.Disconnect] removes every reference to a member.
// Geometry edits are expressed as disconnect followed by connect, so there is
// exactly one place where adjacency is derived from geometry.
//
// # Junction Rules
//
// For a new member N and an existing member M, Connect records:
//
//   - N's end point coincides with one of M's end points: N lists M under that
//     end and M lists N under the matching end of M
//   - N's end point lies strictly inside M: N lists M under that end, M lists
//     N in its Connected (mid-span) set
//   - M's end point lies strictly inside N: the mirror of the above
//
// When N and M run through each other, either along a shared line or at a
// point interior to both, no adjacency is recorded. The onCrossing callback
// receives (N, M) instead. A crossing never fails the edit.
//
// Zero-length members and members of ignored kinds are stored with empty
// adjacency and never appear in anyone's sets.
//
// # Snapshots
//
// Operations never mutate the model they are given. Each returns a new
// snapshot, or an error and no snapshot. A failed edit therefore leaves the
// caller's model exactly as it was.
//
//	model, err = connect.Connect(model, beam, crossing.LogReporter(logger, model.Name))
//	if err != nil {
//	    return err // model unchanged
//	}
//
// # Configuration
//
// The comparison [geom.Grid] and the set of ignored kinds come from
// [config.Config] via [FromConfig]. A single grid is used for every
// comparison within one engine.
package connect
