// Package crossing provides receivers for crossing notifications.
//
// The connect engine calls a [Func] once per member pair whose segments run
// through each other without meeting at a junction: an inclined bracing
// passing through a beam, or two members overlapping along a shared line.
// Such pairs get no adjacency. The notification is advisory; it never makes
// an edit fail.
//
// A Func may be called several times during one edit. Receivers in this
// package are not safe for concurrent use; the engine calls them
// synchronously from a single goroutine.
package crossing
