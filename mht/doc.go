// Package mht implements the pruning-driver engine (§4.5): the stateful
// scan loop that ties the track, cluster, and murty packages together into
// the host-facing Multiple Hypothesis Tracking reasoner.
//
// An Engine owns one track.Store and the previous scan's cluster/GH state.
// Each call to Scan grows every active leaf via the host-supplied
// model.Model, relabels clusters by transitive report sharing, splits and
// merges clusters, regenerates group hypotheses through the ranked queue
// with N-scanback pruning folded into the process, verifies and collapses
// committed roots, and drops everything no longer in use.
//
// Grounded on the teacher's dijkstra package's runner/process shape (a
// small stateful struct driving a step-by-step loop) and on
// original_source/mht/mht.c for the scan-step ordering.
package mht
