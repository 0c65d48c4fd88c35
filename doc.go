// Package root documents the module as a whole; the reasoner itself lives
// in the mht/ subpackage.
//
// github.com/arfken-labs/mht is a Multiple Hypothesis Tracking engine:
// given a stream of per-scan sensor reports and a host-supplied motion
// model, it maintains a forest of track hypothesis trees, prunes them to a
// bounded number of ranked group hypotheses per scan, and emits committed
// track decisions once they can no longer change.
//
// The module is a stack of independent engines, each usable on its own:
//
//	assign/   — minimum-cost bipartite assignment (Hungarian method)
//	murty/    — ranked (k-best) enumeration of assignment solutions
//	track/    — the track-tree arena: nodes, reports, and their lifecycle
//	cluster/  — grouping trees that share reports, and regenerating their
//	            ranked group hypotheses from one scan to the next
//	model/    — the host-supplied motion-model and report capabilities
//	mht/      — the pruning-driver Engine tying the above together
//
// cmd/mhtdemo is a small CLI that drives an Engine over a synthetic report
// stream and prints the resulting track decisions.
//
// See SPEC_FULL.md for the full design: a report either extends an
// existing track's hypothesis tree or seeds a new one, clusters of trees
// sharing reports are re-solved every scan by Murty's algorithm to produce
// a ranked list of group hypotheses, and N-scanback pruning forces old
// ambiguity to resolve once a tree grows past a configured depth.
package root
