// Package cluster implements the cluster and group-hypothesis engine
// (§4.4): grouping track trees that transitively share reports, splitting
// and merging clusters as that sharing changes, and regenerating each
// cluster's group hypotheses (GHs) by encoding them as assignment problems
// fed through a murty.Queue.
//
// A Cluster never imports mht: the N-scanback pruning step that must run
// between establishing a cluster's best new GH and continuing to enumerate
// alternatives (§4.4's hypothesis-regeneration bullet) is threaded in by
// the caller as a callback (RegenerateConfig.AfterBest), keeping the
// dependency direction mht -> cluster -> track/murty/assign one-way, per
// §9's "Cyclic ownership risk" note.
package cluster
