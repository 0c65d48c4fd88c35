package mht

import (
	"github.com/arfken-labs/mht/cluster"
	"github.com/arfken-labs/mht/track"
)

// runClustering performs §4.5 steps 4-7: relabel clusters by transitive
// report sharing, reconcile the previous scan's cluster/GH state against
// that fresh labeling (split), merge clusters that now share an id,
// regenerate each cluster's GHs (with N-scanback pruning folded into the
// AfterBest hook, at scanbackDepth), then sweep every TH no GH references
// any longer.
func (e *Engine) runClustering(scanbackDepth int) error {
	trees := e.store.Trees()
	clusterOf := cluster.Relabel(e.store, trees)

	live, err := e.regenerateClusters(clusterOf, trees, scanbackDepth)
	if err != nil {
		return err
	}
	e.clusters = live

	used := make(map[track.NodeID]struct{})
	for _, c := range e.clusters {
		for _, h := range c.Hyps {
			for _, leafID := range h.Leaves {
				used[leafID] = struct{}{}
			}
		}
	}
	return e.dropUnusedNodes(used)
}

// regenerateClusters reconciles the previous scan's clusters against this
// scan's fresh labeling, folds in brand-new trees as singleton clusters,
// merges, and regenerates every resulting cluster's GH list.
//
// Reconciling old cluster membership against a fresh id labeling is exactly
// what cluster.Split already does (partition a cluster's trees+Hyps by an
// external id map): a cluster whose trees have drifted onto different ids
// since last scan is indistinguishable, mechanically, from one whose
// leading GH disagrees with the rest — both are "some trees now carry a
// different id than the cluster's own", so Split is reused here rather
// than duplicated.
func (e *Engine) regenerateClusters(clusterOf map[track.TrackID]cluster.ID, trees []track.TrackID, scanbackDepth int) ([]*cluster.Cluster, error) {
	alive := make(map[track.TrackID]bool, len(trees))
	for _, t := range trees {
		alive[t] = true
	}
	prev := pruneDeadTrees(e.clusters, alive)

	split := cluster.Split(e.store, prev, clusterOf)

	for _, t := range newTreeIDs(trees, split) {
		tr, err := e.store.Tree(t)
		if err != nil {
			continue
		}
		split = append(split, &cluster.Cluster{
			ID:    clusterOf[t],
			Trees: []track.TrackID{t},
			Hyps: []*cluster.Hypothesis{{
				Leaves:   map[track.TrackID]track.NodeID{t: tr.RootID},
				Snapshot: 1,
			}},
		})
	}

	merged := cluster.Merge(split, e.cfg.MinGHypoRatio, e.cfg.MaxGHypos)

	afterBest := e.scanback(scanbackDepth)
	for _, c := range merged {
		if err := cluster.Regenerate(c, e.store, cluster.RegenerateConfig{
			MinGHypoRatio: e.cfg.MinGHypoRatio,
			MaxGHypos:     e.cfg.MaxGHypos,
			AfterBest:     afterBest,
			Metrics:       e.cfg.Telemetry.Metrics,
		}); err != nil {
			return nil, err
		}
	}

	live := merged[:0]
	for _, c := range merged {
		if len(c.Hyps) > 0 {
			live = append(live, c)
		}
	}
	return live, nil
}

// pruneDeadTrees drops, from a previous-scan cluster list, every tree no
// longer alive (removed by the prior scan's drop-dead-trees step) and every
// GH that no longer covers a complete selection over its cluster's
// surviving trees.
func pruneDeadTrees(clusters []*cluster.Cluster, alive map[track.TrackID]bool) []*cluster.Cluster {
	out := make([]*cluster.Cluster, 0, len(clusters))
	for _, c := range clusters {
		var trees []track.TrackID
		for _, t := range c.Trees {
			if alive[t] {
				trees = append(trees, t)
			}
		}
		if len(trees) == 0 {
			continue
		}
		c.Trees = trees

		var hyps []*cluster.Hypothesis
		for _, h := range c.Hyps {
			leaves := make(map[track.TrackID]track.NodeID, len(trees))
			for _, t := range trees {
				if n, ok := h.Leaves[t]; ok {
					leaves[t] = n
				}
			}
			if len(leaves) != len(trees) {
				continue
			}
			h.Leaves = leaves
			hyps = append(hyps, h)
		}
		if len(hyps) == 0 {
			continue
		}
		c.Hyps = hyps

		out = append(out, c)
	}
	return out
}

// newTreeIDs returns the ids in all that are not already a member of any
// cluster in clusters, in all's order.
func newTreeIDs(all []track.TrackID, clusters []*cluster.Cluster) []track.TrackID {
	known := make(map[track.TrackID]bool, len(all))
	for _, c := range clusters {
		for _, t := range c.Trees {
			known[t] = true
		}
	}

	var out []track.TrackID
	for _, t := range all {
		if !known[t] {
			out = append(out, t)
		}
	}
	return out
}
