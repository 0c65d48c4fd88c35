package mht

import (
	"github.com/arfken-labs/mht/cluster"
	"github.com/arfken-labs/mht/track"
)

// scanback returns the AfterBest hook cluster.Regenerate invokes once per
// cluster, immediately after its best GH is established (§4.4, §4.5 step
// 6): for every leaf that GH selects, walk up toward the root; once a leaf
// sits at or beyond maxDepth edges from its root, every sibling of the
// leaf's first-generation ancestor (and their subtrees) is pruned, driving
// that root down to exactly one child.
func (e *Engine) scanback(maxDepth int) func(c *cluster.Cluster, best *cluster.Hypothesis) error {
	return func(c *cluster.Cluster, best *cluster.Hypothesis) error {
		for _, leafID := range best.Leaves {
			if err := e.scanbackOne(leafID, maxDepth); err != nil {
				return err
			}
		}
		return nil
	}
}

// scanbackOne applies one leaf's N-scanback commitment.
func (e *Engine) scanbackOne(leafID track.NodeID, maxDepth int) error {
	path, err := e.ancestorPath(leafID)
	if err != nil {
		return err
	}
	if len(path) < 2 {
		return nil // leaf is its own tree's root; nothing to commit yet
	}
	if depth := len(path) - 1; depth < maxDepth {
		return nil
	}

	root, err := e.store.Node(path[0])
	if err != nil {
		return err
	}
	keep := path[1]

	for _, child := range append([]track.NodeID(nil), root.Children...) {
		if child == keep {
			continue
		}
		if err := e.store.RemoveSubtree(child); err != nil {
			return err
		}
	}
	return nil
}

// ancestorPath returns the chain of node ids from root to leafID inclusive.
func (e *Engine) ancestorPath(leafID track.NodeID) ([]track.NodeID, error) {
	var rev []track.NodeID
	cur := leafID
	for {
		n, err := e.store.Node(cur)
		if err != nil {
			return nil, err
		}
		rev = append(rev, cur)
		if n.Parent == track.NoNode {
			break
		}
		cur = n.Parent
	}

	out := make([]track.NodeID, len(rev))
	for i, id := range rev {
		out[len(rev)-1-i] = id
	}
	return out, nil
}
