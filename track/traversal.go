package track

import "fmt"

// PreOrder visits root then each child's subtree, left to right (§4.3:
// "pre-order and post-order traversal"). Child order is insertion order,
// which §9 notes "matters for Murty partitioning and must be preserved" —
// the same ordering discipline applies here since leaves are enumerated in
// child order when building assignment problems.
func (s *Store) PreOrder(root NodeID, visit func(NodeID)) error {
	n, err := s.Node(root)
	if err != nil {
		return err
	}
	visit(root)
	for _, c := range n.Children {
		if err := s.PreOrder(c, visit); err != nil {
			return err
		}
	}
	return nil
}

// PostOrder visits each child's subtree before root, left to right.
func (s *Store) PostOrder(root NodeID, visit func(NodeID)) error {
	n, err := s.Node(root)
	if err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := s.PostOrder(c, visit); err != nil {
			return err
		}
	}
	visit(root)
	return nil
}

// Leaves appends every leaf (childless) node under root, in left-to-right
// order, to out and returns the result.
func (s *Store) Leaves(root NodeID, out []NodeID) ([]NodeID, error) {
	n, err := s.Node(root)
	if err != nil {
		return out, err
	}
	if len(n.Children) == 0 {
		return append(out, root), nil
	}
	for _, c := range n.Children {
		out, err = s.Leaves(c, out)
		if err != nil {
			return out, err
		}
	}
	return out, nil
}

// RemoveSubtree destroys nodeID and every descendant (§4.3: "removal of an
// entire subtree"). Their reports are unlinked, becoming GC candidates
// (actual removal from the report arena happens separately, via
// RemoveDeadReport, at the pruning driver's "drop reports" step). If
// nodeID is a tree's current root, the tree itself is dropped from the
// Store.
func (s *Store) RemoveSubtree(nodeID NodeID) error {
	n, err := s.Node(nodeID)
	if err != nil {
		return err
	}

	if parent, perr := s.Node(n.Parent); perr == nil {
		parent.Children = removeChild(parent.Children, nodeID)
	}

	s.destroy(n)

	if t, ok := s.trees[n.TrackStamp]; ok && t.RootID == nodeID {
		delete(s.trees, n.TrackStamp)
	}
	return nil
}

// destroy removes n and its whole subtree from the node arena, unlinking
// reports as it goes. It does not touch the parent's child list — callers
// that detach a subtree root from its parent do so before calling destroy.
func (s *Store) destroy(n *Node) {
	for _, c := range n.Children {
		if child, err := s.Node(c); err == nil {
			s.destroy(child)
		}
	}
	s.links.Unlink(n.ReportID, n.ID)
	delete(s.nodes, n.ID)
}

func removeChild(children []NodeID, target NodeID) []NodeID {
	for i, c := range children {
		if c == target {
			return append(children[:i], children[i+1:]...)
		}
	}
	return children
}

// CollapseRoot removes a tree's root when it has exactly one child
// (§4.3: "removal of a root that has exactly one child, collapsing the
// tree by one level"), promoting that child to root. It reports
// collapsed=false, with no error, when the root does not currently have
// exactly one child — the normal stopping condition for the verify loop
// (§4.5 step 8). The removed root is returned so the caller can run its
// verification action before (or after) the structural collapse; it is
// already gone from the Store by the time CollapseRoot returns.
func (s *Store) CollapseRoot(trackID TrackID) (removed *Node, collapsed bool, err error) {
	t, ok := s.trees[trackID]
	if !ok {
		return nil, false, fmt.Errorf("track: no such tree: %d", trackID)
	}
	root, err := s.Node(t.RootID)
	if err != nil {
		return nil, false, err
	}
	if len(root.Children) != 1 {
		return nil, false, nil
	}

	child, err := s.Node(root.Children[0])
	if err != nil {
		return nil, false, err
	}

	rootCopy := *root
	child.Parent = NoNode
	t.RootID = child.ID
	s.links.Unlink(root.ReportID, root.ID)
	delete(s.nodes, root.ID)
	return &rootCopy, true, nil
}
