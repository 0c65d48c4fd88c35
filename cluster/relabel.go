package cluster

import "github.com/arfken-labs/mht/track"

// Relabel computes the cluster id of every tree by transitive closure over
// shared reports (§4.4's clustering bullets): two trees land in the same
// cluster iff some path of reports links one to the other. The result is
// the connected-components partition of the tree/report bipartite graph —
// equivalent to, but computed more directly than, the incremental
// id-propagation-and-rescan procedure in the original description.
func Relabel(store *track.Store, trees []track.TrackID) map[track.TrackID]ID {
	treeReports := make(map[track.TrackID]map[track.ReportID]struct{}, len(trees))
	for _, t := range trees {
		tr, err := store.Tree(t)
		if err != nil {
			continue
		}
		set := make(map[track.ReportID]struct{})
		_ = store.PreOrder(tr.RootID, func(n track.NodeID) {
			if node, err := store.Node(n); err == nil && node.ReportID != track.NoReport {
				set[node.ReportID] = struct{}{}
			}
		})
		treeReports[t] = set
	}

	clusterOf := make(map[track.TrackID]ID, len(trees))
	visited := make(map[track.TrackID]bool, len(trees))
	next := ID(0)

	for _, start := range trees {
		if visited[start] {
			continue
		}
		id := next
		next++

		queue := []track.TrackID{start}
		visited[start] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			clusterOf[cur] = id

			for r := range treeReports[cur] {
				for _, n := range store.Links().Nodes(r) {
					node, err := store.Node(n)
					if err != nil {
						continue
					}
					nt := node.TrackStamp
					if !visited[nt] {
						visited[nt] = true
						queue = append(queue, nt)
					}
				}
			}
		}
	}

	return clusterOf
}

// BuildClusters groups trees by the labels Relabel produced, preserving
// each cluster's first-seen tree order.
func BuildClusters(clusterOf map[track.TrackID]ID, trees []track.TrackID) []*Cluster {
	order := make([]ID, 0)
	byID := make(map[ID]*Cluster)

	for _, t := range trees {
		id := clusterOf[t]
		c, ok := byID[id]
		if !ok {
			c = &Cluster{ID: id}
			byID[id] = c
			order = append(order, id)
		}
		c.Trees = append(c.Trees, t)
	}

	out := make([]*Cluster, 0, len(order))
	for _, id := range order {
		out = append(out, byID[id])
	}
	return out
}
