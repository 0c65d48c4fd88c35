package assign

import (
	"math"
	"sort"
)

// bigCost stands in for "no arc here" in the dense square matrix built from
// the sparse arc list. Any matching that uses a cell this expensive is
// infeasible; the solver never relies on floating-point infinities so the
// potential arithmetic stays well-defined.
const bigCost = 1e18

// Solve finds a minimum-cost complete matching over arcs: every row and
// every column that appears in any arc is matched exactly once, optionally
// to Unassigned via a (row, -1, cost) or (-1, col, cost) arc. It returns the
// total cost and the arcs selected by the matching. If no complete matching
// exists, it returns ErrUnsolvable.
//
// Preconditions: arcs need not be pre-sorted or pre-deduplicated by the
// caller — Solve sorts lexicographically by (Row, Col, Cost) and keeps only
// the cheapest arc per (Row, Col) pair itself, matching §4.1's contract.
func Solve(arcs []Arc) (float64, []Arc, error) {
	if len(arcs) == 0 {
		return 0, nil, nil
	}

	arcs = dedupArcs(arcs)

	rowIDs, rowIndex := collectAxis(arcs, true)
	colIDs, colIndex := collectAxis(arcs, false)
	n := len(rowIDs)
	m := len(colIDs)
	dim := n + m

	cost := make([][]float64, dim)
	payload := make([][]any, dim)
	for i := range cost {
		cost[i] = make([]float64, dim)
		payload[i] = make([]any, dim)
		for j := range cost[i] {
			cost[i][j] = bigCost
		}
	}

	for _, a := range arcs {
		switch {
		case a.Row >= 0 && a.Col >= 0:
			ri, ci := rowIndex[a.Row], colIndex[a.Col]
			if a.Cost < cost[ri][ci] {
				cost[ri][ci] = a.Cost
				payload[ri][ci] = a.Payload
			}
			// Dual zero-cost arc: if r binds to c, anti(c) must bind to
			// anti(r) to keep the doubled problem square and consistent.
			dr, dc := n+ci, m+ri
			if cost[dr][dc] > 0 {
				cost[dr][dc] = 0
			}
		case a.Row >= 0 && a.Col == Unassigned:
			ri := rowIndex[a.Row]
			dc := m + ri
			if a.Cost < cost[ri][dc] {
				cost[ri][dc] = a.Cost
				payload[ri][dc] = a.Payload
			}
		case a.Row == Unassigned && a.Col >= 0:
			ci := colIndex[a.Col]
			dr := n + ci
			if a.Cost < cost[dr][ci] {
				cost[dr][ci] = a.Cost
				payload[dr][ci] = a.Payload
			}
		default:
			// Row == Col == Unassigned carries no information; ignore it.
		}
	}

	match, total, feasible := hungarian(cost)
	if !feasible {
		return 0, nil, ErrUnsolvable
	}

	selected := make([]Arc, 0, n+m)
	for i := 0; i < n; i++ {
		j := match[i]
		switch {
		case j < m:
			selected = append(selected, Arc{Row: rowIDs[i], Col: colIDs[j], Cost: cost[i][j], Payload: payload[i][j]})
		default:
			selected = append(selected, Arc{Row: rowIDs[i], Col: Unassigned, Cost: cost[i][j], Payload: payload[i][j]})
		}
	}
	for i := n; i < dim; i++ {
		ci := i - n
		j := match[i]
		if j < m {
			// j == ci: column ci was left unassigned.
			selected = append(selected, Arc{Row: Unassigned, Col: colIDs[ci], Cost: cost[i][j], Payload: payload[i][j]})
		}
		// j >= m is the zero-cost dual-consistency cell; not a real selection.
	}

	return total, selected, nil
}

// dedupArcs sorts arcs lexicographically by (Row, Col, Cost) and keeps only
// the first (cheapest) arc per (Row, Col) pair.
func dedupArcs(arcs []Arc) []Arc {
	sorted := make([]Arc, len(arcs))
	copy(sorted, arcs)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Row != sorted[j].Row {
			return sorted[i].Row < sorted[j].Row
		}
		if sorted[i].Col != sorted[j].Col {
			return sorted[i].Col < sorted[j].Col
		}

		return sorted[i].Cost < sorted[j].Cost
	})

	out := sorted[:0:0]
	for i, a := range sorted {
		if i > 0 && a.Row == sorted[i-1].Row && a.Col == sorted[i-1].Col {
			continue
		}
		out = append(out, a)
	}

	return out
}

// collectAxis gathers the distinct non-negative row (or column) ids
// appearing across arcs, sorted ascending, along with a map from id to its
// compact 0-based index.
func collectAxis(arcs []Arc, row bool) ([]int, map[int]int) {
	seen := make(map[int]struct{})
	for _, a := range arcs {
		v := a.Col
		if row {
			v = a.Row
		}
		if v >= 0 {
			seen[v] = struct{}{}
		}
	}

	ids := make([]int, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	index := make(map[int]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	return ids, index
}

// hungarian solves the square minimum-cost assignment problem on cost via
// the Kuhn–Munkres method with vertex potentials (Jonker–Volgenant style
// augmenting-path search). It returns match[i] = column assigned to row i,
// the total cost, and whether a fully feasible (no bigCost cell used)
// matching was found.
//
// Internally 1-indexed to keep the augmenting-path bookkeeping uniform with
// a virtual column 0 representing "no column yet", following the classical
// presentation of the algorithm.
func hungarian(cost [][]float64) ([]int, float64, bool) {
	dim := len(cost)
	const inf = math.MaxFloat64 / 2

	u := make([]float64, dim+1) // row potentials
	v := make([]float64, dim+1) // column potentials
	p := make([]int, dim+1)     // p[j] = row currently assigned to column j (0 = none)
	way := make([]int, dim+1)   // way[j] = previous column in the augmenting path

	minv := make([]float64, dim+1)
	used := make([]bool, dim+1)

	for i := 1; i <= dim; i++ {
		p[0] = i
		j0 := 0

		for j := 0; j <= dim; j++ {
			minv[j] = inf
			used[j] = false
		}

		for {
			used[j0] = true
			i0 := p[j0]
			delta := inf
			j1 := -1

			for j := 1; j <= dim; j++ {
				if used[j] {
					continue
				}
				cur := cost[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}

			if j1 < 0 {
				// No augmenting path exists: the problem is infeasible.
				return nil, 0, false
			}

			for j := 0; j <= dim; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}

			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		// Augment along the trail: each column on the path takes over the
		// row previously held by its predecessor column.
		for j0 != 0 {
			prevCol := way[j0]
			p[j0] = p[prevCol]
			j0 = prevCol
		}
	}

	match := make([]int, dim)
	total := 0.0
	feasible := true
	for j := 1; j <= dim; j++ {
		if p[j] == 0 {
			continue
		}
		i := p[j] - 1
		match[i] = j - 1
		c := cost[i][j-1]
		total += c
		if c >= bigCost {
			feasible = false
		}
	}

	return match, total, feasible
}
