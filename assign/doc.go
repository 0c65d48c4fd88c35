// Package assign implements the minimum-cost bipartite assignment solver
// used as the innermost engine of the MHT reasoner: given a sparse list of
// arcs (row, col, cost, payload), find a minimum-cost matching in which
// every row and column that appears in any arc is matched exactly once.
//
// Rows and columns may optionally be left unassigned at a stated cost, via
// arcs of the form (row, -1, cost) or (-1, col, cost). This is implemented
// with the classical "anti-node" doubling: every real row r gets a mirror
// anti-row anti(r) = -r-1, and every real column c gets a mirror anti-column
// anti(c) = -c-1. An unassignment arc (r, -1, cost) becomes the square arc
// (r, anti(r), cost); a real arc (r, c, cost) additionally spawns a
// zero-cost dual arc (anti(c), anti(r), 0), so that binding r to c in the
// primal solution forces the anti-rows/anti-columns of r and c to bind to
// each other, keeping the doubled problem square and fully matched.
//
// The resulting square problem is solved by the classical Hungarian method
// with vertex potentials: row/column reduction, breadth-first augmenting
// path search over the equality subgraph, and potential updates by the
// minimum slack among unvisited vertices when no augmenting path exists.
// Infeasibility (no complete matching exists) is reported as ErrUnsolvable.
//
// Costs are float64; no rounding is applied by the solver. Duplicate
// (row, col) arcs are permitted — only the cheapest survives.
package assign
