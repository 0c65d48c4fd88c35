package assign

// Unassigned is the sentinel row or column index meaning "this side of the
// arc may remain unmatched". It must never be confused with a real vertex
// index during row/column membership tests.
const Unassigned = -1

// Arc is a potential assignment (row, col, cost), optionally carrying an
// opaque application payload (e.g. the child hypothesis a caller will
// materialize if this arc is selected).
//
// Row == Unassigned means "column Col may bind to nothing, at Cost".
// Col == Unassigned means "row Row may bind to nothing, at Cost".
// Row == Col == Unassigned is not a valid arc.
type Arc struct {
	Row     int
	Col     int
	Cost    float64
	Payload any
}
