// Package murty implements the ranked-assignments queue: given any number of
// assignment problems (§assign), each tagged by an opaque handle, it yields
// solutions across all of them in non-decreasing cost order.
//
// Internally this is Murty's algorithm: a list of problem/solution pairs
// ⟨P, S⟩ where P is a (possibly restricted) version of an original problem
// and S is its best solution, solved lazily. Popping the globally cheapest
// pair, solving it if necessary, and then partitioning it into children whose
// combined solution sets equal the parent's minus the one just returned, is
// exactly Murty's k-best enumeration — here driven by a linear "scan the pair
// list for best, solve, maybe retry" loop rather than a heap, because
// a pair's priority (its current cost) can change the moment it is solved.
//
// Handles are caller-supplied and immutable across partitioning: a child pair
// produced from popping a problem keeps its parent's handle, so a caller can
// always tell which original problem a yielded solution belongs to (the MHT
// cluster engine, §cluster, tags each assignment problem by its owning group
// hypothesis).
package murty
