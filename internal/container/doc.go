// Package container provides small generic data structures shared by the
// MHT engines: a stable priority queue on top of container/heap.
//
// PQueue wraps container/heap with a user-supplied ordering function and a
// monotonically increasing sequence number used as the final tie-break, so
// that two equally-ranked entries always pop in the order they were pushed
// (FIFO among ties). The cluster merge frontier relies on this to make
// likelihood-sorted merges reproducible.
package container
