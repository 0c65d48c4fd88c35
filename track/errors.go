package track

import "errors"

// ErrNoSuchNode is returned when an operation names a NodeID the Store does
// not currently hold — a detached or already-removed node (§7.iv: a
// programmer-misuse condition, checked rather than silently tolerated).
var ErrNoSuchNode = errors.New("track: no such node")

// ErrNoSuchReport is returned when an operation names a ReportID the Store
// does not currently hold.
var ErrNoSuchReport = errors.New("track: no such report")
