// Package telemetry carries the ambient observability stack for the MHT
// engine: structured logging via zerolog and Prometheus counters/histograms.
// None of this is part of the algorithmic core (§7 error handling is silent
// and local for algorithmic conditions); telemetry only observes decisions
// the engine already made, it never influences them.
//
// New returns the default Telemetry: its logger is a no-op and its metrics
// are not registered with any registry, so hosts that don't call
// mht.WithLogger/mht.WithMetrics pay no observable cost.
package telemetry
