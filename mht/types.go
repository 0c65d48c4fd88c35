package mht

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/arfken-labs/mht/internal/telemetry"
	"github.com/arfken-labs/mht/model"
	"github.com/arfken-labs/mht/track"
)

// Config holds the three construction parameters spec.md §6 names
// (MaxDepth, MinGHypoRatio, MaxGHypos) plus the ambient logging/metrics
// hooks (§9). Built exclusively through Option, mirroring the teacher's
// builder.BuilderOption / dijkstra.Option functional-options pattern.
type Config struct {
	// MaxDepth is the N-scanback commit delay: a leaf at least this many
	// edges from its tree's root forces that root down to a single child.
	MaxDepth int

	// MinGHypoRatio is the minimum kept likelihood ratio to a cluster's
	// best GH, 0 < r <= 1.
	MinGHypoRatio float64

	// MaxGHypos caps the number of GHs kept per cluster.
	MaxGHypos int

	// Telemetry carries the logger and metrics instruments the engine
	// reports through (§9, ambient — ignored by the core algorithms
	// themselves).
	Telemetry telemetry.Telemetry
}

// DefaultConfig returns conservative defaults: a 3-scan commit delay, a 1%
// likelihood-ratio cutoff, and a cap of 8 GHs per cluster.
func DefaultConfig() Config {
	return Config{
		MaxDepth:      3,
		MinGHypoRatio: 0.01,
		MaxGHypos:     8,
		Telemetry:     telemetry.New(),
	}
}

// Option configures a Config.
type Option func(*Config)

// WithMaxDepth sets the N-scanback commit delay. Panics if n is not
// positive (§7.iv: programmer misuse is confined to option constructors,
// matching dijkstra.WithMaxDistance's validation style).
func WithMaxDepth(n int) Option {
	return func(c *Config) {
		if n <= 0 {
			panic("mht: MaxDepth must be positive")
		}
		c.MaxDepth = n
	}
}

// WithMinGHypoRatio sets the ratio-pruning cutoff. Panics if r is not in
// (0, 1].
func WithMinGHypoRatio(r float64) Option {
	return func(c *Config) {
		if r <= 0 || r > 1 {
			panic("mht: MinGHypoRatio must be in (0, 1]")
		}
		c.MinGHypoRatio = r
	}
}

// WithMaxGHypos sets the k-best cap. Panics if n is not positive.
func WithMaxGHypos(n int) Option {
	return func(c *Config) {
		if n <= 0 {
			panic("mht: MaxGHypos must be positive")
		}
		c.MaxGHypos = n
	}
}

// WithLogger installs a structured logger; the default is zerolog.Nop(),
// keeping the engine silent unless a host opts in.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Config) { c.Telemetry.Log = log }
}

// WithMetrics registers the engine's Prometheus instruments with reg.
func WithMetrics(reg *prometheus.Registry) Option {
	return func(c *Config) { c.Telemetry.Metrics = telemetry.NewMetrics(reg) }
}

// Verifier receives committed track events as the pruning driver collapses
// verified roots (§6 "Verification callbacks"). A nil Verifier is valid:
// verified nodes are simply dropped without notification.
type Verifier interface {
	StartTrack(trackID track.TrackID, timeStamp int, state any, report model.Report)
	ContinueTrack(trackID track.TrackID, timeStamp int, state any, report model.Report)
	SkipTrack(trackID track.TrackID, timeStamp int, state any)
	EndTrack(trackID track.TrackID, timeStamp int)
	FalseAlarm(timeStamp int, report model.Report)
}
