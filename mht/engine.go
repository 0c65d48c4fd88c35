package mht

import (
	"context"
	"time"

	"github.com/arfken-labs/mht/cluster"
	"github.com/arfken-labs/mht/model"
	"github.com/arfken-labs/mht/track"
)

// Engine is one MHT reasoner instance: a track.Store plus the previous
// scan's cluster/GH state (§5: "single-threaded and strictly sequential
// per instance"). The zero value is not usable; construct one with New.
// Engine must never be shared between goroutines, nor may its Store,
// clusters, or murty queues be aliased by another Engine.
type Engine struct {
	cfg      Config
	model    model.Model
	verifier Verifier
	store    *track.Store

	clusters    []*cluster.Cluster
	pending     []track.ReportID
	nextRow     int
	currentTime int
}

// New constructs an Engine backed by the model modelFactory produces
// (§6). verifier may be nil if the host does not need verification
// callbacks.
func New(modelFactory model.Factory, verifier Verifier, opts ...Option) *Engine {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Engine{
		cfg:      cfg,
		model:    modelFactory(),
		verifier: verifier,
		store:    track.NewStore(),
	}
}

// AddReports enqueues one scan's worth of report payloads (§6). Reports
// are admitted into the store immediately, since growLeaves needs their
// payload on the very next Scan; row numbers are assigned at §4.5 step 3.
func (e *Engine) AddReports(batch []model.Report) {
	for _, payload := range batch {
		id := e.store.NewReport(payload)
		e.pending = append(e.pending, id)
	}
}

// IsInUse reports whether the engine currently manages any track tree.
func (e *Engine) IsInUse() bool { return len(e.store.Trees()) > 0 }

// CurrentTime returns the scan index last processed.
func (e *Engine) CurrentTime() int { return e.currentTime }

// Scan processes the queued report batch through one full pruning-driver
// pass (§4.5 steps 1-12), returning whether any tree remains active
// afterwards. A scan has no suspension points once started (§5); ctx is
// consulted only before that point, so a host may refuse to start a scan
// it has already decided to abandon.
func (e *Engine) Scan(ctx context.Context) (active bool, err error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	start := time.Now()
	defer func() { e.cfg.Telemetry.Metrics.ScanDuration.Observe(time.Since(start).Seconds()) }()

	batch := e.pending
	e.pending = nil

	if err := e.growLeaves(batch); err != nil {
		return false, err
	}

	e.currentTime++

	for _, repID := range batch {
		if err := e.store.SetRowNumber(repID, e.nextRow); err != nil {
			return false, err
		}
		e.nextRow++
	}

	if err := e.runClustering(e.cfg.MaxDepth); err != nil {
		return false, err
	}

	if err := e.verifyAndCollapse(); err != nil {
		return false, err
	}

	e.dropDeadTrees()
	e.dropDeadReports()

	e.cfg.Telemetry.Metrics.ScansProcessed.Inc()
	e.cfg.Telemetry.Metrics.ActiveTracks.Set(float64(len(e.store.Trees())))

	return e.IsInUse(), nil
}

// Clear drains every remaining tree, forcing verification at progressively
// shallower N-scanback depths until nothing remains or MaxDepth's budget is
// exhausted (§6 "clear()", §4.5 "Final drain").
func (e *Engine) Clear(ctx context.Context) error {
	for depth := e.cfg.MaxDepth; depth >= 0 && e.IsInUse(); depth-- {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := e.growLeaves(nil); err != nil {
			return err
		}
		e.currentTime++

		if err := e.runClustering(depth); err != nil {
			return err
		}
		if err := e.verifyAndCollapse(); err != nil {
			return err
		}

		e.dropDeadTrees()
		e.dropDeadReports()
	}
	return nil
}
