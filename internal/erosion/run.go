package erosion

import "terra-gen/internal/core"

// Run drives an Engine across many external ticks without ever blocking the
// caller for more than one batch of bounded-lifetime droplets.
type Run struct {
	engine   *Engine
	total    int
	batch    int
	progress *core.Progress
	done     bool
	aborted  bool
}

// NewRun prepares an incremental erosion run of total droplets processed in
// batches of the given size.
func NewRun(engine *Engine, total, batch int) *Run {
	if total < 0 {
		total = 0
	}
	if batch <= 0 {
		batch = 1
	}
	r := &Run{engine: engine, total: total, batch: batch, progress: core.NewProgress(total)}
	if total == 0 {
		r.done = true
	}
	return r
}

// Advance runs up to one batch of droplets and reports whether the run has
// completed. Calling after completion is a no-op that keeps reporting true.
func (r *Run) Advance() bool {
	if r.done {
		return true
	}
	n := r.batch
	if remaining := r.total - r.progress.Completed(); n > remaining {
		n = remaining
	}
	r.engine.Erode(n)
	r.progress.Add(n)
	if r.progress.Completed() >= r.total {
		r.done = true
	}
	return r.done
}

// Abort stops the run at the current batch boundary. The heightfield stays
// valid and classifiable at whatever state erosion reached.
func (r *Run) Abort() {
	if !r.done {
		r.aborted = true
		r.done = true
	}
}

// Done reports whether the run has finished, by completion or abort.
func (r *Run) Done() bool { return r.done }

// Aborted reports whether the run ended via Abort.
func (r *Run) Aborted() bool { return r.aborted }

// Progress returns a snapshot of completion counters and time estimates.
func (r *Run) Progress() core.Snapshot { return r.progress.Snapshot() }
