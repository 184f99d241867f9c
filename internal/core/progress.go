package core

import "time"

// Progress tracks completion of a long-running generation pass and derives
// wall-clock estimates from the completed/total ratio.
type Progress struct {
	total     int
	completed int
	started   time.Time
}

// NewProgress starts tracking a pass of the given total work unit count.
func NewProgress(total int) *Progress {
	if total < 0 {
		total = 0
	}
	return &Progress{total: total, started: time.Now()}
}

// Add records n completed units, saturating at the total.
func (p *Progress) Add(n int) {
	if n <= 0 {
		return
	}
	p.completed += n
	if p.completed > p.total {
		p.completed = p.total
	}
}

// Completed returns the number of units finished so far.
func (p *Progress) Completed() int { return p.completed }

// Total returns the number of units requested.
func (p *Progress) Total() int { return p.total }

// Ratio returns completion in [0, 1]; an empty pass counts as complete.
func (p *Progress) Ratio() float64 {
	if p.total == 0 {
		return 1
	}
	return float64(p.completed) / float64(p.total)
}

// Elapsed returns the wall-clock time since tracking started.
func (p *Progress) Elapsed() time.Duration { return time.Since(p.started) }

// Remaining projects the time left from the completion ratio. It returns
// zero until any work has completed, so an idle pass never divides by zero.
func (p *Progress) Remaining() time.Duration {
	if p.completed == 0 || p.total == 0 {
		return 0
	}
	elapsed := p.Elapsed()
	estimated := time.Duration(float64(elapsed) * float64(p.total) / float64(p.completed))
	if estimated < elapsed {
		return 0
	}
	return estimated - elapsed
}

// Snapshot is an immutable view of the run progress.
type Snapshot struct {
	Completed int
	Total     int
	Elapsed   time.Duration
	Remaining time.Duration
}

// Snapshot captures the current progress state.
func (p *Progress) Snapshot() Snapshot {
	return Snapshot{
		Completed: p.completed,
		Total:     p.total,
		Elapsed:   p.Elapsed(),
		Remaining: p.Remaining(),
	}
}
