package erosion

import (
	"testing"

	"terra-gen/internal/terrain"
	rng "terra-gen/pkg/core"
)

func newTestRun(total, batch int) (*Run, *terrain.Heightfield) {
	hf := noisyHeightfield(32, 32, 7)
	engine := NewEngine(hf, DefaultParams(), rng.NewRNG(7))
	return NewRun(engine, total, batch), hf
}

func TestRunCompletesWithinExpectedAdvances(t *testing.T) {
	run, _ := newTestRun(1000, 128)

	expected := 8 // ceil(1000/128)
	advances := 0
	for !run.Done() {
		run.Advance()
		advances++
		if advances > expected {
			t.Fatalf("run not complete after %d advances", advances)
		}
		if got := run.Progress().Completed; got > 1000 {
			t.Fatalf("completed count %d exceeds total", got)
		}
	}
	if advances != expected {
		t.Fatalf("run took %d advances, want %d", advances, expected)
	}
	if got := run.Progress().Completed; got != 1000 {
		t.Fatalf("completed = %d, want 1000", got)
	}
}

func TestAdvanceAfterCompletionIsNoOp(t *testing.T) {
	run, hf := newTestRun(200, 100)
	for !run.Done() {
		run.Advance()
	}
	after := append([]float64(nil), hf.Cells()...)

	for i := 0; i < 5; i++ {
		if !run.Advance() {
			t.Fatal("completed run stopped reporting done")
		}
	}
	if got := run.Progress().Completed; got != 200 {
		t.Fatalf("completed drifted to %d after extra advances", got)
	}
	for i, h := range hf.Cells() {
		if h != after[i] {
			t.Fatalf("post-completion advance mutated cell %d", i)
		}
	}
}

func TestAbortStopsRunBetweenBatches(t *testing.T) {
	run, hf := newTestRun(10000, 100)
	run.Advance()
	run.Advance()
	run.Abort()

	if !run.Done() || !run.Aborted() {
		t.Fatal("aborted run must report done and aborted")
	}
	if got := run.Progress().Completed; got != 200 {
		t.Fatalf("abort should stop at the batch boundary, completed = %d", got)
	}
	if !run.Advance() {
		t.Fatal("advance after abort must stay done")
	}
	for i, h := range hf.Cells() {
		if h < 0 || h > 1 {
			t.Fatalf("aborted run left cell %d out of bounds: %g", i, h)
		}
	}
}

func TestZeroTotalImmediatelyDone(t *testing.T) {
	run, _ := newTestRun(0, 100)
	if !run.Done() {
		t.Fatal("zero-droplet run should start done")
	}
	snap := run.Progress()
	if snap.Completed != 0 || snap.Total != 0 {
		t.Fatalf("unexpected progress %+v for empty run", snap)
	}
	if snap.Remaining != 0 {
		t.Fatalf("empty run should estimate zero remaining, got %v", snap.Remaining)
	}
}

func TestFreshRunEstimatesZeroRemaining(t *testing.T) {
	run, _ := newTestRun(1000, 100)
	if got := run.Progress().Remaining; got != 0 {
		t.Fatalf("no work done yet, remaining estimate should be zero, got %v", got)
	}
}
