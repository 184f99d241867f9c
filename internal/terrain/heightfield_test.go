package terrain

import (
	"math"
	"testing"
)

func TestSetClampsToUnitRange(t *testing.T) {
	hf := NewHeightfield(4, 4)
	hf.Set(1, 1, 2.5)
	if got := hf.At(1, 1); got != 1 {
		t.Fatalf("over-range write not clamped: got %g", got)
	}
	hf.Set(1, 1, -0.5)
	if got := hf.At(1, 1); got != 0 {
		t.Fatalf("under-range write not clamped: got %g", got)
	}
}

func TestOutOfBoundsReadsSeeWall(t *testing.T) {
	hf := NewHeightfield(4, 4)
	if got := hf.At(-1, 0); got != 1 {
		t.Fatalf("out-of-bounds read should return wall height 1, got %g", got)
	}
	if got := hf.At(0, 4); got != 1 {
		t.Fatalf("out-of-bounds read should return wall height 1, got %g", got)
	}
}

func TestAdjustReturnsAppliedChange(t *testing.T) {
	hf := NewHeightfield(4, 4)
	hf.Set(2, 2, 0.9)

	applied := hf.Adjust(2, 2, 0.5)
	if math.Abs(applied-0.1) > 1e-12 {
		t.Fatalf("clamped adjust should apply 0.1, applied %g", applied)
	}
	if got := hf.At(2, 2); got != 1 {
		t.Fatalf("adjust should cap at 1, got %g", got)
	}

	applied = hf.Adjust(2, 2, -2)
	if math.Abs(applied+1) > 1e-12 {
		t.Fatalf("floored adjust should apply -1, applied %g", applied)
	}
	if got := hf.At(2, 2); got != 0 {
		t.Fatalf("adjust should floor at 0, got %g", got)
	}
}

func TestBilinearInterpolatesBetweenCells(t *testing.T) {
	hf := NewHeightfield(4, 4)
	hf.Set(1, 1, 0.2)
	hf.Set(2, 1, 0.6)

	got := hf.SampleBilinear(1.5, 1)
	if math.Abs(got-0.4) > 1e-12 {
		t.Fatalf("midpoint sample = %g, want 0.4", got)
	}

	if got := hf.SampleBilinear(1, 1); math.Abs(got-0.2) > 1e-12 {
		t.Fatalf("integer sample = %g, want exact cell value 0.2", got)
	}
}

func TestGradientPointsUphill(t *testing.T) {
	hf := NewHeightfield(8, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			hf.Set(x, y, float64(x)*0.1)
		}
	}

	gx, gy := hf.GradientAt(3.5, 3.5)
	if gx <= 0 {
		t.Fatalf("slope rises with x, expected positive gx, got %g", gx)
	}
	if math.Abs(gy) > 1e-12 {
		t.Fatalf("slope is constant in y, expected zero gy, got %g", gy)
	}
}
