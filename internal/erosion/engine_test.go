package erosion

import (
	"math"
	"slices"
	"testing"

	"terra-gen/internal/terrain"
	rng "terra-gen/pkg/core"
)

func noisyHeightfield(w, h int, seed int64) *terrain.Heightfield {
	hf := terrain.NewHeightfield(w, h)
	hf.FillFromField(terrain.NewField(seed, terrain.DefaultFieldParams()))
	return hf
}

func TestHeightsStayBounded(t *testing.T) {
	hf := noisyHeightfield(64, 64, 11)
	engine := NewEngine(hf, DefaultParams(), rng.NewRNG(11))
	engine.Erode(3000)

	for i, h := range hf.Cells() {
		if h < 0 || h > 1 || math.IsNaN(h) {
			t.Fatalf("cell %d left [0,1] after erosion: %g", i, h)
		}
	}
}

func TestErodeDeterministicForSeed(t *testing.T) {
	a := noisyHeightfield(48, 48, 23)
	b := noisyHeightfield(48, 48, 23)

	NewEngine(a, DefaultParams(), rng.NewRNG(23)).Erode(2000)
	NewEngine(b, DefaultParams(), rng.NewRNG(23)).Erode(2000)

	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("same seed produced different eroded heightfields")
	}
}

func TestFlatTerrainUnchanged(t *testing.T) {
	hf := terrain.NewHeightfield(32, 32)
	hf.Fill(0.5)

	engine := NewEngine(hf, DefaultParams(), rng.NewRNG(3))
	engine.Erode(500)

	for i, h := range hf.Cells() {
		if h != 0.5 {
			t.Fatalf("flat terrain mutated at cell %d: %g", i, h)
		}
	}
}

func TestZeroSpeedsLeaveTerrainUntouched(t *testing.T) {
	hf := noisyHeightfield(32, 32, 17)
	before := append([]float64(nil), hf.Cells()...)

	params := DefaultParams()
	params.ErosionSpeed = 0
	params.DepositionSpeed = 0
	NewEngine(hf, params, rng.NewRNG(17)).Erode(500)

	if !slices.Equal(before, hf.Cells()) {
		t.Fatal("zero erosion and deposition speeds still mutated terrain")
	}
}

func TestTinyMapIsIgnored(t *testing.T) {
	hf := terrain.NewHeightfield(3, 3)
	hf.Fill(0.4)

	NewEngine(hf, DefaultParams(), rng.NewRNG(1)).Erode(100)

	for i, h := range hf.Cells() {
		if h != 0.4 {
			t.Fatalf("map too small for droplets was mutated at cell %d: %g", i, h)
		}
	}
}

// deltaRecorder tracks the largest single-notification height change.
type deltaRecorder struct {
	prev     []float64
	w        int
	maxDelta float64
	changes  int
}

func (r *deltaRecorder) CellChanged(c CellChange) {
	i := c.Y*r.w + c.X
	d := math.Abs(c.Height - r.prev[i])
	if d > r.maxDelta {
		r.maxDelta = d
	}
	r.prev[i] = c.Height
	r.changes++
}

func (r *deltaRecorder) DropletMoved(x, y float64) {}

func TestSingleStepChangeBounded(t *testing.T) {
	hf := noisyHeightfield(64, 64, 31)
	params := DefaultParams()
	engine := NewEngine(hf, params, rng.NewRNG(31))

	recorder := &deltaRecorder{prev: append([]float64(nil), hf.Cells()...), w: hf.W()}
	engine.SetObserver(recorder)
	engine.Erode(2000)

	if recorder.changes == 0 {
		t.Fatal("expected erosion to mutate cells")
	}

	// Speed is bounded by the per-step gain over a droplet lifetime, and a
	// single step can never move more than the rate-scaled capacity.
	maxSpeed := math.Sqrt(params.InitialSpeed*params.InitialSpeed + float64(params.MaxLifetime)*params.Gravity)
	capacityBound := params.InitialWater * maxSpeed * params.SedimentCapacityFactor
	bound := math.Max(params.ErosionSpeed, params.DepositionSpeed) * capacityBound
	if recorder.maxDelta > bound {
		t.Fatalf("single-step change %g exceeds bound %g", recorder.maxDelta, bound)
	}
}
