package terrain

import (
	"math"

	"terra-gen/internal/core"
)

// Heightfield is a dense grid of normalized elevation scalars. Every cell
// holds a finite value in [0, 1]; all writes clamp to that range.
type Heightfield struct {
	grid *core.FloatGrid
}

// NewHeightfield allocates a w×h heightfield of zeros.
func NewHeightfield(w, h int) *Heightfield {
	return &Heightfield{grid: core.NewFloatGrid(w, h)}
}

// W reports the grid width.
func (hf *Heightfield) W() int { return hf.grid.W }

// H reports the grid height.
func (hf *Heightfield) H() int { return hf.grid.H }

// Cells exposes the backing height slice in row-major order.
func (hf *Heightfield) Cells() []float64 { return hf.grid.Cells() }

// Index returns the linear slice index for coordinates (x, y).
func (hf *Heightfield) Index(x, y int) int { return hf.grid.Index(x, y) }

// FillFromField samples the noise field at every cell center.
func (hf *Heightfield) FillFromField(f *Field) {
	cells := hf.grid.Cells()
	for y := 0; y < hf.grid.H; y++ {
		for x := 0; x < hf.grid.W; x++ {
			cells[hf.grid.Index(x, y)] = f.Normalized(float64(x), float64(y))
		}
	}
}

// Fill sets every cell to v, clamped to [0, 1].
func (hf *Heightfield) Fill(v float64) {
	hf.grid.Fill(clamp01(v))
}

// At returns the height at an integer cell. Reads outside the grid see a
// 1.0 wall that repels droplet flow.
func (hf *Heightfield) At(x, y int) float64 {
	if !hf.grid.InBounds(x, y) {
		return 1.0
	}
	return hf.grid.Cells()[hf.grid.Index(x, y)]
}

// Set writes a height clamped to [0, 1]. Out-of-range writes are dropped.
func (hf *Heightfield) Set(x, y int, v float64) {
	if !hf.grid.InBounds(x, y) {
		return
	}
	hf.grid.Cells()[hf.grid.Index(x, y)] = clamp01(v)
}

// Adjust adds delta to a cell, clamped to [0, 1], and returns the change
// actually applied after clamping.
func (hf *Heightfield) Adjust(x, y int, delta float64) float64 {
	if !hf.grid.InBounds(x, y) {
		return 0
	}
	i := hf.grid.Index(x, y)
	old := hf.grid.Cells()[i]
	v := clamp01(old + delta)
	hf.grid.Cells()[i] = v
	return v - old
}

// SampleBilinear interpolates the height at a fractional position from the
// four surrounding cells.
func (hf *Heightfield) SampleBilinear(x, y float64) float64 {
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	tx := x - float64(x0)
	ty := y - float64(y0)

	h00 := hf.At(x0, y0)
	h10 := hf.At(x0+1, y0)
	h01 := hf.At(x0, y0+1)
	h11 := hf.At(x0+1, y0+1)

	top := h00*(1-tx) + h10*tx
	bottom := h01*(1-tx) + h11*tx
	return top*(1-ty) + bottom*ty
}

// GradientAt estimates the local slope via central differences of bilinear
// samples at unit offsets.
func (hf *Heightfield) GradientAt(x, y float64) (float64, float64) {
	gx := (hf.SampleBilinear(x+1, y) - hf.SampleBilinear(x-1, y)) / 2
	gy := (hf.SampleBilinear(x, y+1) - hf.SampleBilinear(x, y-1)) / 2
	return gx, gy
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
