package terrain

import (
	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// FieldParams configure the coherent-noise field used to seed a heightmap.
type FieldParams struct {
	Frequency  float64
	Octaves    int
	Lacunarity float64
	Gain       float64

	// WarpStrength > 0 perturbs sample coordinates with a secondary noise
	// field, stretching features into elongated, river-like runs.
	WarpStrength  float64
	WarpFrequency float64
}

// DefaultFieldParams returns the canonical noise settings.
func DefaultFieldParams() FieldParams {
	return FieldParams{
		Frequency:     0.012,
		Octaves:       5,
		Lacunarity:    2.0,
		Gain:          0.5,
		WarpStrength:  18,
		WarpFrequency: 0.004,
	}
}

// Field samples deterministic multi-octave simplex noise, optionally warping
// the input domain with a perlin field. Pure function of (seed, params,
// coordinate); no state is mutated by sampling.
type Field struct {
	params FieldParams
	base   opensimplex.Noise
	warpX  *perlin.Perlin
	warpY  *perlin.Perlin
}

// NewField constructs a noise field for the given seed and parameters.
func NewField(seed int64, params FieldParams) *Field {
	f := &Field{params: params, base: opensimplex.New(seed)}
	if params.WarpStrength > 0 {
		f.warpX = perlin.NewPerlin(2, 2, 3, seed+1)
		f.warpY = perlin.NewPerlin(2, 2, 3, seed+2)
	}
	return f
}

// Sample returns the field value at (x, y), nominally in [-1, 1].
func (f *Field) Sample(x, y float64) float64 {
	if f.warpX != nil {
		wf := f.params.WarpFrequency
		wx := f.warpX.Noise2D(x*wf, y*wf)
		wy := f.warpY.Noise2D(x*wf, y*wf)
		x += f.params.WarpStrength * wx
		y += f.params.WarpStrength * wy
	}

	freq := f.params.Frequency
	amp := 1.0
	sum := 0.0
	norm := 0.0
	for o := 0; o < f.params.Octaves; o++ {
		sum += f.base.Eval2(x*freq, y*freq) * amp
		norm += amp
		freq *= f.params.Lacunarity
		amp *= f.params.Gain
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}

// Normalized maps Sample's nominal [-1, 1] range onto [0, 1], clamped.
func (f *Field) Normalized(x, y float64) float64 {
	v := (f.Sample(x, y) + 1) / 2
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
