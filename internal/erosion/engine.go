package erosion

import (
	"math"

	"terra-gen/internal/terrain"
	"terra-gen/pkg/core"
)

const (
	// Direction vectors below this magnitude count as degenerate.
	directionEpsilon = 1e-8
	// Droplets terminate once their water evaporates to this level.
	minWater = 0.001
	// Floor for the squared speed so droplets never stall numerically.
	minSpeedSquared = 0.01
)

// CellChange reports a height mutation applied at a single cell.
type CellChange struct {
	X, Y   int
	Height float64
}

// Observer receives optional callouts while droplets run, for incremental
// redraw and path visualization. Methods fire thousands of times per batch;
// implementations must be cheap.
type Observer interface {
	CellChanged(change CellChange)
	DropletMoved(x, y float64)
}

// droplet is the ephemeral per-iteration simulation state. It never escapes
// a single simulateDroplet call.
type droplet struct {
	x, y     float64
	dx, dy   float64
	speed    float64
	water    float64
	sediment float64
}

// Engine runs droplet simulations that reshape a heightfield in place. It
// never spawns goroutines; callers drive it in bounded slices, so exactly
// one run holds write access to the heightfield at a time.
type Engine struct {
	hf     *terrain.Heightfield
	params Params
	rng    *core.RNG
	obs    Observer
}

// NewEngine prepares an engine over the given heightfield. The parameters
// are assumed validated by the caller.
func NewEngine(hf *terrain.Heightfield, params Params, rng *core.RNG) *Engine {
	return &Engine{hf: hf, params: params, rng: rng}
}

// SetObserver attaches an optional callout target for visualization.
func (e *Engine) SetObserver(obs Observer) { e.obs = obs }

// Erode runs n droplet simulations, mutating the heightfield in place.
func (e *Engine) Erode(n int) {
	for i := 0; i < n; i++ {
		e.simulateDroplet()
	}
}

func (e *Engine) simulateDroplet() {
	w := e.hf.W()
	h := e.hf.H()
	if w < 4 || h < 4 {
		return
	}

	// Spawn within the interior so the first border check can't read
	// outside the grid.
	d := droplet{
		x:     1 + e.rng.Float64()*float64(w-2),
		y:     1 + e.rng.Float64()*float64(h-2),
		speed: e.params.InitialSpeed,
		water: e.params.InitialWater,
	}

	for life := 0; life < e.params.MaxLifetime; life++ {
		cx := int(d.x)
		cy := int(d.y)
		if nearBorder(cx, cy, w, h) {
			return
		}

		gx, gy := e.hf.GradientAt(d.x, d.y)

		d.dx = d.dx*e.params.Inertia - gx*(1-e.params.Inertia)
		d.dy = d.dy*e.params.Inertia - gy*(1-e.params.Inertia)
		mag := math.Hypot(d.dx, d.dy)
		if mag < directionEpsilon {
			// Flat terrain: pick a random direction, or give up if even
			// that is degenerate.
			d.dx, d.dy = e.rng.UnitVector()
			mag = math.Hypot(d.dx, d.dy)
			if mag < directionEpsilon {
				return
			}
		}
		d.dx /= mag
		d.dy /= mag

		nx := d.x + d.dx
		ny := d.y + d.dy
		if nearBorder(int(nx), int(ny), w, h) {
			return
		}

		oldHeight := e.hf.SampleBilinear(d.x, d.y)
		newHeight := e.hf.SampleBilinear(nx, ny)
		deltaHeight := newHeight - oldHeight

		capacity := d.water * d.speed * e.params.SedimentCapacityFactor
		if capacity < e.params.MinSedimentCapacity {
			capacity = e.params.MinSedimentCapacity
		}

		if deltaHeight < 0 {
			drop := -deltaHeight
			if d.sediment+drop < capacity {
				// Room to carry more: erode the current cell.
				amount := math.Min(drop, capacity-d.sediment) * e.params.ErosionSpeed
				applied := e.hf.Adjust(cx, cy, -amount)
				d.sediment -= applied
				e.notifyCell(cx, cy)
			} else {
				// Overloaded: drop part of the load.
				amount := math.Min(d.sediment, d.sediment+drop-capacity) * e.params.DepositionSpeed
				applied := e.hf.Adjust(cx, cy, amount)
				d.sediment -= applied
				if d.sediment < 0 {
					d.sediment = 0
				}
				e.notifyCell(cx, cy)
			}
		} else {
			deposit := math.Min(d.sediment, deltaHeight+d.sediment*e.params.DepositionSpeed*0.1)
			if deposit > 0 {
				applied := e.hf.Adjust(cx, cy, deposit)
				d.sediment -= applied
				if d.sediment < 0 {
					d.sediment = 0
				}
				e.notifyCell(cx, cy)
			}
		}

		d.speed = math.Sqrt(math.Max(minSpeedSquared, d.speed*d.speed+deltaHeight*e.params.Gravity))
		d.water *= 1 - e.params.EvaporationSpeed
		if d.water <= minWater {
			return
		}

		d.x = nx
		d.y = ny
		if e.obs != nil {
			e.obs.DropletMoved(d.x, d.y)
		}
	}
}

func (e *Engine) notifyCell(x, y int) {
	if e.obs == nil {
		return
	}
	e.obs.CellChanged(CellChange{X: x, Y: y, Height: e.hf.At(x, y)})
}

// nearBorder reports whether the cell lies within one cell of the map edge,
// where gradients would need out-of-bounds samples.
func nearBorder(x, y, w, h int) bool {
	return x < 1 || y < 1 || x >= w-1 || y >= h-1
}
