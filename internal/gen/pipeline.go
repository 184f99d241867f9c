package gen

import (
	"errors"

	"terra-gen/internal/core"
	"terra-gen/internal/erosion"
	"terra-gen/internal/settle"
	"terra-gen/internal/terrain"
	rng "terra-gen/pkg/core"
)

// ErrRunActive reports that a generation run is already in progress. It is
// a recoverable rejection: callers retry after the run completes or aborts.
var ErrRunActive = errors.New("gen: generation run already active")

// TileObserver receives per-cell classification updates during erosion so a
// renderer can redraw incrementally.
type TileObserver interface {
	TileChanged(x, y int, kind terrain.TileKind)
}

// DropletObserver receives droplet positions for optional path visualization.
type DropletObserver interface {
	DropletAt(x, y float64)
}

// Result is the finalized output of a generation run. Heights and Tiles are
// row-major snapshots decoupled from the pipeline's working state.
type Result struct {
	Width, Height int
	Heights       []float64
	Tiles         []terrain.TileKind

	Families          []settle.Family
	FamiliesRequested int
}

// FamilyShortfall returns how many requested families were not placed.
func (r *Result) FamilyShortfall() int { return r.FamiliesRequested - len(r.Families) }

// Cell pairs a final height with its classification.
type Cell struct {
	Height float64
	Kind   terrain.TileKind
}

// Grid returns the result as nested per-cell records, the export shape
// consumed by external persistence collaborators.
func (r *Result) Grid() [][]Cell {
	rows := make([][]Cell, r.Height)
	for y := 0; y < r.Height; y++ {
		row := make([]Cell, r.Width)
		for x := 0; x < r.Width; x++ {
			i := y*r.Width + x
			row[x] = Cell{Height: r.Heights[i], Kind: r.Tiles[i]}
		}
		rows[y] = row
	}
	return rows
}

// Pipeline owns one generation run at a time: it seeds a heightfield from
// noise, erodes it over scheduled batches, then classifies the terrain and
// places settlement families. It implements core.Generator so any tick loop
// can drive it one bounded batch per call.
type Pipeline struct {
	name string
	cfg  Config

	hf    *terrain.Heightfield
	tiles *core.ByteGrid
	rng   *rng.RNG

	run    *erosion.Run
	result *Result

	tileObs TileObserver
	dropObs DropletObserver
}

// NewPipeline validates the configuration and prepares an idle pipeline.
// Validation failures surface here, before any state exists to corrupt.
func NewPipeline(cfg Config) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Pipeline{name: "terragen", cfg: cfg}, nil
}

// SetTileObserver injects the renderer collaborator notified of incremental
// tile changes. Must be called before Start.
func (p *Pipeline) SetTileObserver(obs TileObserver) { p.tileObs = obs }

// SetDropletObserver injects the collaborator notified of droplet positions.
// Must be called before Start.
func (p *Pipeline) SetDropletObserver(obs DropletObserver) { p.dropObs = obs }

// Config returns the pipeline's validated configuration.
func (p *Pipeline) Config() Config { return p.cfg }

// Name returns the generator identifier.
func (p *Pipeline) Name() string { return p.name }

// Size reports the map dimensions.
func (p *Pipeline) Size() core.Size { return core.Size{W: p.cfg.Width, H: p.cfg.Height} }

// Start begins a generation run with the given seed (0 uses the configured
// seed). It returns ErrRunActive while a previous run is still in progress.
func (p *Pipeline) Start(seed int64) error {
	if p.run != nil && !p.run.Done() {
		return ErrRunActive
	}
	if seed == 0 {
		seed = p.cfg.Seed
	}

	p.result = nil
	p.rng = rng.NewRNG(seed)

	p.hf = terrain.NewHeightfield(p.cfg.Width, p.cfg.Height)
	p.hf.FillFromField(terrain.NewField(seed, p.cfg.Noise))

	p.tiles = core.NewByteGrid(p.cfg.Width, p.cfg.Height)
	terrain.ClassifyGrid(p.hf, p.tiles)

	engine := erosion.NewEngine(p.hf, p.cfg.Erosion, p.rng)
	engine.SetObserver(&observerBridge{p: p})
	p.run = erosion.NewRun(engine, p.cfg.Erosion.Iterations, p.cfg.Erosion.BatchSize)
	if p.run.Done() {
		// Zero-iteration runs finalize immediately.
		p.finalize(true)
	}
	return nil
}

// Reset discards any active run and starts fresh with the given seed. This
// is the explicit restart path; Start alone never preempts a running pass.
func (p *Pipeline) Reset(seed int64) {
	if p.run != nil && !p.run.Done() {
		p.run.Abort()
	}
	// Cannot fail: the config was validated at construction and no run is
	// active anymore.
	_ = p.Start(seed)
}

// Step advances the active run by one batch. Once erosion completes it
// reclassifies the map and places families. Idle pipelines ignore Step.
func (p *Pipeline) Step() {
	if p.run == nil || p.result != nil {
		return
	}
	if p.run.Advance() {
		p.finalize(true)
	}
}

// Abort cancels the active run between batches, leaving a valid partial
// heightfield. The partial map is classified but no families are placed.
func (p *Pipeline) Abort() {
	if p.run == nil || p.run.Done() {
		return
	}
	p.run.Abort()
	p.finalize(false)
}

// Done reports whether no work remains.
func (p *Pipeline) Done() bool { return p.run == nil || p.result != nil }

// Cells exposes the tile classification buffer for display. During a run
// the buffer tracks erosion incrementally; after completion it holds the
// authoritative classification.
func (p *Pipeline) Cells() []uint8 {
	if p.tiles == nil {
		return nil
	}
	return p.tiles.Cells()
}

// Heights exposes the working heightfield cells; nil before the first run.
func (p *Pipeline) Heights() []float64 {
	if p.hf == nil {
		return nil
	}
	return p.hf.Cells()
}

// Progress returns the erosion progress snapshot for the active or last run.
func (p *Pipeline) Progress() core.Snapshot {
	if p.run == nil {
		return core.Snapshot{}
	}
	return p.run.Progress()
}

// Result returns the finalized output, or nil while a run is in progress.
func (p *Pipeline) Result() *Result { return p.result }

func (p *Pipeline) finalize(placeFamilies bool) {
	terrain.ClassifyGrid(p.hf, p.tiles)

	res := &Result{
		Width:   p.cfg.Width,
		Height:  p.cfg.Height,
		Heights: append([]float64(nil), p.hf.Cells()...),
		Tiles:   make([]terrain.TileKind, len(p.tiles.Cells())),
	}
	for i, b := range p.tiles.Cells() {
		res.Tiles[i] = terrain.TileKind(b)
	}

	if placeFamilies {
		placed := settle.Place(p.tiles, p.cfg.Settle, p.rng)
		res.Families = placed.Families
		res.FamiliesRequested = placed.Requested
	}
	p.result = res
}

// observerBridge adapts erosion callouts onto the tile buffer and the
// injected collaborators.
type observerBridge struct {
	p *Pipeline
}

func (b *observerBridge) CellChanged(c erosion.CellChange) {
	kind := terrain.Classify(c.Height)
	cells := b.p.tiles.Cells()
	i := b.p.tiles.Index(c.X, c.Y)
	if cells[i] != uint8(kind) {
		cells[i] = uint8(kind)
		if b.p.tileObs != nil {
			b.p.tileObs.TileChanged(c.X, c.Y, kind)
		}
	}
}

func (b *observerBridge) DropletMoved(x, y float64) {
	if b.p.dropObs != nil {
		b.p.dropObs.DropletAt(x, y)
	}
}
