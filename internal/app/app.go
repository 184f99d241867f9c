//go:build ebiten

package app

import (
	"time"

	"terra-gen/internal/core"
	"terra-gen/internal/render"
	"terra-gen/internal/terrain"
	"terra-gen/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// heightProvider is implemented by generators that expose raw elevations
// for shaded rendering.
type heightProvider interface {
	Heights() []float64
}

// progressProvider is implemented by generators that report run progress.
type progressProvider interface {
	Progress() core.Snapshot
}

// Game adapts a map generator to the ebiten.Game interface, advancing one
// batch per tick while a run is active.
type Game struct {
	gen     core.Generator
	painter *render.GridPainter
	overlay *ui.Overlay

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided generator.
func New(gen core.Generator, scale int, seed int64) *Game {
	size := gen.Size()
	return &Game{
		gen:     gen,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(),
		scale:   scale,
		seed:    seed,
	}
}

// Overlay exposes the overlay so callers can wire it as a droplet observer.
func (g *Game) Overlay() *ui.Overlay { return g.overlay }

// Reset reinitializes the generation run with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.gen.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the generator.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if g.overlay != nil {
		g.overlay.Update()
	}

	if !g.gen.Done() && (!g.paused || g.tickOnce) {
		g.gen.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current tile buffer with elevation shading, then the
// progress overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	var heights []float64
	if hp, ok := g.gen.(heightProvider); ok {
		heights = hp.Heights()
	}
	g.painter.Blit(screen, g.gen.Cells(), heights, terrain.Palette(), g.scale)

	if g.overlay != nil {
		var snap core.Snapshot
		if pp, ok := g.gen.(progressProvider); ok {
			snap = pp.Progress()
		}
		g.overlay.Draw(screen, snap, g.gen.Done(), g.scale)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.gen.Size()
	return s.W * g.scale, s.H * g.scale
}
