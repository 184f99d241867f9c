//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"time"

	"terra-gen/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const dropletTrailCap = 512

// Overlay draws the run progress readout and an optional droplet path trail
// on top of the map.
type Overlay struct {
	showDroplets bool

	trail [][2]float64
	next  int
	full  bool
}

// NewOverlay constructs an overlay with the droplet trail enabled.
func NewOverlay() *Overlay {
	return &Overlay{showDroplets: true, trail: make([][2]float64, dropletTrailCap)}
}

// DropletAt records a droplet position into the trail ring buffer. It
// implements the generator's droplet observer hook.
func (o *Overlay) DropletAt(x, y float64) {
	o.trail[o.next] = [2]float64{x, y}
	o.next++
	if o.next >= len(o.trail) {
		o.next = 0
		o.full = true
	}
}

// Update processes overlay key toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		o.showDroplets = !o.showDroplets
	}
}

// Draw renders the droplet trail and the progress readout.
func (o *Overlay) Draw(screen *ebiten.Image, snap core.Snapshot, done bool, scale int) {
	if o.showDroplets && !done {
		count := o.next
		if o.full {
			count = len(o.trail)
		}
		clr := color.RGBA{R: 120, G: 180, B: 255, A: 160}
		for i := 0; i < count; i++ {
			p := o.trail[i]
			vector.DrawFilledCircle(screen, float32(p[0])*float32(scale), float32(p[1])*float32(scale), 1.5, clr, false)
		}
	}

	if done {
		ebitenutil.DebugPrintAt(screen, "generation complete", 4, 4)
		return
	}
	msg := fmt.Sprintf("droplets %d/%d  elapsed %s  eta %s",
		snap.Completed, snap.Total,
		snap.Elapsed.Truncate(100*time.Millisecond),
		snap.Remaining.Truncate(100*time.Millisecond))
	ebitenutil.DebugPrintAt(screen, msg, 4, 4)
}
