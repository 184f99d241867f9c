//go:build !ebiten

package ui

import "terra-gen/internal/core"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay() *Overlay { return &Overlay{} }

// DropletAt is a no-op in headless builds.
func (o *Overlay) DropletAt(x, y float64) {}

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, core.Snapshot, bool, int) {}
