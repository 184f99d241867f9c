package terrain

import (
	"image/color"

	"terra-gen/internal/core"
)

// TileKind enumerates the terrain categories derived from height.
type TileKind uint8

const (
	TileWater TileKind = iota
	TileDirt
	TileGrass
	TileRock
)

// Classification thresholds. Heights below WaterLevel are water, and so on
// up the ordered bands. The same thresholds apply before and after erosion,
// so an unmodified cell never changes category.
const (
	WaterLevel = 0.30
	DirtLevel  = 0.50
	GrassLevel = 0.75
)

// Classify maps a height scalar onto its terrain category.
func Classify(h float64) TileKind {
	switch {
	case h < WaterLevel:
		return TileWater
	case h < DirtLevel:
		return TileDirt
	case h < GrassLevel:
		return TileGrass
	default:
		return TileRock
	}
}

// String returns the tile category name.
func (k TileKind) String() string {
	switch k {
	case TileWater:
		return "water"
	case TileDirt:
		return "dirt"
	case TileGrass:
		return "grass"
	case TileRock:
		return "rock"
	default:
		return "unknown"
	}
}

// ClassifyGrid writes the tile kind of every heightfield cell into tiles.
// The grids must share dimensions.
func ClassifyGrid(hf *Heightfield, tiles *core.ByteGrid) {
	if tiles.W != hf.W() || tiles.H != hf.H() {
		return
	}
	heights := hf.Cells()
	cells := tiles.Cells()
	for i, h := range heights {
		cells[i] = uint8(Classify(h))
	}
}

// Palette returns the render colors indexed by TileKind.
func Palette() []color.RGBA {
	return []color.RGBA{
		{R: 52, G: 101, B: 164, A: 255},
		{R: 133, G: 94, B: 66, A: 255},
		{R: 87, G: 146, B: 74, A: 255},
		{R: 136, G: 138, B: 133, A: 255},
	}
}

// ShadedColor blends the tile color with elevation so the render path shows
// relief inside a band: low cells darken, high cells lighten.
func ShadedColor(kind TileKind, h float64) color.RGBA {
	palette := Palette()
	base := palette[0]
	if int(kind) < len(palette) {
		base = palette[kind]
	}
	// Map height onto a [-0.25, +0.25] brightness offset.
	shade := (clamp01(h) - 0.5) * 0.5
	if shade >= 0 {
		return blendToward(base, color.RGBA{R: 255, G: 255, B: 255, A: 255}, shade)
	}
	return blendToward(base, color.RGBA{A: 255}, -shade)
}

func blendToward(base, target color.RGBA, weight float64) color.RGBA {
	if weight <= 0 {
		return base
	}
	if weight >= 1 {
		return target
	}
	inv := 1 - weight
	return color.RGBA{
		R: uint8(float64(base.R)*inv + float64(target.R)*weight + 0.5),
		G: uint8(float64(base.G)*inv + float64(target.G)*weight + 0.5),
		B: uint8(float64(base.B)*inv + float64(target.B)*weight + 0.5),
		A: 255,
	}
}
