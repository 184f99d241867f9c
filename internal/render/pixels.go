package render

import (
	"image"
	"image/color"

	"terra-gen/internal/terrain"
)

// fillPaletteRGBA converts tile values into RGBA pixels using a palette.
// When the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// fillShadedRGBA converts tile values into RGBA pixels shaded by elevation.
// cells and heights must have equal length.
func fillShadedRGBA(buf []byte, cells []uint8, heights []float64) {
	for i, c := range cells {
		col := terrain.ShadedColor(terrain.TileKind(c), heights[i])
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// ShadedImage renders a classified heightmap into a standalone RGBA image,
// for PNG export by headless tools.
func ShadedImage(w, h int, cells []uint8, heights []float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if len(cells) != w*h || len(heights) != w*h {
		return img
	}
	fillShadedRGBA(img.Pix, cells, heights)
	return img
}
