package render

import (
	"image/color"

	"github.com/muesli/gamut"
)

const (
	gridHex       = "#000000"
	markerHex     = "#000000"
	backgroundHex = "#ffffff"
)

var (
	// GridColor strokes the tile grid.
	GridColor = hexRGBA(gridHex)
	// MarkerColor fills the square of a moving villager.
	MarkerColor = hexRGBA(markerHex)
	// BackgroundColor is the page colour the transparent surface sits on.
	BackgroundColor = hexRGBA(backgroundHex)
)

func hexRGBA(hex string) color.RGBA {
	return toRGBA(gamut.Hex(hex))
}

func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
