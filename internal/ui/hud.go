//go:build ebiten

package ui

import (
	"image/color"

	"village-view/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	stripHeight  = 18
	stripPadding = 6
)

// HUD renders a one-line status strip below the canvas.
type HUD struct {
	width  int
	title  string
	panel  *ebiten.Image
	fg, bg color.Color
}

// NewHUD constructs a strip of the given pixel width labelled with title.
func NewHUD(title string, width int) *HUD {
	if width <= 0 {
		return nil
	}
	return &HUD{
		width: width,
		title: title,
		panel: ebiten.NewImage(width, stripHeight),
		fg:    color.RGBA{R: 220, G: 220, B: 220, A: 255},
		bg:    color.RGBA{R: 16, G: 16, B: 20, A: 255},
	}
}

// Height returns the vertical space the strip takes, 0 when disabled.
func (h *HUD) Height() int {
	if h == nil {
		return 0
	}
	return stripHeight
}

// Draw paints the strip with its top edge at offsetY.
func (h *HUD) Draw(screen *ebiten.Image, offsetY int, stats render.FrameStats) {
	if h == nil {
		return
	}
	h.panel.Fill(h.bg)
	face := basicfont.Face7x13
	baseline := (stripHeight + face.Ascent - face.Descent) / 2
	text.Draw(h.panel, Status(h.title, stats), face, stripPadding, baseline, h.fg)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(offsetY))
	screen.DrawImage(h.panel, op)
}
