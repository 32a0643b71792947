//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// SurfacePainter uploads a Surface into a GPU image and draws it scaled.
type SurfacePainter struct {
	surface *Surface
	img     *ebiten.Image
}

// NewSurfacePainter allocates a painter for s.
func NewSurfacePainter(s *Surface) *SurfacePainter {
	w, h := s.Size()
	return &SurfacePainter{surface: s, img: ebiten.NewImage(w, h)}
}

// Blit uploads the current surface pixels and draws them onto dst.
func (p *SurfacePainter) Blit(dst *ebiten.Image, scale int) {
	if scale <= 0 {
		scale = 1
	}
	p.img.WritePixels(p.surface.Pix())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(p.img, op)
}

// Size returns the dimensions of the underlying image.
func (p *SurfacePainter) Size() (int, int) { return p.surface.Size() }
