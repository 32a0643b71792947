package render

import (
	"image"
	"image/color"
	"image/draw"
)

// Surface is a fixed-size RGBA raster. All writes are clipped to its bounds.
type Surface struct {
	img *image.RGBA
}

// NewSurface allocates a transparent surface of w*h pixels.
func NewSurface(w, h int) *Surface {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Surface{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Size returns the dimensions of the surface.
func (s *Surface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear erases every pixel to transparent black.
func (s *Surface) Clear() {
	clear(s.img.Pix)
}

// FillRect paints a w*h rectangle with its top-left corner at (x, y),
// replacing whatever was there.
func (s *Surface) FillRect(x, y, w, h int, c color.RGBA) {
	b := s.img.Bounds()
	if w <= 0 || h <= 0 || x >= b.Max.X || y >= b.Max.Y || x <= b.Min.X-w || y <= b.Min.Y-h {
		return
	}
	r := image.Rect(x, y, x+w, y+h).Intersect(b)
	if r.Empty() {
		return
	}
	draw.Draw(s.img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// VLine paints a one pixel wide column at x over the full height.
func (s *Surface) VLine(x int, c color.RGBA) {
	_, h := s.Size()
	s.FillRect(x, 0, 1, h, c)
}

// HLine paints a one pixel high row at y over the full width.
func (s *Surface) HLine(y int, c color.RGBA) {
	w, _ := s.Size()
	s.FillRect(0, y, w, 1, c)
}

// At returns the pixel at (x, y), or transparent black outside the surface.
func (s *Surface) At(x, y int) color.RGBA {
	return s.img.RGBAAt(x, y)
}

// Pix exposes the backing buffer in row-major RGBA order.
func (s *Surface) Pix() []byte { return s.img.Pix }

// Image exposes the surface as an image without copying.
func (s *Surface) Image() *image.RGBA { return s.img }

// Flatten composites the surface over an opaque background into a new image.
func (s *Surface) Flatten(bg color.Color) *image.RGBA {
	out := image.NewRGBA(s.img.Bounds())
	draw.Draw(out, out.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), s.img, image.Point{}, draw.Over)
	return out
}
