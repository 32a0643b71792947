package render

import (
	"image/color"

	"village-view/internal/core"
)

// FrameStats summarises the last snapshot that was drawn.
type FrameStats struct {
	Frame     int
	Villagers int
	Moving    int
	Skipped   int
}

// Renderer draws snapshots onto a surface it owns for its whole lifetime.
type Renderer struct {
	grid    core.Grid
	surface *Surface

	gridColor   color.RGBA
	markerColor color.RGBA

	stats FrameStats
}

// NewRenderer allocates a renderer for the process-wide canvas.
func NewRenderer() *Renderer {
	return NewRendererForGrid(core.DefaultGrid)
}

// NewRendererForGrid allocates a renderer for an arbitrary grid.
func NewRendererForGrid(g core.Grid) *Renderer {
	return &Renderer{
		grid:        g,
		surface:     NewSurface(g.W, g.H),
		gridColor:   GridColor,
		markerColor: MarkerColor,
	}
}

// OnSnapshot replaces the surface content with a drawing of s: clear, grid,
// then one square per moving villager in snapshot order.
func (r *Renderer) OnSnapshot(s core.Snapshot) {
	r.surface.Clear()
	r.drawGrid()

	stats := FrameStats{Frame: r.stats.Frame + 1, Villagers: len(s.Villagers)}
	for _, v := range s.Villagers {
		pos, ok := v.Action.Moving()
		if !ok {
			if v.Action.Kind == core.ActionUnknown {
				stats.Skipped++
			}
			continue
		}
		stats.Moving++
		r.drawMarker(pos)
	}
	r.stats = stats
}

func (r *Renderer) drawGrid() {
	for _, x := range r.grid.VerticalLines() {
		r.surface.VLine(x, r.gridColor)
	}
	for _, y := range r.grid.HorizontalLines() {
		r.surface.HLine(y, r.gridColor)
	}
}

func (r *Renderer) drawMarker(p core.Point) {
	if !r.grid.Contains(p) {
		return
	}
	x, y := p.X*r.grid.Tile, p.Y*r.grid.Tile
	r.surface.FillRect(x, y, r.grid.Tile, r.grid.Tile, r.markerColor)
}

// Surface exposes the drawing surface.
func (r *Renderer) Surface() *Surface { return r.surface }

// Stats returns counters for the most recent frame.
func (r *Renderer) Stats() FrameStats { return r.stats }
