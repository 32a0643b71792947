package app

import (
	"village-view/internal/core"
	"village-view/internal/render"
)

// View binds a renderer to the draw port. It holds everything the window
// needs except the GPU side, so it runs headless too.
type View struct {
	port     *core.Port
	renderer *render.Renderer
}

// NewView creates a renderer and subscribes it to port.
func NewView(port *core.Port) (*View, error) {
	r := render.NewRenderer()
	if err := port.Subscribe(r.OnSnapshot); err != nil {
		return nil, err
	}
	return &View{port: port, renderer: r}, nil
}

// Pump hands every queued snapshot to the renderer. It reports how many
// were drawn and whether the source has finished.
func (v *View) Pump() (int, bool) {
	n := v.port.Drain()
	return n, v.port.Finished()
}

// Renderer exposes the renderer owned by the view.
func (v *View) Renderer() *render.Renderer { return v.renderer }
