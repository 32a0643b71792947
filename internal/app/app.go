//go:build ebiten

package app

import (
	"village-view/internal/core"
	"village-view/internal/render"
	"village-view/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game adapts a View to the ebiten.Game interface.
type Game struct {
	view    *View
	painter *render.SurfacePainter
	hud     *ui.HUD

	scale     int
	exitOnEnd bool
}

// New constructs a Game that renders whatever is published on port.
func New(port *core.Port, cfg *Config) (*Game, error) {
	view, err := NewView(port)
	if err != nil {
		return nil, err
	}
	g := &Game{
		view:      view,
		painter:   render.NewSurfacePainter(view.Renderer().Surface()),
		scale:     cfg.Scale,
		exitOnEnd: cfg.ExitOnEnd,
	}
	if cfg.StatusBar {
		g.hud = ui.NewHUD(cfg.Source, core.CanvasWidth*cfg.Scale)
	}
	return g, nil
}

// Update drains the port so each snapshot is drawn in arrival order.
func (g *Game) Update() error {
	_, finished := g.view.Pump()
	if finished && g.exitOnEnd {
		return ebiten.Termination
	}
	return nil
}

// Draw paints the page background, the canvas and the status strip.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.BackgroundColor)
	g.painter.Blit(screen, g.scale)
	g.hud.Draw(screen, core.CanvasHeight*g.scale, g.view.Renderer().Stats())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return core.CanvasWidth * g.scale, core.CanvasHeight*g.scale + g.hud.Height()
}
