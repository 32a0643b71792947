//go:build ebiten

package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"village-view/internal/app"
	"village-view/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/urfave/cli/v2"
)

func commandRun(ctx *cli.Context) error {
	cfg := app.NewConfig()
	if err := cfg.Apply(ctx); err != nil {
		return err
	}

	factory, ok := core.Sources()[cfg.Source]
	if !ok {
		return fmt.Errorf("unknown source %q", cfg.Source)
	}
	src := factory(cfg.SourceOptions)

	port := core.NewPort(cfg.Buffer)
	game, err := app.New(port, cfg)
	if err != nil {
		return err
	}

	runCtx, cancel := context.WithCancel(ctx.Context)
	defer cancel()
	go func() {
		if err := core.Pump(runCtx, src, port); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("source %s: %v", src.Name(), err)
		}
	}()

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(game.Layout(0, 0))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
