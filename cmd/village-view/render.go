package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"village-view/internal/core"
	"village-view/internal/render"

	"github.com/urfave/cli/v2"
)

func commandRender(ctx *cli.Context) error {
	data, err := readInput(ctx.Args().First(), ctx.App.Reader)
	if err != nil {
		return err
	}
	snap, err := core.DecodeSnapshot(data)
	if err != nil {
		return err
	}

	r := render.NewRenderer()
	r.OnSnapshot(snap)

	var img image.Image = r.Surface().Image()
	if !ctx.Bool("transparent") {
		img = r.Surface().Flatten(render.BackgroundColor)
	}
	if err := writePNG(ctx.Path("output"), img); err != nil {
		return err
	}
	stats := r.Stats()
	fmt.Fprintf(ctx.App.Writer, "wrote %s: %d villagers, %d moving\n", ctx.Path("output"), stats.Villagers, stats.Moving)
	return nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
