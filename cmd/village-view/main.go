package main

import (
	"fmt"
	"log"
	"os"
	"sort"

	"village-view/internal/app"
	"village-view/internal/core"
	_ "village-view/internal/sources/demo"
	_ "village-view/internal/sources/replay"

	"github.com/urfave/cli/v2"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("village-view: ")

	a := &cli.App{
		Name:     "village-view",
		Usage:    "draw villager snapshots on a tile grid",
		Commands: commands(),
	}

	if err := a.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:   "run",
			Usage:  "open the window and render snapshots from a source",
			Action: commandRun,
			Flags:  app.Flags(),
		},
		{
			Name:      "render",
			Usage:     "render one snapshot to a PNG file",
			ArgsUsage: "[snapshot.json | -]",
			Action:    commandRender,
			Flags: []cli.Flag{
				&cli.PathFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "path of the PNG to write",
					Value:   "snapshot.png",
				},
				&cli.BoolFlag{
					Name:  "transparent",
					Usage: "keep the canvas transparent instead of flattening onto the page background",
				},
			},
		},
		{
			Name:   "sources",
			Usage:  "list the available state sources",
			Action: commandSources,
		},
	}
}

func commandSources(ctx *cli.Context) error {
	names := make([]string, 0, len(core.Sources()))
	for name := range core.Sources() {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintln(ctx.App.Writer, name)
	}
	return nil
}
