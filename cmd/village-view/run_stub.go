//go:build !ebiten

package main

import "github.com/urfave/cli/v2"

func commandRun(*cli.Context) error {
	return cli.Exit("The GUI build of village-view requires the ebiten build tag.\n"+
		"Re-run with `go run -tags ebiten ./cmd/village-view run` or build with `-tags ebiten`.", 2)
}
