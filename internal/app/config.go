package app

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/urfave/cli/v2"
)

// Config holds the window and source options. The canvas geometry is fixed
// and deliberately absent here.
type Config struct {
	Title         string
	Scale         int
	TPS           int
	Source        string
	SourceOptions map[string]string
	Buffer        int
	StatusBar     bool
	ExitOnEnd     bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Title:         "village-view",
		Scale:         1,
		TPS:           60,
		Source:        "demo",
		SourceOptions: map[string]string{},
		Buffer:        16,
		StatusBar:     true,
	}
}

type fileConfig struct {
	Title         *string           `hcl:"title,optional"`
	Scale         *int              `hcl:"scale,optional"`
	TPS           *int              `hcl:"tps,optional"`
	Source        *string           `hcl:"source,optional"`
	SourceOptions map[string]string `hcl:"source_options,optional"`
	Buffer        *int              `hcl:"buffer,optional"`
	StatusBar     *bool             `hcl:"status_bar,optional"`
	ExitOnEnd     *bool             `hcl:"exit_on_end,optional"`
}

// LoadFile overlays the attributes set in an HCL file onto c.
func (c *Config) LoadFile(path string) error {
	var fc fileConfig
	if err := hclsimple.DecodeFile(path, nil, &fc); err != nil {
		return err
	}
	if fc.Title != nil {
		c.Title = *fc.Title
	}
	if fc.Scale != nil {
		c.Scale = *fc.Scale
	}
	if fc.TPS != nil {
		c.TPS = *fc.TPS
	}
	if fc.Source != nil {
		c.Source = *fc.Source
	}
	for k, v := range fc.SourceOptions {
		c.SourceOptions[k] = v
	}
	if fc.Buffer != nil {
		c.Buffer = *fc.Buffer
	}
	if fc.StatusBar != nil {
		c.StatusBar = *fc.StatusBar
	}
	if fc.ExitOnEnd != nil {
		c.ExitOnEnd = *fc.ExitOnEnd
	}
	return c.Validate()
}

// Validate rejects values the window cannot work with.
func (c *Config) Validate() error {
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.Source == "" {
		return fmt.Errorf("no source configured")
	}
	return nil
}

// Flags returns the command-line flags understood by Apply.
func Flags() []cli.Flag {
	def := NewConfig()
	return []cli.Flag{
		&cli.PathFlag{Name: "config", Usage: "path to an HCL configuration file"},
		&cli.StringFlag{Name: "title", Usage: "window title", Value: def.Title},
		&cli.IntFlag{Name: "scale", Usage: "pixel scale multiplier", Value: def.Scale},
		&cli.IntFlag{Name: "tps", Usage: "ticks per second", Value: def.TPS},
		&cli.StringFlag{Name: "source", Usage: "state source to attach", Value: def.Source},
		&cli.StringSliceFlag{Name: "opt", Usage: "source option as key=value (repeatable)"},
		&cli.IntFlag{Name: "buffer", Usage: "snapshots queued before the source blocks", Value: def.Buffer},
		&cli.BoolFlag{Name: "status-bar", Usage: "show the status strip below the canvas", Value: def.StatusBar},
		&cli.BoolFlag{Name: "exit-on-end", Usage: "close the window once the source is exhausted"},
	}
}

// Apply loads the optional config file and then overrides it with every
// flag that was set explicitly.
func (c *Config) Apply(ctx *cli.Context) error {
	if path := ctx.Path("config"); path != "" {
		if err := c.LoadFile(path); err != nil {
			return fmt.Errorf("config %s: %w", path, err)
		}
	}
	if ctx.IsSet("title") {
		c.Title = ctx.String("title")
	}
	if ctx.IsSet("scale") {
		c.Scale = ctx.Int("scale")
	}
	if ctx.IsSet("tps") {
		c.TPS = ctx.Int("tps")
	}
	if ctx.IsSet("source") {
		c.Source = ctx.String("source")
	}
	if ctx.IsSet("buffer") {
		c.Buffer = ctx.Int("buffer")
	}
	if ctx.IsSet("status-bar") {
		c.StatusBar = ctx.Bool("status-bar")
	}
	if ctx.IsSet("exit-on-end") {
		c.ExitOnEnd = ctx.Bool("exit-on-end")
	}
	opts, err := ParseOptions(ctx.StringSlice("opt"))
	if err != nil {
		return err
	}
	for k, v := range opts {
		c.SourceOptions[k] = v
	}
	return c.Validate()
}

// ParseOptions turns key=value pairs into a map.
func ParseOptions(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid source option %q, want key=value", p)
		}
		out[k] = strings.TrimSpace(v)
	}
	return out, nil
}
