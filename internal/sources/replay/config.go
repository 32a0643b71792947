package replay

import (
	"strconv"
	"time"
)

// Config controls how a recording is played back.
type Config struct {
	Path     string
	Interval time.Duration
	Loop     bool
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Interval: 250 * time.Millisecond}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["path"]; ok {
		c.Path = v
	}
	if v, ok := cfg["interval"]; ok {
		if parsed, err := time.ParseDuration(v); err == nil && parsed >= 0 {
			c.Interval = parsed
		}
	}
	if v, ok := cfg["loop"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Loop = parsed
		}
	}
	return c
}
