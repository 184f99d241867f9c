package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the viewer application.
type Config struct {
	Preset string
	Width  int
	Height int
	Scale  int
	TPS    int
	Seed   int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Preset: "default", Width: 256, Height: 256, Scale: 3, TPS: 60, Seed: 1337}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Preset, "preset", c.Preset, "generator preset to run")
	fs.IntVar(&c.Width, "w", c.Width, "map width in tiles")
	fs.IntVar(&c.Height, "h", c.Height, "map height in tiles")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for generation")
}

// Overrides expresses the CLI values as a preset configuration map.
func (c *Config) Overrides() map[string]string {
	return map[string]string{
		"w":    strconv.Itoa(c.Width),
		"h":    strconv.Itoa(c.Height),
		"seed": strconv.FormatInt(c.Seed, 10),
	}
}
