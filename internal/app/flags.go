package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the application.
type Config struct {
	WorldW       int
	WorldH       int
	Cell         int
	TPS          int
	Seed         int64
	FastSubsteps int
	Scene        string
	HUDWidth     int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		WorldW:       640,
		WorldH:       480,
		Cell:         4,
		TPS:          60,
		Seed:         42,
		FastSubsteps: 5,
		Scene:        "empty",
		HUDWidth:     220,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.WorldW, "world-w", c.WorldW, "world width in pixels")
	fs.IntVar(&c.WorldH, "world-h", c.WorldH, "world height in pixels")
	fs.IntVar(&c.Cell, "cell", c.Cell, "pixels per simulation cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.FastSubsteps, "fast-substeps", c.FastSubsteps, "ticks per frame in fast mode")
	fs.StringVar(&c.Scene, "scene", c.Scene, "starting scene")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "parameter panel width in pixels (0 hides it)")
}

// SimOptions converts the flags into the key/value form sims parse.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"world_w":       strconv.Itoa(c.WorldW),
		"world_h":       strconv.Itoa(c.WorldH),
		"cell":          strconv.Itoa(c.Cell),
		"seed":          strconv.FormatInt(c.Seed, 10),
		"fast_substeps": strconv.Itoa(c.FastSubsteps),
	}
}
