package sand

import (
	"strconv"

	"mad-sand/internal/core"
)

const (
	// MinBrushRadius and MaxBrushRadius bound interactive brush resizing.
	MinBrushRadius = 1
	MaxBrushRadius = 50

	maxFastSubsteps = 64
)

// Config controls the world resolution and the tunable rates.
//
// The grid is WorldWidth/CellSize by WorldHeight/CellSize cells, so the
// world resolution stays independent of the simulation resolution.
type Config struct {
	WorldWidth  int
	WorldHeight int
	CellSize    int

	Seed int64

	FastSubsteps       int
	BrushRadius        int
	LiquidSpreadChance float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		WorldWidth:         640,
		WorldHeight:        480,
		CellSize:           4,
		Seed:               1337,
		FastSubsteps:       5,
		BrushRadius:        3,
		LiquidSpreadChance: 0.5,
	}
}

// GridSize returns the simulation grid dimensions.
func (c Config) GridSize() core.Size {
	cell := c.CellSize
	if cell <= 0 {
		cell = 1
	}
	w := c.WorldWidth / cell
	h := c.WorldHeight / cell
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return core.Size{W: w, H: h}
}

func (c Config) normalized() Config {
	if c.CellSize <= 0 {
		c.CellSize = 1
	}
	if c.FastSubsteps <= 0 {
		c.FastSubsteps = 1
	}
	if c.FastSubsteps > maxFastSubsteps {
		c.FastSubsteps = maxFastSubsteps
	}
	c.BrushRadius = clampRadius(c.BrushRadius)
	c.LiquidSpreadChance = clamp01(c.LiquidSpreadChance)
	return c
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["world_w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.WorldWidth = parsed
		}
	}
	if v, ok := cfg["world_h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.WorldHeight = parsed
		}
	}
	if v, ok := cfg["cell"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.CellSize = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["fast_substeps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.FastSubsteps = parsed
		}
	}
	if v, ok := cfg["brush_radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.BrushRadius = clampRadius(parsed)
		}
	}
	if v, ok := cfg["liquid_spread_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.LiquidSpreadChance = parsed
		}
	}
	return c
}

func clampRadius(r int) int {
	if r < MinBrushRadius {
		return MinBrushRadius
	}
	if r > MaxBrushRadius {
		return MaxBrushRadius
	}
	return r
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
