package gen

import (
	"fmt"
	"strconv"

	"terra-gen/internal/erosion"
	"terra-gen/internal/settle"
	"terra-gen/internal/terrain"
)

// Config controls a full map generation run: noise seeding, scheduled
// erosion, classification and settlement placement.
type Config struct {
	Width         int
	Height        int
	MetersPerTile float64
	Seed          int64

	Noise   terrain.FieldParams
	Erosion erosion.Params
	Settle  settle.Params

	// ProgressEvery is the batch cadence at which drivers report progress;
	// 0 disables reporting.
	ProgressEvery int
}

// DefaultConfig returns the canonical generation parameters.
func DefaultConfig() Config {
	return Config{
		Width:         256,
		Height:        256,
		MetersPerTile: 2,
		Seed:          1337,
		Noise:         terrain.DefaultFieldParams(),
		Erosion:       erosion.DefaultParams(),
		Settle:        settle.DefaultParams(),
		ProgressEvery: 20,
	}
}

// ArchipelagoConfig biases the noise toward broken coastlines: higher base
// frequency, stronger warping, a shorter erosion pass.
func ArchipelagoConfig() Config {
	c := DefaultConfig()
	c.Noise.Frequency = 0.02
	c.Noise.Octaves = 4
	c.Noise.WarpStrength = 30
	c.Erosion.Iterations = 40000
	return c
}

// HighlandsConfig biases toward large rocky massifs with deep carving:
// lower frequency, more octaves, a longer erosion pass.
func HighlandsConfig() Config {
	c := DefaultConfig()
	c.Noise.Frequency = 0.007
	c.Noise.Octaves = 6
	c.Noise.WarpStrength = 10
	c.Erosion.Iterations = 100000
	c.Erosion.ErosionSpeed = 0.4
	return c
}

// Validate rejects malformed configuration before any state is touched.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("gen: map dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.MetersPerTile <= 0 {
		return fmt.Errorf("gen: meters per tile must be positive, got %g", c.MetersPerTile)
	}
	if c.Noise.Octaves < 1 {
		return fmt.Errorf("gen: noise octaves must be at least 1, got %d", c.Noise.Octaves)
	}
	if c.Noise.Frequency <= 0 {
		return fmt.Errorf("gen: noise frequency must be positive, got %g", c.Noise.Frequency)
	}
	if c.ProgressEvery < 0 {
		return fmt.Errorf("gen: progress cadence must be non-negative, got %d", c.ProgressEvery)
	}
	if err := c.Erosion.Validate(); err != nil {
		return err
	}
	if err := c.Settle.Validate(); err != nil {
		return err
	}
	return nil
}

// FromMap populates the default config from flag-style key/value pairs.
func FromMap(cfg map[string]string) Config {
	return applyMap(DefaultConfig(), cfg)
}

func applyMap(c Config, cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["meters_per_tile"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.MetersPerTile = parsed
		}
	}
	if v, ok := cfg["frequency"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Noise.Frequency = parsed
		}
	}
	if v, ok := cfg["octaves"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Noise.Octaves = parsed
		}
	}
	if v, ok := cfg["warp_strength"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Noise.WarpStrength = parsed
		}
	}
	if v, ok := cfg["iterations"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Erosion.Iterations = parsed
		}
	}
	if v, ok := cfg["max_lifetime"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Erosion.MaxLifetime = parsed
		}
	}
	if v, ok := cfg["inertia"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Erosion.Inertia = parsed
		}
	}
	if v, ok := cfg["erosion_speed"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Erosion.ErosionSpeed = parsed
		}
	}
	if v, ok := cfg["deposition_speed"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Erosion.DepositionSpeed = parsed
		}
	}
	if v, ok := cfg["evaporation_speed"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed < 1 {
			c.Erosion.EvaporationSpeed = parsed
		}
	}
	if v, ok := cfg["batch"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Erosion.BatchSize = parsed
		}
	}
	if v, ok := cfg["families"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Settle.FamilyCount = parsed
		}
	}
	return c
}
