package erosion

import "fmt"

// Params holds the tunables of the droplet erosion model.
type Params struct {
	// Iterations is the total droplet count for a full run.
	Iterations int
	// MaxLifetime bounds the steps a single droplet may take.
	MaxLifetime int
	// Inertia in [0, 1] blends the previous direction against the gradient.
	Inertia float64

	SedimentCapacityFactor float64
	MinSedimentCapacity    float64
	ErosionSpeed           float64
	DepositionSpeed        float64
	EvaporationSpeed       float64
	Gravity                float64
	InitialSpeed           float64
	InitialWater           float64

	// BatchSize bounds the droplets simulated per scheduler advance.
	BatchSize int
}

// DefaultParams returns the canonical erosion parameter set.
func DefaultParams() Params {
	return Params{
		Iterations:             70000,
		MaxLifetime:            30,
		Inertia:                0.05,
		SedimentCapacityFactor: 4.0,
		MinSedimentCapacity:    0.01,
		ErosionSpeed:           0.3,
		DepositionSpeed:        0.3,
		EvaporationSpeed:       0.01,
		Gravity:                4.0,
		InitialSpeed:           1.0,
		InitialWater:           1.0,
		BatchSize:              600,
	}
}

// Validate rejects malformed parameters before a run mutates any state.
func (p Params) Validate() error {
	if p.Iterations < 0 {
		return fmt.Errorf("erosion: iterations must be non-negative, got %d", p.Iterations)
	}
	if p.MaxLifetime <= 0 {
		return fmt.Errorf("erosion: max lifetime must be positive, got %d", p.MaxLifetime)
	}
	if p.Inertia < 0 || p.Inertia > 1 {
		return fmt.Errorf("erosion: inertia must lie in [0, 1], got %g", p.Inertia)
	}
	if p.SedimentCapacityFactor < 0 {
		return fmt.Errorf("erosion: sediment capacity factor must be non-negative, got %g", p.SedimentCapacityFactor)
	}
	if p.MinSedimentCapacity < 0 {
		return fmt.Errorf("erosion: min sediment capacity must be non-negative, got %g", p.MinSedimentCapacity)
	}
	if p.ErosionSpeed < 0 || p.ErosionSpeed > 1 {
		return fmt.Errorf("erosion: erosion speed must lie in [0, 1], got %g", p.ErosionSpeed)
	}
	if p.DepositionSpeed < 0 || p.DepositionSpeed > 1 {
		return fmt.Errorf("erosion: deposition speed must lie in [0, 1], got %g", p.DepositionSpeed)
	}
	if p.EvaporationSpeed < 0 || p.EvaporationSpeed >= 1 {
		return fmt.Errorf("erosion: evaporation speed must lie in [0, 1), got %g", p.EvaporationSpeed)
	}
	if p.Gravity < 0 {
		return fmt.Errorf("erosion: gravity must be non-negative, got %g", p.Gravity)
	}
	if p.InitialWater <= 0 {
		return fmt.Errorf("erosion: initial water must be positive, got %g", p.InitialWater)
	}
	if p.InitialSpeed < 0 {
		return fmt.Errorf("erosion: initial speed must be non-negative, got %g", p.InitialSpeed)
	}
	if p.BatchSize <= 0 {
		return fmt.Errorf("erosion: batch size must be positive, got %d", p.BatchSize)
	}
	return nil
}
