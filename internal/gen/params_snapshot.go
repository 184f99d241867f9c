package gen

import (
	"strconv"

	"terra-gen/internal/core"
)

// ParametersSnapshot exposes the active configuration as display groups for
// the tuner CLI and the overlay.
func (p *Pipeline) ParametersSnapshot() core.ParameterSnapshot {
	c := p.cfg
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "Map",
				Params: []core.Parameter{
					intParam("width", "Width", c.Width, "map width in tiles"),
					intParam("height", "Height", c.Height, "map height in tiles"),
					floatParam("meters_per_tile", "Meters per tile", c.MetersPerTile, "world scale of one tile"),
					intParam("seed", "Seed", int(c.Seed), "noise and erosion seed"),
				},
			},
			{
				Name: "Noise",
				Params: []core.Parameter{
					floatParam("frequency", "Frequency", c.Noise.Frequency, "base sampling frequency"),
					intParam("octaves", "Octaves", c.Noise.Octaves, "fractal octave count"),
					floatParam("lacunarity", "Lacunarity", c.Noise.Lacunarity, "per-octave frequency multiplier"),
					floatParam("gain", "Gain", c.Noise.Gain, "per-octave amplitude multiplier"),
					floatParam("warp_strength", "Warp strength", c.Noise.WarpStrength, "domain warp displacement"),
					floatParam("warp_frequency", "Warp frequency", c.Noise.WarpFrequency, "domain warp sampling frequency"),
				},
			},
			{
				Name: "Erosion",
				Params: []core.Parameter{
					intParam("iterations", "Iterations", c.Erosion.Iterations, "total droplet count"),
					intParam("max_lifetime", "Max lifetime", c.Erosion.MaxLifetime, "steps per droplet"),
					floatParam("inertia", "Inertia", c.Erosion.Inertia, "direction persistence"),
					floatParam("capacity_factor", "Capacity factor", c.Erosion.SedimentCapacityFactor, "sediment capacity scale"),
					floatParam("erosion_speed", "Erosion speed", c.Erosion.ErosionSpeed, "fraction of capacity eroded per step"),
					floatParam("deposition_speed", "Deposition speed", c.Erosion.DepositionSpeed, "fraction of surplus deposited per step"),
					floatParam("evaporation_speed", "Evaporation speed", c.Erosion.EvaporationSpeed, "water loss per step"),
					floatParam("gravity", "Gravity", c.Erosion.Gravity, "speed gain on descent"),
					intParam("batch", "Batch size", c.Erosion.BatchSize, "droplets per advance call"),
				},
			},
			{
				Name: "Settlement",
				Params: []core.Parameter{
					intParam("families", "Families", c.Settle.FamilyCount, "family clusters to place"),
					intParam("members_min", "Members min", c.Settle.MembersMin, "smallest family size"),
					intParam("members_max", "Members max", c.Settle.MembersMax, "largest family size"),
					floatParam("anchor_radius", "Anchor radius", c.Settle.AnchorRadius, "cluster spread around first anchor"),
					floatParam("member_radius", "Member radius", c.Settle.MemberRadius, "member spread around anchor"),
				},
			},
		},
	}
}

func intParam(key, label string, v int, desc string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v), Description: desc}
}

func floatParam(key, label string, v float64, desc string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(v, 'g', -1, 64), Description: desc}
}
