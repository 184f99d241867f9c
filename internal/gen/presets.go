package gen

import "terra-gen/internal/core"

// The registered presets consolidate the historically tuned generator
// variants into named parameter sets; "default" is the canonical one.
func init() {
	core.Register("default", preset("default", DefaultConfig))
	core.Register("archipelago", preset("archipelago", ArchipelagoConfig))
	core.Register("highlands", preset("highlands", HighlandsConfig))
}

func preset(name string, base func() Config) core.Preset {
	return func(cfg map[string]string) core.Generator {
		p, err := NewPipeline(applyMap(base(), cfg))
		if err != nil {
			// applyMap only accepts values that pass validation, so this
			// is a programming error in the preset itself.
			panic(err)
		}
		p.name = name
		return p
	}
}
