package core

// Size describes the dimensions of a generated map grid.
type Size struct {
	W int
	H int
}

// Generator is the minimal contract a map generation pipeline implements so
// an external tick loop can drive it one bounded work slice at a time.
type Generator interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Done() bool
	Cells() []uint8
}

// Preset constructs a Generator using an optional configuration map.
type Preset func(cfg map[string]string) Generator

var presets = map[string]Preset{}

// Register adds a generator preset under the provided name.
func Register(name string, p Preset) {
	if name == "" || p == nil {
		return
	}
	presets[name] = p
}

// Presets exposes the registry of available generator presets.
func Presets() map[string]Preset {
	return presets
}
