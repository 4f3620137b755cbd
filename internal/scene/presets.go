package scene

import "sort"

var presets = map[string]Params{
	"default": DefaultParams(),
	"calm": {
		GridSize:   30,
		LineWidth:  0.02,
		EdgeFade:   0.25,
		TopFade:    0.9,
		Strength:   0.15,
		Speed:      0.25,
		NoiseScale: 0.6,
		Rotation:   -1.1,
	},
	"storm": {
		GridSize:   40,
		LineWidth:  0.012,
		EdgeFade:   0.15,
		TopFade:    0.8,
		Strength:   1,
		Speed:      2.5,
		NoiseScale: 1.6,
		Rotation:   -1.2,
	},
	"dense": {
		GridSize:   100,
		LineWidth:  0.008,
		EdgeFade:   0.2,
		TopFade:    0.9,
		Strength:   0.4,
		Speed:      0.5,
		NoiseScale: 1,
		Rotation:   -1.35,
	},
}

// Preset returns the named parameter set.
func Preset(name string) (Params, bool) {
	p, ok := presets[name]
	return p, ok
}

// PresetNames lists the available presets in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
