package scene

import (
	"strconv"

	"wavegrid/internal/core"
)

const (
	keyGridSize   = "grid_size"
	keyLineWidth  = "line_width"
	keyEdgeFade   = "edge_fade"
	keyTopFade    = "top_fade"
	keyStrength   = "strength"
	keySpeed      = "speed"
	keyNoiseScale = "noise_scale"
	keyRotation   = "rotation"
)

var controls = []core.ParameterControl{
	{Key: keyGridSize, Label: "Grid Size", Type: core.ParamTypeInt, Step: 1, Min: 5, Max: 100},
	{Key: keyStrength, Label: "Strength", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1},
	{Key: keySpeed, Label: "Speed", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 4},
	{Key: keyNoiseScale, Label: "Noise Scale", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 2},
	{Key: keyLineWidth, Label: "Line Width", Type: core.ParamTypeFloat, Step: 0.001, Min: 0.001, Max: 0.1},
	{Key: keyEdgeFade, Label: "Edge Fade", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 0.5},
	{Key: keyTopFade, Label: "Top Fade", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1},
	{Key: keyRotation, Label: "Rotation", Type: core.ParamTypeFloat, Step: 0.01, Min: -1.5, Max: 0},
}

func controlByKey(key string) (core.ParameterControl, bool) {
	for _, ctrl := range controls {
		if ctrl.Key == key {
			return ctrl, true
		}
	}
	return core.ParameterControl{}, false
}

// ParameterControls lists the HUD-adjustable parameters.
func (s *Scene) ParameterControls() []core.ParameterControl {
	out := make([]core.ParameterControl, len(controls))
	copy(out, controls)
	return out
}

// Parameters reports the current parameter values and clock state.
func (s *Scene) Parameters() core.ParameterSnapshot {
	p := s.params
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam(keyGridSize, "Grid Size", p.GridSize),
				floatParam(keyLineWidth, "Line Width", p.LineWidth),
				floatParam(keyEdgeFade, "Edge Fade", p.EdgeFade),
				floatParam(keyTopFade, "Top Fade", p.TopFade),
			},
		},
		{
			Name: "Wave",
			Params: []core.Parameter{
				floatParam(keyStrength, "Strength", p.Strength),
				floatParam(keySpeed, "Speed", p.Speed),
				floatParam(keyNoiseScale, "Noise Scale", p.NoiseScale),
			},
		},
		{
			Name: "View",
			Params: []core.Parameter{
				floatParam(keyRotation, "Rotation", p.Rotation),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				floatParam("time", "Time", s.time),
				floatParam("noise_offset", "Noise offset", s.noiseOffset),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// SetIntParameter updates an integer parameter, clamping to its range.
func (s *Scene) SetIntParameter(key string, value int) bool {
	ctrl, ok := controlByKey(key)
	if !ok || ctrl.Type != core.ParamTypeInt {
		return false
	}
	return s.params.Set(key, float64(value))
}

// SetFloatParameter updates a float parameter, clamping to its range.
func (s *Scene) SetFloatParameter(key string, value float64) bool {
	ctrl, ok := controlByKey(key)
	if !ok || ctrl.Type != core.ParamTypeFloat {
		return false
	}
	return s.params.Set(key, value)
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
