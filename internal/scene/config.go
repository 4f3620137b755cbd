package scene

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Params holds the live-tunable shader inputs.
type Params struct {
	GridSize   int     `yaml:"grid_size"`
	LineWidth  float64 `yaml:"line_width"`
	EdgeFade   float64 `yaml:"edge_fade"`
	TopFade    float64 `yaml:"top_fade"`
	Strength   float64 `yaml:"strength"`
	Speed      float64 `yaml:"speed"`
	NoiseScale float64 `yaml:"noise_scale"`
	Rotation   float64 `yaml:"rotation"`
}

// Config controls the scene geometry, window and initial parameters.
type Config struct {
	Preset string `yaml:"preset"`

	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	SegmentsX int `yaml:"segments_x"`
	SegmentsY int `yaml:"segments_y"`

	Params Params `yaml:"params"`
}

// DefaultParams returns the parameters the scene starts with.
func DefaultParams() Params {
	return Params{
		GridSize:   50,
		LineWidth:  0.015,
		EdgeFade:   0.2,
		TopFade:    0.9,
		Strength:   0.6,
		Speed:      0.5,
		NoiseScale: 1,
		Rotation:   -1.1,
	}
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Preset:    "default",
		Width:     1280,
		Height:    720,
		SegmentsX: 100,
		SegmentsY: 50,
		Params:    DefaultParams(),
	}
}

// Set updates the parameter named key, clamped to its control range. It
// reports false for unknown keys and non-finite values.
func (p *Params) Set(key string, value float64) bool {
	ctrl, ok := controlByKey(key)
	if !ok || math.IsNaN(value) || math.IsInf(value, 0) {
		return false
	}
	value = ctrl.Clamp(value)
	switch key {
	case keyGridSize:
		p.GridSize = int(math.Round(value))
	case keyLineWidth:
		p.LineWidth = value
	case keyEdgeFade:
		p.EdgeFade = value
	case keyTopFade:
		p.TopFade = value
	case keyStrength:
		p.Strength = value
	case keySpeed:
		p.Speed = value
	case keyNoiseScale:
		p.NoiseScale = value
	case keyRotation:
		p.Rotation = value
	default:
		return false
	}
	return true
}

// Clamped returns a copy with every field limited to its control range.
func (p Params) Clamped() Params {
	out := p
	for _, ctrl := range controls {
		out.Set(ctrl.Key, p.value(ctrl.Key))
	}
	return out
}

func (p Params) value(key string) float64 {
	switch key {
	case keyGridSize:
		return float64(p.GridSize)
	case keyLineWidth:
		return p.LineWidth
	case keyEdgeFade:
		return p.EdgeFade
	case keyTopFade:
		return p.TopFade
	case keyStrength:
		return p.Strength
	case keySpeed:
		return p.Speed
	case keyNoiseScale:
		return p.NoiseScale
	case keyRotation:
		return p.Rotation
	}
	return math.NaN()
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable values are ignored; parameters are clamped.
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().Apply(cfg)
}

// Apply returns a copy of c with the string-map overrides applied on top. A
// "preset" key replaces all parameters before individual keys are applied.
func (c Config) Apply(cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["preset"]; ok {
		if params, found := Preset(v); found {
			c.Preset = v
			c.Params = params
		}
	}
	if v, ok := cfg["width"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["height"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["segments_x"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.SegmentsX = parsed
		}
	}
	if v, ok := cfg["segments_y"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.SegmentsY = parsed
		}
	}
	for _, ctrl := range controls {
		v, ok := cfg[ctrl.Key]
		if !ok {
			continue
		}
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.Set(ctrl.Key, parsed)
		}
	}
	return c
}

// Load reads a YAML config file. A preset named in the file seeds the
// parameters; explicit params in the file override it.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML config document.
func Parse(data []byte) (Config, error) {
	var head struct {
		Preset string `yaml:"preset"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := DefaultConfig()
	if head.Preset != "" {
		params, ok := Preset(head.Preset)
		if !ok {
			return Config{}, fmt.Errorf("parse config: unknown preset %q", head.Preset)
		}
		cfg.Params = params
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Config{}, fmt.Errorf("parse config: window size %dx%d must be positive", cfg.Width, cfg.Height)
	}
	if cfg.SegmentsX <= 0 || cfg.SegmentsY <= 0 {
		return Config{}, fmt.Errorf("parse config: segments %dx%d must be positive", cfg.SegmentsX, cfg.SegmentsY)
	}
	cfg.Params = cfg.Params.Clamped()
	return cfg, nil
}
