package app

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"wavegrid/internal/scene"
)

// Config represents the command-line parameters for the application.
type Config struct {
	ConfigPath string
	Preset     string
	Overrides  Overrides
	TPS        int
	PanelWidth int
	CPU        bool
	Workers    int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{TPS: 60, PanelWidth: 240, Overrides: Overrides{}}
}

// Bind attaches the full window configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	c.BindScene(fs)
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.PanelWidth, "panel", c.PanelWidth, "HUD panel width in pixels (0 hides it)")
	fs.BoolVar(&c.CPU, "cpu", c.CPU, "render the grid texture on the CPU instead of the shader")
}

// BindScene attaches only the scene and rasterizer flags, for headless tools.
func (c *Config) BindScene(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML config file")
	fs.StringVar(&c.Preset, "preset", c.Preset, "parameter preset ("+strings.Join(scene.PresetNames(), ", ")+")")
	fs.Var(c.Overrides, "set", "override a setting as key=value (repeatable)")
	fs.IntVar(&c.Workers, "workers", c.Workers, "CPU rasterizer goroutines (0 = GOMAXPROCS)")
}

// SceneConfig resolves the scene configuration: the config file (or
// defaults), then the preset, then -set overrides.
func (c *Config) SceneConfig() (scene.Config, error) {
	cfg := scene.DefaultConfig()
	if c.ConfigPath != "" {
		loaded, err := scene.Load(c.ConfigPath)
		if err != nil {
			return scene.Config{}, err
		}
		cfg = loaded
	}
	overrides := map[string]string{}
	if c.Preset != "" {
		if _, ok := scene.Preset(c.Preset); !ok {
			return scene.Config{}, fmt.Errorf("unknown preset %q (have %s)", c.Preset, strings.Join(scene.PresetNames(), ", "))
		}
		overrides["preset"] = c.Preset
	}
	cfg = cfg.Apply(overrides)
	return cfg.Apply(c.Overrides), nil
}

// Overrides collects repeated key=value flags.
type Overrides map[string]string

func (o Overrides) String() string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+o[k])
	}
	return strings.Join(parts, ",")
}

// Set parses a single key=value pair.
func (o Overrides) Set(s string) error {
	key, value, ok := strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", s)
	}
	o[key] = strings.TrimSpace(value)
	return nil
}
