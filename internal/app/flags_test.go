package app

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"wavegrid/internal/scene"
)

func TestBindAndResolve(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("wavegrid", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-preset", "storm", "-set", "grid_size=20", "-set", "width=900", "-cpu"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !cfg.CPU {
		t.Fatal("expected -cpu to be set")
	}
	sc, err := cfg.SceneConfig()
	if err != nil {
		t.Fatalf("scene config: %v", err)
	}
	storm, _ := scene.Preset("storm")
	if sc.Params.Speed != storm.Speed {
		t.Fatalf("expected storm speed %f, got %f", storm.Speed, sc.Params.Speed)
	}
	if sc.Params.GridSize != 20 || sc.Width != 900 {
		t.Fatalf("expected overrides applied, got grid %d width %d", sc.Params.GridSize, sc.Width)
	}
}

func TestBindSceneOmitsWindowFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("gridsnap", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.BindScene(fs)
	for _, name := range []string{"config", "preset", "set", "workers"} {
		if fs.Lookup(name) == nil {
			t.Fatalf("expected -%s to be registered", name)
		}
	}
	for _, name := range []string{"tps", "panel", "cpu"} {
		if fs.Lookup(name) != nil {
			t.Fatalf("-%s should not be registered for headless use", name)
		}
	}
	if err := fs.Parse([]string{"-cpu"}); err == nil {
		t.Fatal("expected -cpu to be rejected")
	}
	if err := fs.Parse([]string{"-workers", "3", "-set", "speed=2"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Workers != 3 || cfg.Overrides["speed"] != "2" {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestSceneConfigFileThenOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wave.yaml")
	if err := os.WriteFile(path, []byte("height: 500\nparams:\n  strength: 0.2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg := NewConfig()
	cfg.ConfigPath = path
	cfg.Overrides["speed"] = "1.5"
	sc, err := cfg.SceneConfig()
	if err != nil {
		t.Fatalf("scene config: %v", err)
	}
	if sc.Height != 500 || sc.Params.Strength != 0.2 || sc.Params.Speed != 1.5 {
		t.Fatalf("unexpected config %+v", sc)
	}
}

func TestSceneConfigUnknownPreset(t *testing.T) {
	cfg := NewConfig()
	cfg.Preset = "hurricane"
	if _, err := cfg.SceneConfig(); err == nil {
		t.Fatal("expected error for unknown preset")
	}
}

func TestOverridesSet(t *testing.T) {
	o := Overrides{}
	if err := o.Set("speed = 2"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if o["speed"] != "2" {
		t.Fatalf("expected trimmed value, got %q", o["speed"])
	}
	if err := o.Set("novalue"); err == nil {
		t.Fatal("expected error without '='")
	}
	if err := o.Set("=3"); err == nil {
		t.Fatal("expected error for empty key")
	}
	if got := o.String(); got != "speed=2" {
		t.Fatalf("unexpected String(): %q", got)
	}
}
