package scene

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"wavegrid/internal/core"
)

func TestNewPlaneLayout(t *testing.T) {
	m := NewPlane(2, 1, 100, 50)
	if got, want := len(m.Vertices), 101*51; got != want {
		t.Fatalf("expected %d vertices, got %d", want, got)
	}
	if got, want := len(m.Indices), 100*50*6; got != want {
		t.Fatalf("expected %d indices, got %d", want, got)
	}
	first := m.Vertices[0]
	if first.X != -1 || first.Y != 0.5 || first.U != 0 || first.V != 1 {
		t.Fatalf("unexpected top-left vertex %+v", first)
	}
	last := m.Vertices[len(m.Vertices)-1]
	if math.Abs(last.X-1) > 1e-12 || math.Abs(last.Y+0.5) > 1e-12 || last.U != 1 || last.V != 0 {
		t.Fatalf("unexpected bottom-right vertex %+v", last)
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			t.Fatalf("index %d out of range: %d", i, idx)
		}
	}
}

func TestNewPlaneClampsSegments(t *testing.T) {
	m := NewPlane(2, 1, 0, 10000)
	if m.SegX != 1 || m.SegY != maxSegments {
		t.Fatalf("expected segments clamped to 1x%d, got %dx%d", maxSegments, m.SegX, m.SegY)
	}
	if len(m.Vertices) > math.MaxUint16+1 {
		t.Fatalf("vertex count %d exceeds uint16 index range", len(m.Vertices))
	}
}

func TestSetParametersClamp(t *testing.T) {
	s := New(DefaultConfig())

	if !s.SetFloatParameter("strength", 5) {
		t.Fatal("expected strength to be adjustable")
	}
	if got := s.Params().Strength; got != 1 {
		t.Fatalf("expected strength clamped to 1, got %f", got)
	}
	if !s.SetFloatParameter("line_width", 0) {
		t.Fatal("expected line width to be adjustable")
	}
	if got := s.Params().LineWidth; got != 0.001 {
		t.Fatalf("expected line width clamped to 0.001, got %f", got)
	}
	if !s.SetIntParameter("grid_size", 1000) {
		t.Fatal("expected grid size to be adjustable")
	}
	if got := s.Params().GridSize; got != 100 {
		t.Fatalf("expected grid size clamped to 100, got %d", got)
	}

	if s.SetFloatParameter("grid_size", 10) {
		t.Fatal("grid size is an int control and must reject float updates")
	}
	if s.SetIntParameter("speed", 2) {
		t.Fatal("speed is a float control and must reject int updates")
	}
	if s.SetFloatParameter("bogus", 1) {
		t.Fatal("unknown keys must be rejected")
	}
	if s.SetFloatParameter("speed", math.NaN()) {
		t.Fatal("NaN must be rejected")
	}

	s.Reset()
	if got := s.Params(); got != DefaultParams() {
		t.Fatalf("expected reset to defaults, got %+v", got)
	}
}

func TestParametersSnapshotMatchesControls(t *testing.T) {
	s := New(DefaultConfig())
	snap := s.Parameters()
	for _, ctrl := range s.ParameterControls() {
		param, ok := snap.Lookup(ctrl.Key)
		if !ok {
			t.Fatalf("control %q missing from snapshot", ctrl.Key)
		}
		if param.Type != ctrl.Type {
			t.Fatalf("control %q type %s, snapshot type %s", ctrl.Key, ctrl.Type, param.Type)
		}
	}
	param, _ := snap.Lookup("grid_size")
	if param.Value != "50" {
		t.Fatalf("expected grid size 50, got %q", param.Value)
	}
}

func TestAdvanceMonotonicAndScrollEases(t *testing.T) {
	s := New(DefaultConfig())
	s.Advance(2)
	s.Advance(1)
	if got := s.Time(); got != 2 {
		t.Fatalf("time must not go backwards, got %f", got)
	}

	s.Scroll(1000)
	s.Advance(2.1)
	if got := s.NoiseOffset(); math.Abs(got-0.1) > 1e-12 {
		t.Fatalf("expected first eased step 0.1, got %f", got)
	}
	for i := 0; i < 200; i++ {
		s.Advance(3)
	}
	if got := s.NoiseOffset(); math.Abs(got-1) > 1e-6 {
		t.Fatalf("expected noise offset to converge on 1, got %f", got)
	}
	if got := s.Displacement().NoiseOffset; got != s.NoiseOffset() {
		t.Fatalf("displacement params out of sync with noise offset: %f", got)
	}
}

func TestResizeUpdatesAspect(t *testing.T) {
	s := New(DefaultConfig())
	s.Resize(800, 400)
	if got := s.Viewport(); got != (core.Size{W: 800, H: 400}) {
		t.Fatalf("unexpected viewport %+v", got)
	}
	if got := s.Camera().Aspect; got != 2 {
		t.Fatalf("expected aspect 2, got %f", got)
	}
	s.Resize(0, 100)
	if got := s.Viewport(); got.W != 800 {
		t.Fatalf("zero-sized resize must be ignored, got %+v", got)
	}
}

func TestProjectCentreVertex(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.Strength = 0
	s := New(cfg)
	s.Resize(640, 480)

	verts := s.Project()
	if len(verts) != len(s.Mesh().Vertices) {
		t.Fatalf("expected %d projected vertices, got %d", len(s.Mesh().Vertices), len(verts))
	}
	centre := 25*101 + 50
	v := verts[centre]
	if !v.Visible {
		t.Fatal("centre vertex should be in front of the camera")
	}
	if math.Abs(float64(v.X)-320) > 1 {
		t.Fatalf("centre vertex should project to the horizontal middle, got x=%f", v.X)
	}
	if v.Y < 0 || v.Y > 480 {
		t.Fatalf("centre vertex should be on screen, got y=%f", v.Y)
	}
	if v.U != 0.5 || v.V != 0.5 {
		t.Fatalf("centre vertex uv should be (0.5, 0.5), got (%f, %f)", v.U, v.V)
	}
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"preset":    "calm",
		"width":     "640",
		"height":    "nope",
		"top_fade":  "0.5",
		"grid_size": "3",
		"speed":     "abc",
	})
	calm, _ := Preset("calm")
	if cfg.Width != 640 || cfg.Height != DefaultConfig().Height {
		t.Fatalf("unexpected size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Params.TopFade != 0.5 {
		t.Fatalf("expected top fade override 0.5, got %f", cfg.Params.TopFade)
	}
	if cfg.Params.GridSize != 5 {
		t.Fatalf("expected grid size clamped to 5, got %d", cfg.Params.GridSize)
	}
	if cfg.Params.Speed != calm.Speed {
		t.Fatalf("expected preset speed %f, got %f", calm.Speed, cfg.Params.Speed)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.yaml")
	doc := []byte("preset: storm\nwidth: 800\nparams:\n  grid_size: 64\n  edge_fade: 0.9\n")
	if err := os.WriteFile(path, doc, 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	storm, _ := Preset("storm")
	if cfg.Width != 800 || cfg.Height != 720 {
		t.Fatalf("unexpected size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Params.GridSize != 64 {
		t.Fatalf("expected explicit grid size 64, got %d", cfg.Params.GridSize)
	}
	if cfg.Params.EdgeFade != 0.5 {
		t.Fatalf("expected edge fade clamped to 0.5, got %f", cfg.Params.EdgeFade)
	}
	if cfg.Params.Strength != storm.Strength {
		t.Fatalf("expected preset strength %f, got %f", storm.Strength, cfg.Params.Strength)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
	if _, err := Parse([]byte("preset: nowhere\n")); err == nil {
		t.Fatal("expected error for unknown preset")
	}
	if _, err := Parse([]byte("width: -3\n")); err == nil {
		t.Fatal("expected error for negative width")
	}
	if _, err := Parse([]byte("params: [1, 2\n")); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

func TestPresetNamesSorted(t *testing.T) {
	names := PresetNames()
	want := []string{"calm", "default", "dense", "storm"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}
	for _, name := range names {
		p, _ := Preset(name)
		if p != p.Clamped() {
			t.Fatalf("preset %q has out-of-range values: %+v", name, p)
		}
	}
}
