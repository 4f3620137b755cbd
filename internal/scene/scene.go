package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"wavegrid/internal/core"
	"wavegrid/internal/wave"
)

const (
	planeWidth  = 2
	planeHeight = 1
	planeZ      = -3.5

	// noiseLerp is the per-frame fraction the noise offset moves toward the
	// wheel target.
	noiseLerp = 0.1
	// wheelGain converts wheel delta (in pixels) to noise offset.
	wheelGain = 0.001
)

// ScreenVertex is a projected mesh vertex in viewport pixels. Visible is false
// for vertices behind the camera.
type ScreenVertex struct {
	X, Y    float32
	U, V    float32
	Visible bool
}

// Scene owns the plane, camera and parameter state. It is driven by a single
// frame loop and is not safe for concurrent use.
type Scene struct {
	base   Params
	params Params

	mesh     *Mesh
	camera   Camera
	viewport core.Size

	time              float64
	noiseOffset       float64
	targetNoiseOffset float64

	projected []ScreenVertex
}

// New constructs a scene from the provided configuration.
func New(cfg Config) *Scene {
	params := cfg.Params.Clamped()
	s := &Scene{
		base:   params,
		params: params,
		mesh:   NewPlane(planeWidth, planeHeight, cfg.SegmentsX, cfg.SegmentsY),
		camera: DefaultCamera(),
	}
	s.Resize(cfg.Width, cfg.Height)
	return s
}

// Name identifies the scene on the HUD.
func (s *Scene) Name() string { return "wave grid" }

// Params returns the current parameters.
func (s *Scene) Params() Params { return s.params }

// Mesh returns the undisplaced plane.
func (s *Scene) Mesh() *Mesh { return s.mesh }

// Camera returns the current camera.
func (s *Scene) Camera() Camera { return s.camera }

// Viewport returns the render target size in pixels.
func (s *Scene) Viewport() core.Size { return s.viewport }

// Time returns the animation time in seconds.
func (s *Scene) Time() float64 { return s.time }

// NoiseOffset returns the smoothed wheel-driven noise offset.
func (s *Scene) NoiseOffset() float64 { return s.noiseOffset }

// Reset restores the parameters the scene was created with.
func (s *Scene) Reset() {
	s.params = s.base
}

// Advance moves the animation to elapsed seconds and eases the noise offset
// toward its target. Time never decreases.
func (s *Scene) Advance(elapsed float64) {
	if elapsed > s.time {
		s.time = elapsed
	}
	s.noiseOffset = wave.Mix(s.noiseOffset, s.targetNoiseOffset, noiseLerp)
}

// Scroll applies a wheel delta in pixels; positive values scroll forward.
func (s *Scene) Scroll(deltaY float64) {
	s.targetNoiseOffset += deltaY * wheelGain
}

// Resize updates the viewport and camera aspect. Non-positive sizes are
// ignored.
func (s *Scene) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	s.viewport = core.Size{W: w, H: h}
	s.camera.SetViewport(w, h)
}

// Displacement returns the vertex-stage inputs for the current frame.
func (s *Scene) Displacement() wave.DisplacementParams {
	return wave.DisplacementParams{
		Time:        s.time,
		Speed:       s.params.Speed,
		Strength:    s.params.Strength,
		NoiseScale:  s.params.NoiseScale,
		NoiseOffset: s.noiseOffset,
	}
}

// Grid returns the fragment-stage inputs for the current frame.
func (s *Scene) Grid() wave.GridParams {
	return wave.GridParams{
		GridSize:  float64(s.params.GridSize),
		LineWidth: s.params.LineWidth,
		EdgeFade:  s.params.EdgeFade,
		TopFade:   s.params.TopFade,
	}
}

// ModelViewProjection returns the combined transform for the plane.
func (s *Scene) ModelViewProjection() mgl32.Mat4 {
	scale := s.camera.PlaneScale()
	model := mgl32.Translate3D(0, 0, planeZ).
		Mul4(mgl32.HomogRotate3DX(float32(s.params.Rotation))).
		Mul4(mgl32.Scale3D(scale, scale, 1))
	return s.camera.Projection().Mul4(s.camera.View()).Mul4(model)
}

// Project displaces every mesh vertex and maps it to viewport pixels. The
// returned slice is reused across calls.
func (s *Scene) Project() []ScreenVertex {
	verts := s.mesh.Vertices
	if cap(s.projected) < len(verts) {
		s.projected = make([]ScreenVertex, len(verts))
	}
	out := s.projected[:len(verts)]

	mvp := s.ModelViewProjection()
	disp := s.Displacement()
	w := float32(s.viewport.W)
	h := float32(s.viewport.H)
	for i, v := range verts {
		z := wave.Displace(v.X, v.Y, disp)
		clip := mvp.Mul4x1(mgl32.Vec4{float32(v.X), float32(v.Y), float32(z), 1})
		sv := ScreenVertex{U: float32(v.U), V: float32(v.V)}
		if cw := clip.W(); cw > s.camera.Near*0.5 && !math32.IsInf(cw, 0) {
			nx := clip.X() / cw
			ny := clip.Y() / cw
			sv.X = (nx + 1) * 0.5 * w
			sv.Y = (1 - ny) * 0.5 * h
			sv.Visible = true
		}
		out[i] = sv
	}
	return out
}
