package render

import (
	_ "embed"

	"wavegrid/internal/scene"
	"wavegrid/internal/wave"
)

//go:embed grid.kage
var gridShaderSrc []byte

// GridShaderSource returns the Kage source of the grid fragment program.
func GridShaderSource() []byte { return gridShaderSrc }

// GridUniforms maps grid parameters onto the shader's uniform variables.
func GridUniforms(p wave.GridParams) map[string]any {
	return map[string]any{
		"GridSize":  float32(p.GridSize),
		"LineWidth": float32(p.LineWidth),
		"EdgeFade":  float32(p.EdgeFade),
		"TopFade":   float32(p.TopFade),
	}
}

// VisibleIndices appends to dst the triangles of indices whose three corners
// are all in front of the camera.
func VisibleIndices(dst []uint16, verts []scene.ScreenVertex, indices []uint16) []uint16 {
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		if !verts[a].Visible || !verts[b].Visible || !verts[c].Visible {
			continue
		}
		dst = append(dst, a, b, c)
	}
	return dst
}
