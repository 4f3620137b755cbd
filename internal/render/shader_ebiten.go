//go:build ebiten

package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"wavegrid/internal/scene"
)

// NewGridShader compiles the grid fragment program.
func NewGridShader() (*ebiten.Shader, error) {
	s, err := ebiten.NewShader(GridShaderSource())
	if err != nil {
		return nil, fmt.Errorf("compile grid shader: %w", err)
	}
	return s, nil
}

// GridRenderer draws the displaced plane with the grid shader on the GPU.
type GridRenderer struct {
	shader   *ebiten.Shader
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewGridRenderer compiles the shader and returns a renderer.
func NewGridRenderer() (*GridRenderer, error) {
	s, err := NewGridShader()
	if err != nil {
		return nil, err
	}
	return &GridRenderer{shader: s}, nil
}

// Draw projects the scene mesh and shades it onto dst.
func (r *GridRenderer) Draw(dst *ebiten.Image, sc *scene.Scene) {
	projected := sc.Project()
	r.vertices = r.vertices[:0]
	for _, v := range projected {
		r.vertices = append(r.vertices, ebiten.Vertex{
			DstX:   v.X,
			DstY:   v.Y,
			ColorR: v.U,
			ColorG: v.V,
			ColorA: 1,
		})
	}
	r.indices = VisibleIndices(r.indices[:0], projected, sc.Mesh().Indices)
	if len(r.indices) == 0 {
		return
	}
	dst.DrawTrianglesShader(r.vertices, r.indices, r.shader, &ebiten.DrawTrianglesShaderOptions{
		Uniforms: GridUniforms(sc.Grid()),
	})
}
