//go:build ebiten

package render

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"

	"wavegrid/internal/scene"
	"wavegrid/internal/wave"
)

// GridPainter is the CPU fallback: it rasterizes the grid into a texture in
// surface space and maps that texture onto the projected mesh.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	workers int

	painted  bool
	lastGrid wave.GridParams

	vertices []ebiten.Vertex
	indices  []uint16
}

// NewGridPainter allocates a painter with a w x h surface texture.
func NewGridPainter(w, h, workers int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h), workers: workers}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Draw refreshes the texture when the grid parameters changed and draws the
// projected mesh onto dst.
func (gp *GridPainter) Draw(dst *ebiten.Image, sc *scene.Scene) error {
	grid := sc.Grid()
	if !gp.painted || grid != gp.lastGrid {
		px, err := Rasterize(context.Background(), gp.w, gp.h, grid, gp.workers)
		if err != nil {
			return err
		}
		fillPremultipliedRGBA(gp.buf, px)
		gp.img.WritePixels(gp.buf)
		gp.lastGrid = grid
		gp.painted = true
	}

	projected := sc.Project()
	fw, fh := float32(gp.w), float32(gp.h)
	gp.vertices = gp.vertices[:0]
	for _, v := range projected {
		gp.vertices = append(gp.vertices, ebiten.Vertex{
			DstX:   v.X,
			DstY:   v.Y,
			SrcX:   v.U * fw,
			SrcY:   (1 - v.V) * fh,
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		})
	}
	gp.indices = VisibleIndices(gp.indices[:0], projected, sc.Mesh().Indices)
	if len(gp.indices) == 0 {
		return nil
	}
	dst.DrawTriangles(gp.vertices, gp.indices, gp.img, &ebiten.DrawTrianglesOptions{Filter: ebiten.FilterLinear})
	return nil
}

// Size returns the dimensions of the surface texture.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
