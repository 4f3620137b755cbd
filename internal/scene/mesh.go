package scene

import "math"

// maxSegments keeps (segments+1)^2 within uint16 index range.
const maxSegments = 250

// Vertex is a point of the undisplaced plane in its local XY space together
// with its surface coordinate.
type Vertex struct {
	X, Y float64
	U, V float64
}

// Mesh is a subdivided rectangle centred at the origin, triangulated with
// counter-clockwise winding.
type Mesh struct {
	Width, Height float64
	SegX, SegY    int
	Vertices      []Vertex
	Indices       []uint16
}

// NewPlane builds a width x height plane split into segX x segY quads.
// Rows run from the top edge (v = 1) to the bottom edge (v = 0).
func NewPlane(width, height float64, segX, segY int) *Mesh {
	segX = clampSegments(segX)
	segY = clampSegments(segY)
	cols := segX + 1
	rows := segY + 1
	m := &Mesh{
		Width:    width,
		Height:   height,
		SegX:     segX,
		SegY:     segY,
		Vertices: make([]Vertex, 0, cols*rows),
		Indices:  make([]uint16, 0, segX*segY*6),
	}

	cellW := width / float64(segX)
	cellH := height / float64(segY)
	for iy := 0; iy < rows; iy++ {
		y := height/2 - float64(iy)*cellH
		for ix := 0; ix < cols; ix++ {
			x := float64(ix)*cellW - width/2
			m.Vertices = append(m.Vertices, Vertex{
				X: x,
				Y: y,
				U: float64(ix) / float64(segX),
				V: 1 - float64(iy)/float64(segY),
			})
		}
	}

	for iy := 0; iy < segY; iy++ {
		for ix := 0; ix < segX; ix++ {
			a := uint16(ix + cols*iy)
			b := uint16(ix + cols*(iy+1))
			c := uint16(ix + 1 + cols*(iy+1))
			d := uint16(ix + 1 + cols*iy)
			m.Indices = append(m.Indices, a, b, d, b, c, d)
		}
	}
	return m
}

func clampSegments(n int) int {
	return int(math.Max(1, math.Min(maxSegments, float64(n))))
}
