package wave

import "math"

// Simplex3 returns 3D simplex noise at (x, y, z). The result is continuous,
// roughly zero-mean and stays within about [-1, 1]. It is a pure function of
// its inputs and matches the permutation-polynomial formulation commonly used
// in GLSL, so CPU and GPU evaluations agree up to float precision.
func Simplex3(x, y, z float64) float64 {
	const (
		g3 = 1.0 / 6.0
		f3 = 1.0 / 3.0
	)

	// First corner.
	s := (x + y + z) * f3
	ix := math.Floor(x + s)
	iy := math.Floor(y + s)
	iz := math.Floor(z + s)
	t := (ix + iy + iz) * g3
	x0 := x - ix + t
	y0 := y - iy + t
	z0 := z - iz + t

	// Other corners.
	gx := step(y0, x0)
	gy := step(z0, y0)
	gz := step(x0, z0)
	lx, ly, lz := 1-gx, 1-gy, 1-gz

	i1x, i1y, i1z := math.Min(gx, lz), math.Min(gy, lx), math.Min(gz, ly)
	i2x, i2y, i2z := math.Max(gx, lz), math.Max(gy, lx), math.Max(gz, ly)

	offs := [4][3]float64{
		{x0, y0, z0},
		{x0 - i1x + g3, y0 - i1y + g3, z0 - i1z + g3},
		{x0 - i2x + f3, y0 - i2y + f3, z0 - i2z + f3},
		{x0 - 0.5, y0 - 0.5, z0 - 0.5},
	}
	corners := [4][3]float64{
		{0, 0, 0},
		{i1x, i1y, i1z},
		{i2x, i2y, i2z},
		{1, 1, 1},
	}

	ix = mod289(ix)
	iy = mod289(iy)
	iz = mod289(iz)

	// Gradients: 7x7 points over a square, mapped onto an octahedron.
	const (
		nsx = 2.0 / 7.0
		nsy = 0.5/7.0 - 1.0
		nsz = 1.0 / 7.0
	)

	var sum float64
	for k := 0; k < 4; k++ {
		c := corners[k]
		p := permute(permute(permute(iz+c[2])+iy+c[1]) + ix + c[0])

		j := p - 49*math.Floor(p*nsz*nsz)
		xq := math.Floor(j * nsz)
		yq := math.Floor(j - 7*xq)

		gxk := xq*nsx + nsy
		gyk := yq*nsx + nsy
		h := 1 - math.Abs(gxk) - math.Abs(gyk)

		sh := -step(h, 0)
		gxk += (math.Floor(gxk)*2 + 1) * sh
		gyk += (math.Floor(gyk)*2 + 1) * sh
		gzk := h

		norm := taylorInvSqrt(gxk*gxk + gyk*gyk + gzk*gzk)
		gxk *= norm
		gyk *= norm
		gzk *= norm

		o := offs[k]
		m := math.Max(0.6-(o[0]*o[0]+o[1]*o[1]+o[2]*o[2]), 0)
		m *= m
		sum += m * m * (gxk*o[0] + gyk*o[1] + gzk*o[2])
	}
	return 42 * sum
}

func mod289(x float64) float64 {
	return x - math.Floor(x*(1.0/289.0))*289.0
}

func permute(x float64) float64 {
	return mod289((x*34 + 1) * x)
}

func taylorInvSqrt(r float64) float64 {
	return 1.79284291400159 - 0.85373472095314*r
}

// step mirrors the shader builtin: 0 when x < edge, otherwise 1.
func step(edge, x float64) float64 {
	if x < edge {
		return 0
	}
	return 1
}
