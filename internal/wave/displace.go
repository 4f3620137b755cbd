package wave

// DisplacementParams drives the vertex height field. Time is owned by the
// frame driver and only ever grows.
type DisplacementParams struct {
	Time     float64
	Speed    float64
	Strength float64

	// NoiseScale stretches the sampled noise domain; 1 leaves it unchanged.
	NoiseScale float64
	// NoiseOffset slides the sample point along the plane's v axis.
	NoiseOffset float64
}

// DefaultDisplacement returns the displacement settings used at start-up.
func DefaultDisplacement() DisplacementParams {
	return DisplacementParams{Speed: 0.5, Strength: 0.6, NoiseScale: 1}
}

// Displace returns the height offset for the plane point (x, y).
func Displace(x, y float64, p DisplacementParams) float64 {
	n := Simplex3(x*2*p.NoiseScale, y*2*p.NoiseScale+p.NoiseOffset, p.Time*0.2*p.Speed)
	return n * p.Strength
}
