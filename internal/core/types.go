package core

// Size describes the pixel dimensions of a render target.
type Size struct {
	W int
	H int
}

// Tunable is anything that exposes live parameters to the HUD.
type Tunable interface {
	Name() string
	Parameters() ParameterSnapshot
	ParameterControlsProvider
}
