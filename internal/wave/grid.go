package wave

import "math"

// BaseShade is the grey level drawn between grid lines.
const BaseShade = 0.11

// GridParams configures line drawing and border fading. Values are expected
// to be clamped by the caller.
type GridParams struct {
	GridSize  float64
	LineWidth float64
	EdgeFade  float64
	TopFade   float64
}

// DefaultGrid returns the grid settings used at start-up.
func DefaultGrid() GridParams {
	return GridParams{GridSize: 50, LineWidth: 0.015, EdgeFade: 0.2, TopFade: 0.9}
}

// PixelOutput is a straight (non-premultiplied) colour with alpha.
type PixelOutput struct {
	R, G, B, A float64
}

// Shade evaluates the grid fragment for surface coordinate (u, v).
// derivU and derivV are the screen-space rates of change of u*GridSize and
// v*GridSize between adjacent pixels.
func Shade(u, v, derivU, derivV float64, p GridParams) PixelOutput {
	mx := LineMask(u*p.GridSize, derivU, p.LineWidth)
	my := LineMask(v*p.GridSize, derivV, p.LineWidth)
	c := Mix(BaseShade, 1, Combine(mx, my))
	return PixelOutput{R: c, G: c, B: c, A: Fade(u, v, p.EdgeFade, p.TopFade)}
}

// LineMask returns the anti-aliased line coverage for one axis of a scaled
// grid coordinate. The result is 1 on a line and 0 in the middle of a cell.
func LineMask(coord, deriv, lineWidth float64) float64 {
	drawWidth := math.Max(lineWidth, deriv)
	lineAA := deriv * 1.5
	gridUV := 1 - math.Abs(Fract(coord)*2-1)
	var mask float64
	if lineAA == 0 {
		// No anti-aliasing band: a hard line of drawWidth.
		mask = step(gridUV, drawWidth)
	} else {
		mask = Smoothstep(drawWidth+lineAA, drawWidth-lineAA, gridUV)
	}
	// Thin lines far away fade out instead of staying one pixel bright.
	return mask * Saturate(lineWidth/drawWidth)
}

// Combine merges the per-axis masks. The v-axis mask overrides: where it is 1
// the result is 1, where it is 0 the result is the u-axis mask.
func Combine(maskU, maskV float64) float64 {
	return Mix(maskU, 1, maskV)
}

// Fade returns the border opacity: 0 on all four edges of the unit square and
// 1 in the interior. The top edge (v = 1) uses its own width.
func Fade(u, v, edgeFade, topFade float64) float64 {
	fade := 1.0
	fade *= fadeIn(edgeFade, u)
	fade *= fadeIn(edgeFade, 1-u)
	fade *= fadeIn(edgeFade, v)
	fade *= fadeIn(topFade, 1-v)
	return fade
}

// fadeIn ramps from 0 at the border to 1 at width. A zero width is a hard
// edge that is 0 only on the border itself.
func fadeIn(width, x float64) float64 {
	if width <= 0 {
		if x > 0 {
			return 1
		}
		return 0
	}
	return Smoothstep(0, width, x)
}

// Smoothstep is the Hermite step between e0 and e1. Reversed edges invert the
// ramp. Edges must differ.
func Smoothstep(e0, e1, x float64) float64 {
	t := Saturate((x - e0) / (e1 - e0))
	return t * t * (3 - 2*t)
}

// Saturate clamps x to [0, 1]. NaN passes through.
func Saturate(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}

// Fract returns x - floor(x).
func Fract(x float64) float64 {
	return x - math.Floor(x)
}

// Mix linearly interpolates between a and b.
func Mix(a, b, t float64) float64 {
	return a*(1-t) + b*t
}
