package ui

import (
	"math"
	"strconv"

	"wavegrid/internal/core"
)

// adjustedValue returns the value one step away from current in direction,
// clamped to the control's bounds. ok is false when the value cannot move.
func adjustedValue(ctrl core.ParameterControl, current float64, direction int) (float64, bool) {
	if direction == 0 {
		return current, false
	}
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
		if ctrl.Type == core.ParamTypeInt {
			step = 1
		}
	}
	target := ctrl.Clamp(current + float64(direction)*step)
	// Snap to the step grid so repeated clicks do not accumulate drift.
	target = math.Round(target/step) * step
	target = ctrl.Clamp(target)
	if math.Abs(target-current) < step*1e-6 {
		return current, false
	}
	return target, true
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}
