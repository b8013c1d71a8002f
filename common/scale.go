package common

import "math"

// Scaler converts logical size units to screen-space units.
type Scaler func(v float64) float64

// NewScaler returns a Scaler for a screen whose ratio step is scaleFactor
// pixels wide. A factor equal to LogicalUnit maps logical units 1:1.
func NewScaler(scaleFactor float64) Scaler {
	if scaleFactor <= 0 {
		scaleFactor = LogicalUnit
	}
	return func(v float64) float64 {
		return math.Floor(v / LogicalUnit * scaleFactor)
	}
}

// ScaleFactorFor picks the largest 16:9 ratio step that fits a w x h screen.
func ScaleFactorFor(w, h int) float64 {
	horiz := float64(w) / 16
	vert := float64(h) / 9
	return math.Min(horiz, vert)
}

// Unscaled maps logical units to themselves.
var Unscaled = NewScaler(LogicalUnit)
