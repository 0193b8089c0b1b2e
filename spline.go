// Package spline derives the tooth flank geometry of flank centered involute
// spline connections (shaft and hub) following DIN 5480-1.
//
// A spline is designated by its reference diameter, module, number of teeth
// and the tolerance fit of hub and shaft, e.g. "DIN 5480 - 30 x 1 x 28 x 9H/8j".
// Resolve computes the macro geometry and tolerance bounds of a designation
// from the standardized tables; Generate samples the flanks, tip and root
// arcs and root fillets of a single tooth, a single space width and the
// complete shaft and hub outlines. All lengths are in millimetres and
// all angles in radians.
package spline

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

const (
	pi = math.Pi

	// PressureAngle is the pressure angle of all DIN 5480 splines, 30 degrees.
	PressureAngle = pi / 6

	// tipFactor is the tip diameter allowance coefficient, d_a = m(z+2x+0.9).
	tipFactor = 0.9
	// shiftOffset is subtracted from dB/m - z to obtain twice the profile shift.
	shiftOffset = 1.1

	tolerance = 1e-9
)

// SDF2 is the interface to a 2d signed distance function object.
type SDF2 interface {
	// Evaluate returns the minimum distance of the point to the
	// outline. The distance is negative inside the outline.
	Evaluate(p r2.Vec) float64

	// Bounds returns the bounding box that completely contains the outline.
	Bounds() r2.Box
}

// DtoR converts degrees to radians
func DtoR(degrees float64) float64 {
	return (pi / 180) * degrees
}

// RtoD converts radians to degrees
func RtoD(radians float64) float64 {
	return (180 / pi) * radians
}
