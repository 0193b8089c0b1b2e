// Package d2 holds small 2D vector helpers shared by the profile generators.
package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

func EqualWithin(a, b r2.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

// MinElem return a vector with the minimum components of two vectors.
func MinElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
}

// MaxElem return a vector with the maximum components of two vectors.
func MaxElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
}

type Set []r2.Vec

// Bounds returns the smallest box containing all vectors of the set.
func (a Set) Bounds() r2.Box {
	vmin, vmax := a[0], a[0]
	for _, v := range a[1:] {
		vmin = MinElem(vmin, v)
		vmax = MaxElem(vmax, v)
	}
	return r2.Box{Min: vmin, Max: vmax}
}

// Dedup returns the set with consecutive points closer than tol removed.
// The closing point is dropped too when it repeats the first point.
func (a Set) Dedup(tol float64) Set {
	if len(a) == 0 {
		return nil
	}
	out := Set{a[0]}
	for _, v := range a[1:] {
		if !EqualWithin(out[len(out)-1], v, tol) {
			out = append(out, v)
		}
	}
	if len(out) > 1 && EqualWithin(out[0], out[len(out)-1], tol) {
		out = out[:len(out)-1]
	}
	return out
}

// Reverse returns a reversed copy of the set.
func (a Set) Reverse() Set {
	out := make(Set, len(a))
	for i, v := range a {
		out[len(a)-1-i] = v
	}
	return out
}

type Pol struct {
	R, Theta float64
}

// PolarToCartesian converts a polar to a cartesian coordinate.
func (a Pol) PolarToCartesian() r2.Vec {
	return r2.Vec{X: a.R * math.Cos(a.Theta), Y: a.R * math.Sin(a.Theta)}
}

// CartesianToPolar converts a cartesian to a polar coordinate.
func CartesianToPolar(a r2.Vec) Pol {
	return Pol{r2.Norm(a), math.Atan2(a.Y, a.X)}
}

// PolarToXY converts polar to cartesian coordinates.
func PolarToXY(r, theta float64) r2.Vec {
	return Pol{r, theta}.PolarToCartesian()
}
