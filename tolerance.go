package spline

import "math"

// Bounds are the tolerance limits of a shaft tooth thickness or a hub
// space width at the pitch circle [mm]. The effective size accounts for
// the form deviations of all teeth, the actual size for a single tooth.
type Bounds struct {
	Nominal   float64 // s1 for a shaft, e2 for a hub
	Deviation float64 // A_s or A_e
	Actual    float64 // actual tolerance T_act
	Effective float64 // effective tolerance T_eff

	MaxEffective float64
	MaxActual    float64
	MinActual    float64
	MinEffective float64
}

// toothThickness bounds a shaft tooth thickness. The effective maximum
// sits at the deviation; the actual band lies T_eff below it.
func toothThickness(s1, dev, act, eff float64) Bounds {
	b := Bounds{Nominal: s1, Deviation: dev, Actual: act, Effective: eff}
	b.MaxEffective = s1 + dev
	b.MaxActual = b.MaxEffective - eff
	b.MinActual = b.MaxActual - act
	b.MinEffective = b.MinActual + eff
	return b
}

// spaceWidth bounds a hub space width. The effective minimum sits at
// the deviation; the actual band lies T_eff above it.
func spaceWidth(e2, dev, act, eff float64) Bounds {
	b := Bounds{Nominal: e2, Deviation: dev, Actual: act, Effective: eff}
	b.MinEffective = e2 + dev
	b.MinActual = b.MinEffective + eff
	b.MaxActual = b.MinActual + act
	b.MaxEffective = b.MaxActual - eff
	return b
}

// Mid returns the middle of the actual tolerance band, the size used
// for the generated profiles.
func (b Bounds) Mid() float64 { return b.MinActual + (b.MaxActual-b.MinActual)/2 }

// Upper returns the largest of all limits.
func (b Bounds) Upper() float64 { return math.Max(b.MaxEffective, b.MaxActual) }

// Lower returns the smallest of all limits.
func (b Bounds) Lower() float64 { return math.Min(b.MinEffective, b.MinActual) }
