// Package must2 generates the 2D point patterns of involute spline features.
// Functions panic on invalid input; package form2 provides the error
// returning equivalents.
package must2

import (
	"math"

	"github.com/soypat/spline/internal/d2"
	"github.com/soypat/spline/involute"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
)

const tolerance = 1e-9

// Sector describes the angular division of a spline with Teeth teeth.
type Sector struct {
	Teeth int
}

// Width returns the central angle of one pitch.
func (s Sector) Width() float64 { return 2 * math.Pi / float64(s.Teeth) }

// Offsets returns the polar angle at the start of every pitch, beginning at zero.
func (s Sector) Offsets() []float64 {
	if s.Teeth <= 0 {
		panic("sector needs at least one tooth")
	}
	w := s.Width()
	offsets := make([]float64, s.Teeth)
	for i := range offsets {
		offsets[i] = float64(i) * w
	}
	return offsets
}

// Pattern holds the points of one feature for every tooth of a spline.
// Pattern[i] are the points of tooth i in sampling order.
type Pattern [][]r2.Vec

// Tooth returns the points of the i'th tooth.
func (p Pattern) Tooth(i int) []r2.Vec { return p[i] }

// Replicate converts the polar samples (radii[i], angles[i]) of one
// feature to cartesian points and repeats them for every tooth of s.
func Replicate(radii, angles []float64, s Sector) Pattern {
	if len(radii) != len(angles) {
		panic("radii and angles length mismatch")
	}
	offsets := s.Offsets()
	pattern := make(Pattern, len(offsets))
	for i, off := range offsets {
		pts := make([]r2.Vec, len(radii))
		for j, r := range radii {
			pts[j] = d2.PolarToXY(r, angles[j]+off)
		}
		pattern[i] = pts
	}
	return pattern
}

// Span returns n equally spaced values from a to b inclusive.
func Span(a, b float64, n int) []float64 {
	if n < 2 {
		panic("need at least 2 samples")
	}
	return floats.Span(make([]float64, n), a, b)
}

// Flank holds the polar samples of one involute flank.
type Flank struct {
	Radii  []float64
	Angles []float64
}

// First returns the polar angle of the first sample.
func (f Flank) First() float64 { return f.Angles[0] }

// Last returns the polar angle of the last sample.
func (f Flank) Last() float64 { return f.Angles[len(f.Angles)-1] }

// Mirror returns the flank reflected about the x axis.
func (f Flank) Mirror() Flank {
	m := Flank{Radii: f.Radii, Angles: make([]float64, len(f.Angles))}
	for i, a := range f.Angles {
		m.Angles[i] = -a
	}
	return m
}

// Pattern repeats the flank for every tooth of s.
func (f Flank) Pattern(s Sector) Pattern {
	return Replicate(f.Radii, f.Angles, s)
}

// FlankParams defines an involute flank bounding a tooth or a space width
// which is centered about polar angle zero.
type FlankParams struct {
	// Base is the base circle radius.
	Base float64
	// From and To are the first and last sampled radii. For a tooth
	// sampling runs outwards, for a hub space width it runs inwards.
	From, To float64
	// Reference is the involute angle at the radius where the
	// thickness (or width) is measured, usually the pitch circle.
	Reference float64
	// Thickness is the central angle of the tooth thickness or space width at the reference radius.
	Thickness float64
	// Points is the number of samples.
	Points int
}

// NewFlank samples an involute flank between two radii. The returned flank
// lies on the negative angle side of the x axis so that its mirror
// bounds the other side of the tooth or space.
func NewFlank(p FlankParams) Flank {
	radii := Span(p.From, p.To, p.Points)
	angles := make([]float64, len(radii))
	for i, r := range radii {
		a, err := involute.Angle(p.Base, r)
		if err != nil {
			panic(err)
		}
		angles[i] = a
	}
	// Central angle between the flank starts of the two sides.
	sector := 2*(p.Reference-angles[0]) + p.Thickness
	start := angles[0]
	for i := range angles {
		angles[i] = angles[i] - start - sector/2
	}
	return Flank{Radii: radii, Angles: angles}
}
