package must2

import (
	"math"

	"github.com/soypat/spline/internal/d2"
	"github.com/soypat/spline/involute"
	"gonum.org/v1/gonum/spatial/r2"
)

// FilletParams defines the root fillet between an involute flank and the
// root circle of a spline.
type FilletParams struct {
	// Form is the form circle radius, where the fillet meets the flank.
	Form float64
	// Root is the root circle radius. Root < Form for an external
	// spline (shaft) and Root > Form for an internal spline (hub).
	Root float64
	// Radius is the fillet radius.
	Radius float64
	// Boundary is the polar angle of the adjacent flank on the form circle.
	Boundary float64
	// Points is the number of samples per fillet arc.
	Points int
}

// External reports whether the fillet belongs to an external spline.
func (p FilletParams) External() bool { return p.Form > p.Root }

// centerRadius is the distance of the fillet center from the spline axis.
// The fillet circle touches the root circle from outside the tooth material.
func (p FilletParams) centerRadius() float64 {
	if p.External() {
		return p.Root + p.Radius
	}
	return p.Root - p.Radius
}

// Fillet is a solved root fillet.
type Fillet struct {
	// Side1 is the fillet next to the positive angle flank of the first
	// tooth (or space), Side2 is its mirror image.
	Side1, Side2 Pattern
	// CenterAngle is the polar angle of the fillet center of Side1.
	// The root circle arc adjoining the fillet ends at this angle.
	CenterAngle float64
	// Center is the fillet center of Side1 of the first tooth.
	Center r2.Vec
	// Contact is the polar angle, measured about Center, of the point
	// where the fillet of Side1 meets the form circle.
	Contact float64
}

// filletHit is the intersection of a fillet circle and the form circle.
type filletHit struct {
	center r2.Vec
	hit    r2.Vec
}

// intersect places the fillet center on the ray at polar angle theta and
// returns the intersection of the fillet circle and form circle with the
// larger y coordinate. Substituting the form circle x^2+y^2=F^2 into the
// fillet circle (x-H)^2+(y-K)^2=rho^2 yields a quadratic in y.
func intersect(p FilletParams, theta float64) filletHit {
	cr := p.centerRadius()
	H := cr * math.Cos(theta)
	K := cr * math.Sin(theta)
	F, rho := p.Form, p.Radius
	D := F*F - rho*rho + K*K - H*H
	a := K*K/(H*H) + 1
	b := -(K/(H*H))*D - 2*K
	c := (D/(2*H))*(D/(2*H)) + K*K - rho*rho
	disc := b*b - 4*a*c
	if disc < 0 || math.IsNaN(disc) {
		panic(&involute.DomainError{Op: "Fillet", Value: rho, Reason: "fillet circle does not reach the form circle, fillet radius too large for the form/root radius gap"})
	}
	y := (-b + math.Sqrt(disc)) / (2 * a)
	x := math.Sqrt(math.Max(F*F-y*y, 0))
	return filletHit{center: r2.Vec{X: H, Y: K}, hit: r2.Vec{X: x, Y: y}}
}

// NewFillet solves the root fillet and repeats it for every tooth of s.
//
// The center angle is solved in two calls: the first places the center on the
// boundary angle and measures the angular offset of the intersection with
// the form circle; the second shifts the center by that offset so the
// intersection coincides with the flank. Since the offset only depends on
// the radii, a single correction places the intersection on the boundary.
func NewFillet(p FilletParams, s Sector) Fillet {
	if p.Radius <= 0 {
		panic("fillet radius must be positive")
	}
	first := intersect(p, p.Boundary)
	hitAngle := math.Atan2(first.hit.Y, first.hit.X)
	theta := hitAngle
	if !p.External() {
		theta = p.Boundary - (hitAngle - p.Boundary)
	}
	second := intersect(p, theta)
	contact := math.Atan2(second.hit.Y-second.center.Y, second.hit.X-second.center.X)

	f := Fillet{
		CenterAngle: theta,
		Center:      second.center,
		Contact:     contact,
	}
	f.Side1 = p.arc(theta, contact, 1, s)
	f.Side2 = p.arc(-theta, -contact, -1, s)
	return f
}

// arc samples the fillet arc from the root circle to the form circle.
// sign is 1 for the fillet of the positive angle flank and -1 for its mirror.
func (p FilletParams) arc(theta, contact, sign float64, s Sector) Pattern {
	var from, to float64
	if p.External() {
		// The center lies outside the root circle; the root contact point faces the axis.
		from = theta + sign*math.Pi
		// The form circle contact on the flank side is the reflection of
		// the solved intersection about the center ray.
		to = 2*from - contact
	} else {
		from = theta
		to = contact
	}
	angles := Span(from, to, p.Points)
	cr := p.centerRadius()
	offsets := s.Offsets()
	pattern := make(Pattern, len(offsets))
	for i, off := range offsets {
		center := d2.PolarToXY(cr, theta+off)
		pts := make([]r2.Vec, len(angles))
		for j, a := range angles {
			pts[j] = r2.Add(center, d2.PolarToXY(p.Radius, a+off))
		}
		pattern[i] = pts
	}
	return pattern
}
