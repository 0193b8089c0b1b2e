package must2

import (
	"math"

	"github.com/soypat/spline/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Polygon is a signed distance function of a closed set of line segments.
// Evaluate is negative inside the polygon.
type Polygon struct {
	vertex []r2.Vec  // vertices
	vector []r2.Vec  // unit line vectors
	length []float64 // line lengths
	bb     r2.Box    // bounding box
}

// NewPolygon returns the polygon through vertex. The loop is closed if
// the last vertex does not repeat the first. Consecutive duplicate
// vertices are dropped.
func NewPolygon(vertex []r2.Vec) *Polygon {
	s := Polygon{}
	vertex = d2.Set(vertex).Dedup(tolerance)
	n := len(vertex)
	if n < 3 {
		panic("number of vertices < 3")
	}

	// Close the loop.
	s.vertex = append(vertex[:n:n], vertex[0])

	// allocate pre-calculated line segment info
	nsegs := len(s.vertex) - 1
	s.vector = make([]r2.Vec, nsegs)
	s.length = make([]float64, nsegs)

	for i := 0; i < nsegs; i++ {
		l := r2.Sub(s.vertex[i+1], s.vertex[i])
		s.length[i] = r2.Norm(l)
		s.vector[i] = r2.Unit(l)
	}
	s.bb = d2.Set(vertex).Bounds()
	return &s
}

// Evaluate returns the minimum distance to the polygon.
func (s *Polygon) Evaluate(p r2.Vec) float64 {
	dd := math.MaxFloat64 // d^2 to polygon (>0)
	wn := 0               // winding number (inside/outside)

	// iterate over the line segments
	nsegs := len(s.vertex) - 1
	pb := r2.Sub(p, s.vertex[0])

	for i := 0; i < nsegs; i++ {
		a := s.vertex[i]
		b := s.vertex[i+1]

		pa := pb
		pb = r2.Sub(p, b)

		t := r2.Dot(pa, s.vector[i])                                  // t-parameter of projection onto line
		dn := r2.Dot(pa, r2.Vec{X: s.vector[i].Y, Y: -s.vector[i].X}) // normal distance from p to line

		// Distance to line segment
		if t < 0 {
			dd = math.Min(dd, r2.Norm2(pa)) // distance to vertex[0] of line
		} else if t > s.length[i] {
			dd = math.Min(dd, r2.Norm2(pb)) // distance to vertex[1] of line
		} else {
			dd = math.Min(dd, dn*dn) // normal distance to line
		}

		// Is the point in the polygon?
		// See: http://geomalgorithms.com/a03-_inclusion.html
		if a.Y <= p.Y {
			if b.Y > p.Y && dn < 0 { // upward crossing, p left of segment
				wn++
			}
		} else if b.Y <= p.Y && dn > 0 { // downward crossing, p right of segment
			wn--
		}
	}

	d := math.Sqrt(dd)
	if wn != 0 {
		return -d
	}
	return d
}

// Bounds returns the bounding box of the polygon.
func (s *Polygon) Bounds() r2.Box {
	return s.bb
}

// Vertices returns the closed vertex loop. The last vertex repeats the first.
func (s *Polygon) Vertices() []r2.Vec {
	return s.vertex
}

// Circle is the signed distance function of a circle centered at the origin.
type Circle float64

// Evaluate returns the minimum distance to the circle.
func (c Circle) Evaluate(p r2.Vec) float64 {
	return r2.Norm(p) - float64(c)
}

// Bounds returns the bounding box of the circle.
func (c Circle) Bounds() r2.Box {
	r := float64(c)
	return r2.Box{Min: r2.Vec{X: -r, Y: -r}, Max: r2.Vec{X: r, Y: r}}
}
