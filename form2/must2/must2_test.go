package must2

import (
	"errors"
	"math"
	"testing"

	"github.com/soypat/spline/internal/d2"
	"github.com/soypat/spline/involute"
	"gonum.org/v1/gonum/spatial/r2"
)

// Radii of a 30 x 1 x 28 spline machined by broaching.
const (
	rb    = 12.12435565298214
	rp    = 14.0
	ra1   = 14.9
	rf1   = 13.9
	rFf1  = 13.97
	ra2   = 14.0
	rf2   = 15.0
	rFf2  = 14.93
	rho   = 0.16
	teeth = 28
	thick = 2.0694115 // mid tooth thickness at pitch circle
	tol   = 1e-9
)

func refAngle(t *testing.T) float64 {
	a, err := involute.Angle(rb, rp)
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func shaftFlank(t *testing.T, points int) Flank {
	return NewFlank(FlankParams{
		Base:      rb,
		From:      rFf1,
		To:        ra1,
		Reference: refAngle(t),
		Thickness: thick / rp,
		Points:    points,
	})
}

func hubFlank(t *testing.T, points int) Flank {
	return NewFlank(FlankParams{
		Base:      rb,
		From:      ra2,
		To:        rFf2,
		Reference: refAngle(t),
		Thickness: thick / rp,
		Points:    points,
	})
}

func TestSectorOffsets(t *testing.T) {
	s := Sector{Teeth: teeth}
	off := s.Offsets()
	if len(off) != teeth {
		t.Fatalf("got %d offsets", len(off))
	}
	if off[0] != 0 {
		t.Error("first offset must be zero")
	}
	last := 2*math.Pi - s.Width()
	if math.Abs(off[teeth-1]-last) > tol {
		t.Errorf("last offset %g, want %g", off[teeth-1], last)
	}
}

func TestFlankCentering(t *testing.T) {
	// Sampling from the pitch radius puts the first point on half the tooth thickness.
	f := NewFlank(FlankParams{
		Base:      rb,
		From:      rp,
		To:        ra1,
		Reference: refAngle(t),
		Thickness: thick / rp,
		Points:    10,
	})
	if math.Abs(f.First()+thick/rp/2) > tol {
		t.Errorf("flank angle at pitch circle %g, want %g", f.First(), -thick/rp/2)
	}
	for i := 1; i < len(f.Angles); i++ {
		if f.Angles[i] <= f.Angles[i-1] {
			t.Fatal("shaft flank angle should grow towards the tip")
		}
	}
	if f.Last() >= 0 {
		t.Error("pointed tooth: flank crosses the tooth center line")
	}
}

func TestFlankMirror(t *testing.T) {
	for _, f := range []Flank{shaftFlank(t, 10), hubFlank(t, 7)} {
		m := f.Mirror()
		for i := range f.Angles {
			if m.Angles[i] != -f.Angles[i] || m.Radii[i] != f.Radii[i] {
				t.Fatalf("mirror sample %d: got (%g,%g), flank (%g,%g)", i, m.Radii[i], m.Angles[i], f.Radii[i], f.Angles[i])
			}
		}
	}
}

func TestFlankBelowBaseCircle(t *testing.T) {
	defer func() {
		a := recover()
		err, ok := a.(error)
		if !ok || !errors.Is(err, involute.ErrDomain) {
			t.Errorf("expected domain error panic, got %v", a)
		}
	}()
	NewFlank(FlankParams{Base: rb, From: rb - 1, To: ra1, Points: 3})
}

func TestReplicate(t *testing.T) {
	s := Sector{Teeth: teeth}
	p := shaftFlank(t, 10).Pattern(s)
	if len(p) != teeth {
		t.Fatalf("got %d teeth", len(p))
	}
	for i := range p {
		rot := float64(i) * s.Width()
		for j, v := range p.Tooth(i) {
			base := d2.CartesianToPolar(p[0][j])
			want := d2.PolarToXY(base.R, base.Theta+rot)
			if !d2.EqualWithin(v, want, tol) {
				t.Fatalf("tooth %d point %d: got %v want %v", i, j, v, want)
			}
		}
	}
}

func TestArc(t *testing.T) {
	s := Sector{Teeth: 3}
	p := Arc(ra1, -0.1, 0.1, 5, s)
	for i, pts := range p {
		if len(pts) != 5 {
			t.Fatalf("tooth %d: got %d points", i, len(pts))
		}
		for _, v := range pts {
			if math.Abs(Circle(ra1).Evaluate(v)) > tol {
				t.Fatalf("arc point %v not on circle", v)
			}
		}
	}
	first := d2.CartesianToPolar(p[0][0])
	if math.Abs(first.Theta+0.1) > tol {
		t.Errorf("arc starts at %g, want -0.1", first.Theta)
	}
}

func TestFilletShaft(t *testing.T) {
	s := Sector{Teeth: teeth}
	flank2 := shaftFlank(t, 10).Mirror()
	p := FilletParams{Form: rFf1, Root: rf1, Radius: rho, Boundary: flank2.First(), Points: 10}
	if !p.External() {
		t.Fatal("shaft fillet should be external")
	}
	f := NewFillet(p, s)
	checkFillet(t, f, p)
	// The fillet meets the flank where the flank starts.
	flankStart := flank2.Pattern(s)[0][0]
	end := f.Side1[0][len(f.Side1[0])-1]
	if !d2.EqualWithin(end, flankStart, 1e-9) {
		t.Errorf("fillet ends at %v, flank starts at %v", end, flankStart)
	}
	if f.CenterAngle <= p.Boundary {
		t.Errorf("shaft fillet center %g should lie past the flank boundary %g", f.CenterAngle, p.Boundary)
	}
}

func TestFilletHub(t *testing.T) {
	s := Sector{Teeth: teeth}
	flank2 := hubFlank(t, 10).Mirror()
	p := FilletParams{Form: rFf2, Root: rf2, Radius: rho, Boundary: flank2.Last(), Points: 10}
	if p.External() {
		t.Fatal("hub fillet should be internal")
	}
	f := NewFillet(p, s)
	checkFillet(t, f, p)
	pts := flank2.Pattern(s)[0]
	flankEnd := pts[len(pts)-1]
	end := f.Side1[0][len(f.Side1[0])-1]
	if !d2.EqualWithin(end, flankEnd, 1e-9) {
		t.Errorf("fillet ends at %v, flank ends at %v", end, flankEnd)
	}
	if f.CenterAngle >= p.Boundary {
		t.Errorf("hub fillet center %g should lie inside the flank boundary %g", f.CenterAngle, p.Boundary)
	}
}

func checkFillet(t *testing.T, f Fillet, p FilletParams) {
	t.Helper()
	if len(f.Side1) != teeth || len(f.Side2) != teeth {
		t.Fatalf("fillet not replicated for every tooth")
	}
	for i := range f.Side1 {
		for _, side := range []Pattern{f.Side1, f.Side2} {
			pts := side[i]
			if len(pts) != p.Points {
				t.Fatalf("got %d points, want %d", len(pts), p.Points)
			}
			if d := Circle(p.Root).Evaluate(pts[0]); math.Abs(d) > tol {
				t.Errorf("tooth %d: fillet start %g off root circle", i, d)
			}
			if d := Circle(p.Form).Evaluate(pts[len(pts)-1]); math.Abs(d) > tol {
				t.Errorf("tooth %d: fillet end %g off form circle", i, d)
			}
		}
		center := d2.PolarToXY(r2.Norm(f.Center), f.CenterAngle+float64(i)*(Sector{Teeth: teeth}).Width())
		for _, v := range f.Side1[i] {
			if d := r2.Norm(r2.Sub(v, center)) - p.Radius; math.Abs(d) > tol {
				t.Errorf("tooth %d: point off fillet circle by %g", i, d)
			}
		}
	}
	// Side2 mirrors Side1 about the x axis.
	for j, v := range f.Side1[0] {
		m := f.Side2[0][j]
		if math.Abs(m.X-v.X) > tol || math.Abs(m.Y+v.Y) > tol {
			t.Fatalf("fillet side 2 point %d %v is not mirror of %v", j, m, v)
		}
	}
}

func TestFilletTooLarge(t *testing.T) {
	defer func() {
		a := recover()
		err, ok := a.(error)
		if !ok || !errors.Is(err, involute.ErrDomain) {
			t.Errorf("expected domain error panic, got %v", a)
		}
	}()
	// Fillet circle spans radii 13.90-13.92 and never reaches the form circle.
	NewFillet(FilletParams{Form: rFf1, Root: rf1, Radius: 0.01, Boundary: 0.05, Points: 4}, Sector{Teeth: teeth})
}

func TestPolygon(t *testing.T) {
	square := NewPolygon([]r2.Vec{{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: -1}})
	if d := square.Evaluate(r2.Vec{}); math.Abs(d+1) > tol {
		t.Errorf("center distance %g, want -1", d)
	}
	if d := square.Evaluate(r2.Vec{X: 3}); math.Abs(d-2) > tol {
		t.Errorf("outside distance %g, want 2", d)
	}
	if len(square.Vertices()) != 5 {
		t.Errorf("closed loop should have 5 vertices, got %d", len(square.Vertices()))
	}
	bb := square.Bounds()
	if bb.Min != (r2.Vec{X: -1, Y: -1}) || bb.Max != (r2.Vec{X: 1, Y: 1}) {
		t.Errorf("bad bounds %v", bb)
	}
}
