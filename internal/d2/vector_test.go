package d2

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestDedup(t *testing.T) {
	s := Set{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1e-12}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0}}
	got := s.Dedup(1e-9)
	if len(got) != 4 {
		t.Fatalf("got %d points, want 4: %v", len(got), got)
	}
	if got[1] != (r2.Vec{X: 1}) || got[3] != (r2.Vec{Y: 1}) {
		t.Errorf("unexpected dedup result %v", got)
	}
}

func TestPolarRoundTrip(t *testing.T) {
	for _, p := range []Pol{{1, 0}, {2, math.Pi / 3}, {14.9, -0.2}} {
		got := CartesianToPolar(p.PolarToCartesian())
		if math.Abs(got.R-p.R) > 1e-12 || math.Abs(got.Theta-p.Theta) > 1e-12 {
			t.Errorf("polar round trip of %v gave %v", p, got)
		}
	}
}

func TestBounds(t *testing.T) {
	bb := Set{{X: 1, Y: -2}, {X: -3, Y: 4}, {X: 0, Y: 0}}.Bounds()
	if bb.Min != (r2.Vec{X: -3, Y: -2}) || bb.Max != (r2.Vec{X: 1, Y: 4}) {
		t.Errorf("bad bounds %v", bb)
	}
}
