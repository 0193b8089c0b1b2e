package spline

import (
	"math"

	"github.com/soypat/spline/involute"
)

// Measurement is a dimension over (shaft) or between (hub) two measuring pins.
type Measurement struct {
	Value       float64 // M_e or M_i [mm]
	PinDiameter float64 // D_M [mm]
}

// Pins returns the measurement over pins of a part with z teeth (negative
// for a hub), module m, profile shift coefficient x and pressure angle
// alpha. The pin diameter is the ideal diameter touching the flanks at
// the pitch circle rounded to the nearest 0.5mm, ties to even.
func Pins(m float64, z int, x, alpha float64) (Measurement, error) {
	if z == 0 || m <= 0 {
		return Measurement{}, &involute.DomainError{Op: "Pins", Value: float64(z), Reason: "need a positive module and a non zero tooth count"}
	}
	zf := float64(z)
	cosa, tana := math.Cos(alpha), math.Tan(alpha)
	inva := involute.Inv(alpha)
	db := zf * m * cosa
	// Half space width angle at the base circle.
	eta := pi/(2*zf) - inva - 2*x*tana/zf

	alphaP := math.Acos(zf * m * cosa / ((zf + 2*x) * m))
	if math.IsNaN(alphaP) {
		return Measurement{}, &involute.DomainError{Op: "Pins", Value: x, Reason: "profile shift puts the pin contact inside the base circle"}
	}
	phi := math.Tan(alphaP) + eta
	ideal := db * (involute.Inv(phi) + eta)
	dm := math.RoundToEven(2*ideal) / 2
	if dm <= 0 {
		return Measurement{}, &involute.DomainError{Op: "Pins", Value: ideal, Reason: "ideal pin diameter rounds to zero"}
	}

	invPhi := dm/db - pi/(2*zf) + inva + 2*x*tana/zf
	phi, err := involute.InvInv(invPhi)
	if err != nil {
		return Measurement{}, err
	}
	// Pin center circle diameter.
	mc := math.Abs(db) / math.Cos(phi)
	if z%2 != 0 {
		mc *= math.Cos(pi / (2 * math.Abs(zf)))
	}
	if z > 0 {
		mc += dm
	} else {
		mc -= dm
	}
	return Measurement{Value: math.Abs(mc), PinDiameter: dm}, nil
}

// Pins returns the measurements over pins of shaft and hub.
func (s *Spline) Pins() (shaft, hub Measurement, err error) {
	g := s.Geometry
	shaft, err = Pins(g.Module, g.Teeth, g.X1, g.Alpha)
	if err != nil {
		return shaft, hub, err
	}
	hub, err = Pins(g.Module, -g.Teeth, g.X2, g.Alpha)
	return shaft, hub, err
}
