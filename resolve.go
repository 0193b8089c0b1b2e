package spline

import (
	"math"
	"strconv"

	"github.com/soypat/spline/table"
)

// Radii holds the characteristic radii of one spline part [mm].
type Radii struct {
	Tip  float64 // tip circle, r_a
	Root float64 // root circle, r_f
	Form float64 // form circle, r_Ff, where the involute flank ends
}

// Geometry is the macro geometry of a spline connection derived from a
// designation. Hub quantities are those of a gear with -z teeth and a
// profile shift of -x.
type Geometry struct {
	Module float64
	Teeth  int
	// Alpha is the pressure angle at the reference circle.
	Alpha float64
	// Pitch is the circular pitch m*pi.
	Pitch float64
	// X1 and X2 are the profile shift coefficients of shaft and hub.
	X1, X2 float64

	Addendum         float64 // h_aP, equal to the profile shift x1*m
	Dedendum         float64 // h_fP
	ToothHeight      float64 // h_P
	BottomClearance  float64 // c_P
	ProfileClearance float64 // c_FP
	FormClearance    float64 // c_F
	FilletRadius     float64 // rho_F

	PitchRadius float64 // r = m*z/2
	BaseRadius  float64 // r_b = r*cos(alpha)
	Shaft, Hub  Radii

	// Column is the deviation table column selected by reference diameter and module.
	Column int
}

// Diameter helpers.
func (g Geometry) PitchDiameter() float64 { return 2 * g.PitchRadius }
func (g Geometry) BaseDiameter() float64  { return 2 * g.BaseRadius }

// Spline is a resolved designation.
type Spline struct {
	Designation Designation
	Geometry    Geometry
	// Thickness bounds the shaft tooth thickness and Width the hub
	// space width at the pitch circle.
	Thickness, Width Bounds
}

// Resolve validates a designation against the standard tables and computes
// its macro geometry and tolerance bounds.
func Resolve(d Designation) (*Spline, error) {
	if d.Diameter != math.Trunc(d.Diameter) || math.IsInf(d.Diameter, 0) {
		return nil, invalid("reference diameter", strconv.FormatFloat(d.Diameter, 'g', -1, 64), "whole number")
	}
	if d.Teeth < 1 {
		return nil, invalid("teeth", strconv.Itoa(d.Teeth), "positive whole number")
	}
	if !d.Machining.valid() {
		return nil, invalid("machining method", d.Machining.String(), validMachining)
	}
	if !d.Fillet.valid() {
		return nil, invalid("fillet method", d.Fillet.String(), validFillet)
	}
	mb, err := table.ModuleBucketOf(d.Module)
	if err != nil {
		return nil, invalid("module", strconv.FormatFloat(d.Module, 'g', -1, 64), table.ModuleRanges())
	}
	db, err := table.DiameterBucketOf(d.Diameter)
	if err != nil {
		return nil, lookupFailed("reference diameter", err)
	}
	cF, err := table.FormClearance(db, mb)
	if err != nil {
		return nil, lookupFailed("form clearance", err)
	}
	col := table.Column(db, mb)
	shaftDev, err := table.Deviation(d.Shaft.Deviation, db, mb)
	if err != nil {
		return nil, lookupFailed("shaft deviation", err)
	}
	hubDev, err := table.Deviation(d.Hub.Deviation, db, mb)
	if err != nil {
		return nil, lookupFailed("hub deviation", err)
	}
	shaftAct, shaftEff, err := table.ToleranceBand(d.Shaft.Grade, col)
	if err != nil {
		return nil, lookupFailed("shaft tolerance grade", err)
	}
	hubAct, hubEff, err := table.ToleranceBand(d.Hub.Grade, col)
	if err != nil {
		return nil, lookupFailed("hub tolerance grade", err)
	}

	g := macroGeometry(d, cF)
	g.Column = col
	s1 := g.Pitch/2 + 2*g.X1*d.Module*math.Tan(g.Alpha)
	return &Spline{
		Designation: d,
		Geometry:    g,
		Thickness:   toothThickness(s1, shaftDev, shaftAct, shaftEff),
		Width:       spaceWidth(s1, hubDev, hubAct, hubEff),
	}, nil
}

func macroGeometry(d Designation, cF float64) Geometry {
	m, z := d.Module, float64(d.Teeth)
	dedendum, clearance := d.Machining.Coefficients()
	g := Geometry{
		Module: m,
		Teeth:  d.Teeth,
		Alpha:  PressureAngle,
		Pitch:  m * pi,
		X1:     (d.Diameter/m - z - shiftOffset) / 2,
	}
	g.X2 = -g.X1
	g.Addendum = g.X1 * m
	g.Dedendum = dedendum * m
	g.ToothHeight = g.Addendum + g.Dedendum
	g.BottomClearance = g.Dedendum - g.Addendum
	g.ProfileClearance = clearance * m
	g.FormClearance = cF
	g.FilletRadius = d.Fillet.Coefficient() * m
	g.PitchRadius = m * z / 2
	g.BaseRadius = g.PitchRadius * math.Cos(g.Alpha)

	g.Shaft.Tip, g.Shaft.Root = partRadii(m, g.Dedendum, z, g.X1)
	g.Hub.Tip, g.Hub.Root = partRadii(m, g.Dedendum, -z, g.X2)
	// The form circle of each part clears the tip circle of its mate.
	g.Shaft.Form = g.Hub.Tip - cF
	g.Hub.Form = g.Shaft.Tip + cF
	return g
}

// partRadii returns tip and root radius of a part with z teeth (negative
// for internal teeth) and profile shift coefficient x.
func partRadii(m, dedendum, z, x float64) (tip, root float64) {
	tip = math.Abs(m*(z+2*x+tipFactor)) / 2
	root = math.Abs(m*z+2*x*m-2*dedendum) / 2
	return tip, root
}
