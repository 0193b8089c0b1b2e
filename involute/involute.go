// Package involute implements the involute function of circle involute
// tooth flanks and its inverse.
package involute

import (
	"errors"
	"fmt"
	"math"
)

// ErrDomain is matched by errors caused by evaluating geometry outside
// the domain where it is defined.
var ErrDomain = errors.New("geometry domain error")

// DomainError describes an evaluation outside of a function's domain.
type DomainError struct {
	Op     string
	Value  float64
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s(%g): %s", e.Op, e.Value, e.Reason)
}

func (e *DomainError) Unwrap() error { return ErrDomain }

// newtonSteps is the fixed number of refinement steps of InvInv.
const newtonSteps = 5

// Inv returns the involute function of the angle theta, tan(theta)-theta.
// It is strictly increasing on (0, pi/2).
func Inv(theta float64) float64 {
	return math.Tan(theta) - theta
}

// PressureAngle returns the profile angle at radius r of an involute
// generated from a base circle of radius rb.
func PressureAngle(rb, r float64) (float64, error) {
	if !(r >= rb) || rb <= 0 {
		return 0, &DomainError{Op: "PressureAngle", Value: r, Reason: fmt.Sprintf("radius below base circle radius %g", rb)}
	}
	return math.Acos(rb / r), nil
}

// Angle returns the polar angle inv(arccos(rb/r)) of the point at radius r on an
// involute which starts on the base circle of radius rb at polar angle zero.
func Angle(rb, r float64) (float64, error) {
	alpha, err := PressureAngle(rb, r)
	if err != nil {
		return 0, err
	}
	return Inv(alpha), nil
}

// InvInv returns theta such that Inv(theta) == x. The initial guess
// 1.441*cbrt(x) - 0.374*x is refined with a fixed count of Newton steps
// and no convergence check. The result is accurate to machine precision
// for x up to about 0.6 (theta < 1 rad); larger arguments may diverge.
func InvInv(x float64) (float64, error) {
	if !(x > 0) || math.IsInf(x, 1) {
		return 0, &DomainError{Op: "InvInv", Value: x, Reason: "involute function value must be positive"}
	}
	theta := 1.441*math.Cbrt(x) - 0.374*x
	for i := 0; i < newtonSteps; i++ {
		tan := math.Tan(theta)
		theta += (x - Inv(theta)) / (tan * tan)
	}
	return theta, nil
}
