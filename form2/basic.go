// Package form2 returns the 2D feature patterns of involute splines,
// converting the panics of package must2 into errors.
package form2

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/soypat/spline/form2/must2"
	"gonum.org/v1/gonum/spatial/r2"
)

type shapeErr struct {
	panicObj interface{}
	stack    string
}

func (s *shapeErr) Error() string {
	return fmt.Sprintf("%s", s.panicObj)
}

// Unwrap returns the panic value when it was an error so that typed
// errors raised in must2 are matched by errors.Is and errors.As.
func (s *shapeErr) Unwrap() error {
	err, _ := s.panicObj.(error)
	return err
}

// Stack returns the stack trace of the recovered panic.
func Stack(err error) string {
	var serr *shapeErr
	if errors.As(err, &serr) {
		return serr.stack
	}
	return ""
}

func recovered(a interface{}) error {
	if a == nil {
		return nil
	}
	return &shapeErr{
		panicObj: a,
		stack:    string(debug.Stack()),
	}
}

// Flank samples one involute flank, see must2.NewFlank.
func Flank(p must2.FlankParams) (f must2.Flank, err error) {
	defer func() { err = recovered(recover()) }()
	return must2.NewFlank(p), err
}

// Arc samples a circular arc for every tooth, see must2.Arc.
func Arc(r, from, to float64, points int, s must2.Sector) (p must2.Pattern, err error) {
	defer func() { err = recovered(recover()) }()
	return must2.Arc(r, from, to, points, s), err
}

// Fillet solves the root fillets of a spline, see must2.NewFillet.
func Fillet(p must2.FilletParams, s must2.Sector) (f must2.Fillet, err error) {
	defer func() { err = recovered(recover()) }()
	return must2.NewFillet(p, s), err
}

// Polygon returns the signed distance function of a closed outline.
func Polygon(vertex []r2.Vec) (s *must2.Polygon, err error) {
	defer func() { err = recovered(recover()) }()
	return must2.NewPolygon(vertex), err
}
