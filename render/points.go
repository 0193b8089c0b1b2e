// Package render writes generated spline profiles to point files, DXF
// drawings and plots.
package render

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/soypat/spline"
	"gonum.org/v1/gonum/spatial/r3"
)

// CreatePoints writes the points of a profile to a comma separated point file.
func CreatePoints(path string, p spline.Profile) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	if err := WritePoints(file, p.Points()); err != nil {
		return err
	}
	return file.Close()
}

// WritePoints writes one "x,y,z" row per point in %.18e notation.
func WritePoints(w io.Writer, pts []r3.Vec) error {
	if len(pts) == 0 {
		return errors.New("empty point slice")
	}
	bw := bufio.NewWriter(w)
	for _, p := range pts {
		_, err := fmt.Fprintf(bw, "%.18e,%.18e,%.18e\n", p.X, p.Y, p.Z)
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadPoints reads a point file written by WritePoints.
func ReadPoints(r io.Reader) ([]r3.Vec, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3
	cr.ReuseRecord = true
	var pts []r3.Vec
	for {
		record, err := cr.Read()
		if err == io.EOF {
			return pts, nil
		}
		if err != nil {
			return nil, err
		}
		var v [3]float64
		for i, field := range record {
			v[i], err = strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("point %d: %w", len(pts)+1, err)
			}
		}
		pts = append(pts, r3.Vec{X: v[0], Y: v[1], Z: v[2]})
	}
}
