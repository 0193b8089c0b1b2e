package render

import (
	"errors"

	sdfxrender "github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	"github.com/soypat/spline"
)

// CreateDXF writes the profile to a DXF drawing. Every group is drawn as
// an open polyline of line segments; the z coordinate is dropped.
// Coordinates are written in millimetres. The drawing carries no unit
// header, so set millimetres when importing it.
func CreateDXF(path string, p spline.Profile) error {
	if len(p.Groups) == 0 {
		return errors.New("empty profile")
	}
	d := sdfxrender.NewDXF(path)
	for _, g := range p.Groups {
		for i := 1; i < len(g.Points); i++ {
			a, b := g.Points[i-1], g.Points[i]
			d.Line(&sdf.Line2{{X: a.X, Y: a.Y}, {X: b.X, Y: b.Y}})
		}
	}
	return d.Save()
}
