package spline

import (
	"github.com/soypat/spline/form2"
	"github.com/soypat/spline/form2/must2"
	"github.com/soypat/spline/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// contourStep is a feature of a closed outline and its traversal direction.
type contourStep struct {
	feature Feature
	reverse bool
}

// Counter clockwise traversal of one shaft pitch, starting on the root
// circle at the negative pitch boundary.
var shaftOutline = []contourStep{
	{Root2, false},
	{Fillet2, false},
	{Flank1, false},
	{Tip, false},
	{Flank2, true},
	{Fillet1, true},
	{Root1, true},
}

// Counter clockwise traversal of one hub pitch, starting on the tip
// circle at the negative pitch boundary.
var hubOutline = []contourStep{
	{Tip2, true},
	{Flank1, false},
	{Fillet2, true},
	{Root, true},
	{Fillet1, false},
	{Flank2, true},
	{Tip1, false},
}

// ShaftContour returns the closed counter clockwise outline of the shaft
// cross section with duplicate junction points removed.
func (r *Result) ShaftContour() []r2.Vec {
	return contour(r.shaft, shaftOutline)
}

// HubContour returns the closed counter clockwise outline of the hub bore.
// Points enclosed by it lie outside the hub material.
func (r *Result) HubContour() []r2.Vec {
	return contour(r.hub, hubOutline)
}

// ShaftRegion returns the signed distance function of the shaft cross section.
func (r *Result) ShaftRegion() (SDF2, error) {
	return region(r.ShaftContour())
}

// HubRegion returns the signed distance function of the hub bore.
func (r *Result) HubRegion() (SDF2, error) {
	return region(r.HubContour())
}

func region(outline []r2.Vec) (SDF2, error) {
	poly, err := form2.Polygon(outline)
	if err != nil {
		return nil, err
	}
	return poly, nil
}

func contour(features []featurePattern, steps []contourStep) []r2.Vec {
	byFeature := make(map[Feature]must2.Pattern, len(features))
	for _, fp := range features {
		byFeature[fp.feature] = fp.pattern
	}
	var teeth int
	if len(features) > 0 {
		teeth = len(features[0].pattern)
	}
	var pts d2.Set
	for i := 0; i < teeth; i++ {
		for _, step := range steps {
			seg := d2.Set(byFeature[step.feature].Tooth(i))
			if step.reverse {
				seg = seg.Reverse()
			}
			pts = append(pts, seg...)
		}
	}
	return pts.Dedup(tolerance)
}
