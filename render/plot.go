package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"os"

	"github.com/nfnt/resize"
	"github.com/soypat/spline"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Circle is a dashed reference circle drawn behind a profile.
type Circle struct {
	Label  string
	Radius float64
}

// ShaftCircles returns the pitch, root, tip and form circles of the shaft.
func ShaftCircles(g spline.Geometry) []Circle {
	return []Circle{
		{Label: fmt.Sprintf("pitch circle d=%.2f", g.PitchDiameter()), Radius: g.PitchRadius},
		{Label: fmt.Sprintf("root circle df1=%.2f", 2*g.Shaft.Root), Radius: g.Shaft.Root},
		{Label: fmt.Sprintf("tip circle da1=%.2f", 2*g.Shaft.Tip), Radius: g.Shaft.Tip},
		{Label: fmt.Sprintf("form circle dFf1=%.2f", 2*g.Shaft.Form), Radius: g.Shaft.Form},
	}
}

// HubCircles returns the pitch, root, tip and form circles of the hub.
func HubCircles(g spline.Geometry) []Circle {
	return []Circle{
		{Label: fmt.Sprintf("pitch circle d=%.2f", g.PitchDiameter()), Radius: g.PitchRadius},
		{Label: fmt.Sprintf("root circle df2=%.2f", 2*g.Hub.Root), Radius: g.Hub.Root},
		{Label: fmt.Sprintf("tip circle da2=%.2f", 2*g.Hub.Tip), Radius: g.Hub.Tip},
		{Label: fmt.Sprintf("form circle dFf2=%.2f", 2*g.Hub.Form), Radius: g.Hub.Form},
	}
}

const circleSamples = 361

// Plot draws every group of the profile as a line. Reference circles are
// clipped to the range of the profile. Both axes span the same length so
// the outline is not distorted.
func Plot(title string, p spline.Profile, circles ...Circle) (*plot.Plot, error) {
	if len(p.Groups) == 0 {
		return nil, errors.New("empty profile")
	}
	plt := plot.New()
	plt.Title.Text = title
	plt.X.Label.Text = "x [mm]"
	plt.Y.Label.Text = "y [mm]"
	plt.Legend.Top = false
	plt.Legend.Left = false

	pts := p.Points()
	xmin, xmax := pts[0].X, pts[0].X
	ymin, ymax := pts[0].Y, pts[0].Y
	for _, v := range pts[1:] {
		xmin, xmax = math.Min(xmin, v.X), math.Max(xmax, v.X)
		ymin, ymax = math.Min(ymin, v.Y), math.Max(ymax, v.Y)
	}
	for i, c := range circles {
		xys := make(plotter.XYs, 0, circleSamples)
		for j := 0; j < circleSamples; j++ {
			a := 2 * math.Pi * float64(j) / (circleSamples - 1)
			x, y := c.Radius*math.Cos(a), c.Radius*math.Sin(a)
			if x < xmin || x > xmax || y < ymin || y > ymax {
				continue
			}
			xys = append(xys, plotter.XY{X: x, Y: y})
		}
		if len(xys) < 2 {
			continue
		}
		l, err := plotter.NewLine(xys)
		if err != nil {
			return nil, err
		}
		l.LineStyle.Color = plotutil.Color(i + 1)
		l.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		plt.Add(l)
		plt.Legend.Add(c.Label, l)
	}
	for _, g := range p.Groups {
		xys := make(plotter.XYs, len(g.Points))
		for i, v := range g.Points {
			xys[i] = plotter.XY{X: v.X, Y: v.Y}
		}
		l, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("%v of tooth %d: %w", g.Feature, g.Tooth, err)
		}
		l.LineStyle.Color = color.Black
		plt.Add(l)
	}

	span := math.Max(xmax-xmin, ymax-ymin) / 2
	cx, cy := (xmin+xmax)/2, (ymin+ymax)/2
	plt.X.Min, plt.X.Max = cx-span, cx+span
	plt.Y.Min, plt.Y.Max = cy-span, cy+span
	return plt, nil
}

// Image draws the plot onto a square image of size by size points.
func Image(p *plot.Plot, size vg.Length) image.Image {
	c := vgimg.New(size, size)
	p.Draw(draw.New(c))
	return c.Image()
}

// CreatePNG saves the plot as a square PNG image of size by size points.
func CreatePNG(path string, p *plot.Plot, size vg.Length) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	c := vgimg.New(size, size)
	p.Draw(draw.New(c))
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(file); err != nil {
		return err
	}
	return file.Close()
}

// Thumbnail draws the plot and scales it down to fit in a px by px square.
func Thumbnail(p *plot.Plot, size vg.Length, px uint) image.Image {
	return resize.Thumbnail(px, px, Image(p, size), resize.Lanczos3)
}
