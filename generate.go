package spline

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/soypat/spline/form2"
	"github.com/soypat/spline/form2/must2"
	"github.com/soypat/spline/involute"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Config controls profile sampling.
type Config struct {
	// Points is the number of samples per feature, at least 2.
	// Zero selects the default of DefaultConfig.
	Points int
	// Z is the z coordinate assigned to every generated point.
	Z float64
}

// DefaultConfig returns the default sampling configuration.
func DefaultConfig() Config {
	return Config{Points: 10}
}

// Feature identifies a sampled segment of a tooth or space width outline.
type Feature int

// Profile features. Flank1 is the flank at negative polar angles, Flank2
// its mirror. A shaft tooth has a single tip arc and a root arc on each
// side; a hub space width has a tip arc on each side and a single root arc.
const (
	Flank1 Feature = iota
	Flank2
	Tip
	Tip1
	Tip2
	Fillet1
	Fillet2
	Root
	Root1
	Root2
)

func (f Feature) String() string {
	switch f {
	case Flank1:
		return "flank1"
	case Flank2:
		return "flank2"
	case Tip:
		return "tip"
	case Tip1:
		return "tip1"
	case Tip2:
		return "tip2"
	case Fillet1:
		return "fillet1"
	case Fillet2:
		return "fillet2"
	case Root:
		return "root"
	case Root1:
		return "root1"
	case Root2:
		return "root2"
	}
	return "feature(" + strconv.Itoa(int(f)) + ")"
}

// Group is the sampled points of one feature of one tooth.
type Group struct {
	Feature Feature
	Tooth   int
	Points  []r3.Vec
}

// Profile is an ordered list of point groups.
type Profile struct {
	Name   string
	Groups []Group
}

// Points returns all points of the profile in group order.
func (p Profile) Points() []r3.Vec {
	var pts []r3.Vec
	for _, g := range p.Groups {
		pts = append(pts, g.Points...)
	}
	return pts
}

// Len returns the total number of points of the profile.
func (p Profile) Len() (n int) {
	for _, g := range p.Groups {
		n += len(g.Points)
	}
	return n
}

// Features returns the feature of each group of the first tooth in order.
func (p Profile) Features() []Feature {
	var fs []Feature
	for _, g := range p.Groups {
		if g.Tooth == 0 {
			fs = append(fs, g.Feature)
		}
	}
	return fs
}

// Result is the generated geometry of a spline connection.
type Result struct {
	// Tooth and Space are a single shaft tooth and hub space width
	// centered about the x axis.
	Tooth, Space Profile
	// Shaft and Hub repeat every feature for all teeth.
	Shaft, Hub Profile
	// Measurements over and between pins.
	ShaftPins, HubPins Measurement
	FilletRadius       float64

	shaft []featurePattern
	hub   []featurePattern
}

type featurePattern struct {
	feature Feature
	pattern must2.Pattern
}

// Generate samples the tooth and space width outlines of the spline. The
// thickness and width used are the middle of their actual tolerance bands.
// Shaft and hub are generated concurrently.
func (s *Spline) Generate(cfg Config) (*Result, error) {
	if cfg.Points == 0 {
		cfg.Points = DefaultConfig().Points
	}
	if cfg.Points < 2 {
		return nil, invalid("points", strconv.Itoa(cfg.Points), "2 or more")
	}
	res := &Result{FilletRadius: s.Geometry.FilletRadius}
	var err error
	res.ShaftPins, res.HubPins, err = s.Pins()
	if err != nil {
		return nil, err
	}
	var (
		wg               sync.WaitGroup
		shaftErr, hubErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		res.shaft, shaftErr = s.shaftFeatures(cfg.Points)
	}()
	go func() {
		defer wg.Done()
		res.hub, hubErr = s.hubFeatures(cfg.Points)
	}()
	wg.Wait()
	if err := errors.Join(shaftErr, hubErr); err != nil {
		return nil, err
	}
	res.Tooth = profile("tooth", res.shaft, cfg.Z, 1)
	res.Space = profile("space", res.hub, cfg.Z, 1)
	res.Shaft = profile("shaft", res.shaft, cfg.Z, s.Geometry.Teeth)
	res.Hub = profile("hub", res.hub, cfg.Z, s.Geometry.Teeth)
	return res, nil
}

// profile lists every feature for the first n teeth before the next feature.
func profile(name string, features []featurePattern, z float64, n int) Profile {
	p := Profile{Name: name}
	for _, fp := range features {
		for i := 0; i < n; i++ {
			p.Groups = append(p.Groups, Group{
				Feature: fp.feature,
				Tooth:   i,
				Points:  lift(fp.pattern.Tooth(i), z),
			})
		}
	}
	return p
}

func (s *Spline) shaftFeatures(points int) ([]featurePattern, error) {
	g := s.Geometry
	sector := must2.Sector{Teeth: g.Teeth}
	ref, err := involute.Angle(g.BaseRadius, g.PitchRadius)
	if err != nil {
		return nil, err
	}
	flank, err := form2.Flank(must2.FlankParams{
		Base:      g.BaseRadius,
		From:      g.Shaft.Form,
		To:        g.Shaft.Tip,
		Reference: ref,
		Thickness: s.Thickness.Mid() / g.PitchRadius,
		Points:    points,
	})
	if err != nil {
		return nil, fmt.Errorf("shaft flank: %w", err)
	}
	mirror := flank.Mirror()
	tip, err := form2.Arc(g.Shaft.Tip, flank.Last(), mirror.Last(), points, sector)
	if err != nil {
		return nil, fmt.Errorf("shaft tip: %w", err)
	}
	fillet, err := form2.Fillet(must2.FilletParams{
		Form:     g.Shaft.Form,
		Root:     g.Shaft.Root,
		Radius:   g.FilletRadius,
		Boundary: mirror.First(),
		Points:   points,
	}, sector)
	if err != nil {
		return nil, fmt.Errorf("shaft fillet: %w", err)
	}
	half := sector.Width() / 2
	root1, err := form2.Arc(g.Shaft.Root, half, fillet.CenterAngle, points, sector)
	if err != nil {
		return nil, fmt.Errorf("shaft root: %w", err)
	}
	root2, err := form2.Arc(g.Shaft.Root, -half, -fillet.CenterAngle, points, sector)
	if err != nil {
		return nil, fmt.Errorf("shaft root: %w", err)
	}
	return []featurePattern{
		{Flank1, flank.Pattern(sector)},
		{Flank2, mirror.Pattern(sector)},
		{Tip, tip},
		{Fillet1, fillet.Side1},
		{Fillet2, fillet.Side2},
		{Root1, root1},
		{Root2, root2},
	}, nil
}

func (s *Spline) hubFeatures(points int) ([]featurePattern, error) {
	g := s.Geometry
	sector := must2.Sector{Teeth: g.Teeth}
	ref, err := involute.Angle(g.BaseRadius, g.PitchRadius)
	if err != nil {
		return nil, err
	}
	flank, err := form2.Flank(must2.FlankParams{
		Base:      g.BaseRadius,
		From:      g.Hub.Tip,
		To:        g.Hub.Form,
		Reference: ref,
		Thickness: s.Width.Mid() / g.PitchRadius,
		Points:    points,
	})
	if err != nil {
		return nil, fmt.Errorf("hub flank: %w", err)
	}
	mirror := flank.Mirror()
	half := sector.Width() / 2
	tip1, err := form2.Arc(g.Hub.Tip, mirror.First(), half, points, sector)
	if err != nil {
		return nil, fmt.Errorf("hub tip: %w", err)
	}
	tip2, err := form2.Arc(g.Hub.Tip, -mirror.First(), -half, points, sector)
	if err != nil {
		return nil, fmt.Errorf("hub tip: %w", err)
	}
	fillet, err := form2.Fillet(must2.FilletParams{
		Form:     g.Hub.Form,
		Root:     g.Hub.Root,
		Radius:   g.FilletRadius,
		Boundary: mirror.Last(),
		Points:   points,
	}, sector)
	if err != nil {
		return nil, fmt.Errorf("hub fillet: %w", err)
	}
	root, err := form2.Arc(g.Hub.Root, fillet.CenterAngle, -fillet.CenterAngle, points, sector)
	if err != nil {
		return nil, fmt.Errorf("hub root: %w", err)
	}
	return []featurePattern{
		{Flank1, flank.Pattern(sector)},
		{Flank2, mirror.Pattern(sector)},
		{Tip1, tip1},
		{Tip2, tip2},
		{Fillet1, fillet.Side1},
		{Fillet2, fillet.Side2},
		{Root, root},
	}, nil
}

func lift(pts []r2.Vec, z float64) []r3.Vec {
	out := make([]r3.Vec, len(pts))
	for i, p := range pts {
		out[i] = r3.Vec{X: p.X, Y: p.Y, Z: z}
	}
	return out
}
