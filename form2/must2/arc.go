package must2

// Arc samples a circular arc of radius r from polar angle from to polar
// angle to and repeats it for every tooth of s.
func Arc(r, from, to float64, points int, s Sector) Pattern {
	if r <= 0 {
		panic("arc radius must be positive")
	}
	angles := Span(from, to, points)
	radii := make([]float64, points)
	for i := range radii {
		radii[i] = r
	}
	return Replicate(radii, angles, s)
}

