// Package analytics provides the shared point types used by the regression
// and generator packages.
package analytics

// Point represents a single (x, y) observation.
type Point struct {
	X float64
	Y float64
}

// Points represents an ordered collection of observations
type Points []Point

// Xs extracts just the x coordinates
func (ps Points) Xs() []float64 {
	xs := make([]float64, len(ps))
	for i, p := range ps {
		xs[i] = p.X
	}
	return xs
}

// Ys extracts just the y coordinates
func (ps Points) Ys() []float64 {
	ys := make([]float64, len(ps))
	for i, p := range ps {
		ys[i] = p.Y
	}
	return ys
}

// Len returns the number of points
func (ps Points) Len() int {
	return len(ps)
}

// MeanX calculates the mean of all x coordinates
func (ps Points) MeanX() float64 {
	if len(ps) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range ps {
		sum += p.X
	}
	return sum / float64(len(ps))
}

// MeanY calculates the mean of all y coordinates
func (ps Points) MeanY() float64 {
	if len(ps) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range ps {
		sum += p.Y
	}
	return sum / float64(len(ps))
}
