// Package generator produces synthetic points scattered around a known line.
package generator

import (
	"math/rand/v2"

	"github.com/soltixdb/linreg/internal/analytics"
)

// Defaults describe the line y = 2x + 5 with noise in (-6, 6).
const (
	DefaultSlope     = 2.0
	DefaultIntercept = 5.0
	DefaultNoise     = 12.0 // width of the uniform noise band centred on the line
)

// Generator produces points y = Slope*x + Intercept + noise for x = 1..n,
// where noise is uniform in (-Noise/2, Noise/2).
type Generator struct {
	Slope     float64
	Intercept float64
	Noise     float64

	rng *rand.Rand // nil uses the process-wide source
}

// Option configures a Generator
type Option func(*Generator)

// WithLine sets the underlying line
func WithLine(slope, intercept float64) Option {
	return func(g *Generator) {
		g.Slope = slope
		g.Intercept = intercept
	}
}

// WithNoise sets the width of the noise band
func WithNoise(width float64) Option {
	return func(g *Generator) {
		g.Noise = width
	}
}

// WithSeed makes the generated sequence reproducible
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// New creates a generator for y = 2x + 5 with noise in (-6, 6) unless overridden
func New(opts ...Option) *Generator {
	g := &Generator{
		Slope:     DefaultSlope,
		Intercept: DefaultIntercept,
		Noise:     DefaultNoise,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns n points with x = 1..n in order. n <= 0 yields an empty slice.
func (g *Generator) Generate(n int) []analytics.Point {
	if n <= 0 {
		return []analytics.Point{}
	}

	points := make([]analytics.Point, n)
	for i := 1; i <= n; i++ {
		x := float64(i)
		noise := (g.uniform() - 0.5) * g.Noise
		points[i-1] = analytics.Point{X: x, Y: g.Slope*x + g.Intercept + noise}
	}
	return points
}

func (g *Generator) uniform() float64 {
	if g.rng != nil {
		return g.rng.Float64()
	}
	return rand.Float64()
}
