// Package regression fits straight lines to point sets by least squares.
//
// Strategies implement the Regression interface and are looked up by name
// through the package registry, so callers can swap the fitting method
// without changing how they consume a FitResult.
package regression

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/soltixdb/linreg/internal/analytics"
)

// MinDataPoints is the smallest point count a line can be fitted to.
const MinDataPoints = 2

var (
	// ErrInsufficientData is returned when fewer than MinDataPoints points are supplied.
	ErrInsufficientData = errors.New("insufficient data points")
	// ErrDegenerateInput is returned when the x values have zero variance
	// or a coordinate is not a finite number.
	ErrDegenerateInput = errors.New("degenerate input")
	// ErrUndefinedGoodnessOfFit is returned when y has zero total variance
	// but the fitted line still leaves a residual, so R² has no finite value.
	ErrUndefinedGoodnessOfFit = errors.New("undefined goodness of fit")
)

// FitResult holds the parameters of a fitted line y = Slope*x + Intercept
type FitResult struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	RSquared  float64 `json:"r_squared"`
}

// String returns a human-readable form of the fitted line.
func (f FitResult) String() string {
	return fmt.Sprintf("y = %.4f*x + %.4f (R²=%.4f)", f.Slope, f.Intercept, f.RSquared)
}

// Regression is implemented by every line-fitting strategy
type Regression interface {
	// Name returns the strategy name
	Name() string
	// Compute fits a line to points. The slice is read, never modified.
	Compute(points []analytics.Point) (FitResult, error)
	// Predict evaluates the fitted line at x
	Predict(x float64, fit FitResult) float64
}

// Config holds tuning knobs shared by all strategies. Strategies ignore
// settings that do not apply to them.
type Config struct {
	ParallelThreshold int // Minimum point count before sums are split across workers (0 disables)
	Workers           int // Maximum concurrent summation workers
}

// DefaultConfig returns the default regression configuration
func DefaultConfig() Config {
	return Config{
		ParallelThreshold: 0,
		Workers:           4,
	}
}

// Factory builds a strategy from a configuration
type Factory func(cfg Config) Regression

var registry = make(map[string]Factory)

// Register adds a strategy factory to the registry
func Register(name string, factory Factory) {
	registry[name] = factory
}

// New builds the strategy registered under name
func New(name string, cfg Config) (Regression, error) {
	if factory, ok := registry[name]; ok {
		return factory(cfg), nil
	}
	return nil, fmt.Errorf("unknown regression strategy: %s", name)
}

// List returns the registered strategy names in sorted order
func List() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// predictLine is shared by every strategy so predictions stay identical
// regardless of how the parameters were obtained.
func predictLine(x float64, fit FitResult) float64 {
	return fit.Slope*x + fit.Intercept
}

// checkPoints validates the preconditions common to all strategies.
func checkPoints(points []analytics.Point) error {
	if len(points) < MinDataPoints {
		return fmt.Errorf("%w: need %d, have %d", ErrInsufficientData, MinDataPoints, len(points))
	}

	for i, p := range points {
		if !isFinite(p.X) || !isFinite(p.Y) {
			return fmt.Errorf("%w: non-finite coordinate at index %d", ErrDegenerateInput, i)
		}
	}

	// Compared exactly: a mean computed from identical values can drift by an
	// ulp, which would hide a zero spread from the sum-of-squares check.
	for _, p := range points[1:] {
		if p.X != points[0].X {
			return nil
		}
	}
	return fmt.Errorf("%w: all %d x values are %g", ErrDegenerateInput, len(points), points[0].X)
}

// constantFit returns the horizontal line through points when every y is
// identical. Compared exactly, like x in checkPoints, so the ulp drift of a
// computed mean cannot turn a perfect fit into a residual.
func constantFit(points []analytics.Point) (FitResult, bool) {
	for _, p := range points[1:] {
		if p.Y != points[0].Y {
			return FitResult{}, false
		}
	}
	return FitResult{Slope: 0, Intercept: points[0].Y, RSquared: 1}, true
}

// checkFinite reports an overflow in an intermediate or final quantity.
func checkFinite(stage string, values ...float64) error {
	for _, v := range values {
		if !isFinite(v) {
			return fmt.Errorf("%w: %s overflowed to %g", ErrDegenerateInput, stage, v)
		}
	}
	return nil
}

// goodnessOfFit turns residual and total sums of squares into R².
func goodnessOfFit(ssRes, ssTot float64) (float64, error) {
	if ssTot == 0 {
		if ssRes == 0 {
			return 1, nil
		}
		return 0, fmt.Errorf("%w: zero total variance with residual sum of squares %g", ErrUndefinedGoodnessOfFit, ssRes)
	}
	return 1 - ssRes/ssTot, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
