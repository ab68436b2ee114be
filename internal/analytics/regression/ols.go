package regression

import (
	"fmt"

	"github.com/soltixdb/linreg/internal/analytics"
	"golang.org/x/sync/errgroup"
)

// OLS implements ordinary least squares using centered sums. Centering on the
// means before multiplying keeps cancellation error low when x is far from zero.
type OLS struct {
	parallelThreshold int
	workers           int
}

// NewOLS creates a new least-squares strategy
func NewOLS(cfg Config) *OLS {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	return &OLS{
		parallelThreshold: cfg.ParallelThreshold,
		workers:           workers,
	}
}

func init() {
	Register("ols", func(cfg Config) Regression { return NewOLS(cfg) })
}

// Name returns the strategy name
func (r *OLS) Name() string {
	return "ols"
}

// Compute fits a line to points
func (r *OLS) Compute(points []analytics.Point) (FitResult, error) {
	if err := checkPoints(points); err != nil {
		return FitResult{}, err
	}
	if fit, ok := constantFit(points); ok {
		return fit, nil
	}

	n := float64(len(points))

	// Pass 1: means
	means, err := r.sum(points, "coordinate sums", func(p analytics.Point) sums {
		return sums{p.X, p.Y, 0}
	})
	if err != nil {
		return FitResult{}, err
	}
	meanX := means[0] / n
	meanY := means[1] / n

	// Pass 2: centered cross-sum, x sum of squares and total y sum of squares
	centered, err := r.sum(points, "centered sums", func(p analytics.Point) sums {
		dx := p.X - meanX
		dy := p.Y - meanY
		return sums{dx * dy, dx * dx, dy * dy}
	})
	if err != nil {
		return FitResult{}, err
	}
	sxy, sxx, ssTot := centered[0], centered[1], centered[2]

	if sxx == 0 {
		return FitResult{}, fmt.Errorf("%w: x variance is zero", ErrDegenerateInput)
	}

	slope := sxy / sxx
	intercept := meanY - slope*meanX
	if err := checkFinite("line parameters", slope, intercept); err != nil {
		return FitResult{}, err
	}

	// Pass 3: residual sum of squares, needs the fitted line from pass 2
	residual, err := r.sum(points, "residual sum of squares", func(p analytics.Point) sums {
		e := p.Y - (slope*p.X + intercept)
		return sums{e * e, 0, 0}
	})
	if err != nil {
		return FitResult{}, err
	}

	rSquared, err := goodnessOfFit(residual[0], ssTot)
	if err != nil {
		return FitResult{}, err
	}

	return FitResult{
		Slope:     slope,
		Intercept: intercept,
		RSquared:  rSquared,
	}, nil
}

// Predict evaluates the fitted line at x
func (r *OLS) Predict(x float64, fit FitResult) float64 {
	return predictLine(x, fit)
}

// sums carries up to three running totals through a reduction pass.
type sums [3]float64

func (s sums) add(o sums) sums {
	return sums{s[0] + o[0], s[1] + o[1], s[2] + o[2]}
}

// sum reduces points with term and fails with ErrDegenerateInput when a total
// overflows. Inputs at or above the parallel threshold are split into
// contiguous chunks reduced concurrently, then combined in chunk order so
// results do not depend on goroutine scheduling.
func (r *OLS) sum(points []analytics.Point, stage string, term func(analytics.Point) sums) (sums, error) {
	if r.parallelThreshold <= 0 || len(points) < r.parallelThreshold || r.workers < 2 {
		total := sumRange(points, term)
		return total, checkFinite(stage, total[:]...)
	}

	chunkSize := (len(points) + r.workers - 1) / r.workers
	partials := make([]sums, 0, r.workers)
	for start := 0; start < len(points); start += chunkSize {
		partials = append(partials, sums{})
	}

	var eg errgroup.Group
	eg.SetLimit(r.workers)
	for i := range partials {
		start := i * chunkSize
		end := min(start+chunkSize, len(points))
		eg.Go(func() error {
			partials[i] = sumRange(points[start:end], term)
			return checkFinite(stage, partials[i][:]...)
		})
	}
	if err := eg.Wait(); err != nil {
		return sums{}, err
	}

	var total sums
	for _, p := range partials {
		total = total.add(p)
	}
	return total, checkFinite(stage, total[:]...)
}

func sumRange(points []analytics.Point, term func(analytics.Point) sums) sums {
	var total sums
	for _, p := range points {
		total = total.add(term(p))
	}
	return total
}
