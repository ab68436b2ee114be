package regression

import (
	"github.com/soltixdb/linreg/internal/analytics"
	"gonum.org/v1/gonum/stat"
)

// Gonum fits lines with gonum's stat package. It follows the same input and
// error contract as OLS.
type Gonum struct{}

// NewGonum creates a new gonum-backed strategy
func NewGonum(_ Config) *Gonum {
	return &Gonum{}
}

func init() {
	Register("gonum", func(cfg Config) Regression { return NewGonum(cfg) })
}

// Name returns the strategy name
func (r *Gonum) Name() string {
	return "gonum"
}

// Compute fits a line to points
func (r *Gonum) Compute(points []analytics.Point) (FitResult, error) {
	if err := checkPoints(points); err != nil {
		return FitResult{}, err
	}
	if fit, ok := constantFit(points); ok {
		return fit, nil
	}

	ps := analytics.Points(points)
	xs, ys := ps.Xs(), ps.Ys()

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	if err := checkFinite("line parameters", slope, intercept); err != nil {
		return FitResult{}, err
	}

	var rSquared float64
	if stat.Variance(ys, nil) == 0 {
		ssRes := 0.0
		for i := range xs {
			e := ys[i] - (slope*xs[i] + intercept)
			ssRes += e * e
		}
		var err error
		if rSquared, err = goodnessOfFit(ssRes, 0); err != nil {
			return FitResult{}, err
		}
	} else {
		rSquared = stat.RSquared(xs, ys, nil, intercept, slope)
		if err := checkFinite("goodness of fit", rSquared); err != nil {
			return FitResult{}, err
		}
	}

	return FitResult{
		Slope:     slope,
		Intercept: intercept,
		RSquared:  rSquared,
	}, nil
}

// Predict evaluates the fitted line at x
func (r *Gonum) Predict(x float64, fit FitResult) float64 {
	return predictLine(x, fit)
}
