// Package report runs a regression over a point set and renders the
// text report printed by the linreg tool.
package report

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/soltixdb/linreg/internal/analytics"
	"github.com/soltixdb/linreg/internal/analytics/regression"
	"github.com/soltixdb/linreg/internal/logging"
)

// DefaultQueries are the x values predicted when none are configured
var DefaultQueries = []float64{0, 10, 25}

// Application fits points with a regression strategy and reports the result
type Application struct {
	regression regression.Regression
}

// New creates an application around the given strategy
func New(reg regression.Regression) *Application {
	return &Application{regression: reg}
}

// Run computes the fit once, predicts y for each query and writes the report to w.
// Nothing is written when the fit fails.
func (a *Application) Run(ctx context.Context, points []analytics.Point, queries []float64, w io.Writer) (regression.FitResult, error) {
	logger := logging.FromContext(ctx).With("strategy", a.regression.Name(), "points", len(points))

	fit, err := a.regression.Compute(points)
	if err != nil {
		logger.Error("Regression failed", "error", err)
		return regression.FitResult{}, fmt.Errorf("compute regression: %w", err)
	}

	metrics := regression.Evaluate(points, fit)
	logger.Info("Regression computed",
		"slope", fit.Slope,
		"intercept", fit.Intercept,
		"r_squared", fit.RSquared,
		"mae", metrics.MAE,
		"rmse", metrics.RMSE,
	)

	if len(queries) == 0 {
		queries = DefaultQueries
	}

	if err := a.write(w, fit, queries); err != nil {
		return fit, fmt.Errorf("write report: %w", err)
	}

	logger.Debug("Report written", "queries", len(queries))
	return fit, nil
}

func (a *Application) write(w io.Writer, fit regression.FitResult, queries []float64) error {
	ew := &errWriter{w: w}

	ew.printf("=== LINEAR REGRESSION ===\n")
	ew.printf("Slope: %.4f\n", fit.Slope)
	ew.printf("Intercept: %.4f\n", fit.Intercept)
	ew.printf("R²: %.4f\n", fit.RSquared)

	ew.printf("\n=== PREDICTIONS ===\n")
	for _, x := range queries {
		y := a.regression.Predict(x, fit)
		ew.printf("x = %s -> y = %.2f\n", strconv.FormatFloat(x, 'f', -1, 64), y)
	}

	return ew.err
}

// errWriter keeps the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
