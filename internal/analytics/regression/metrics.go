package regression

import (
	"math"

	"github.com/soltixdb/linreg/internal/analytics"
)

// Metrics describes how well a fitted line tracks the points it was fitted to
type Metrics struct {
	MAE        float64   `json:"mae"`  // Mean Absolute Error
	RMSE       float64   `json:"rmse"` // Root Mean Squared Error
	Residuals  []float64 `json:"residuals,omitempty"`
	DataPoints int       `json:"data_points"`
}

// Evaluate computes residuals (observed - predicted) and error summaries for fit over points
func Evaluate(points []analytics.Point, fit FitResult) Metrics {
	m := Metrics{
		Residuals:  make([]float64, len(points)),
		DataPoints: len(points),
	}
	if len(points) == 0 {
		return m
	}

	absSum := 0.0
	sqSum := 0.0
	for i, p := range points {
		e := p.Y - predictLine(p.X, fit)
		m.Residuals[i] = e
		absSum += math.Abs(e)
		sqSum += e * e
	}

	n := float64(len(points))
	m.MAE = absSum / n
	m.RMSE = math.Sqrt(sqSum / n)
	return m
}
