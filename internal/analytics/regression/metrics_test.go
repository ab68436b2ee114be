package regression

import (
	"math"
	"testing"

	"github.com/soltixdb/linreg/internal/analytics"
	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	points := []analytics.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 5}}
	fit := FitResult{Slope: 2, Intercept: -5.0 / 3.0}

	m := Evaluate(points, fit)

	assert.Equal(t, 3, m.DataPoints)
	assert.Len(t, m.Residuals, 3)
	assert.InDelta(t, 2.0/3.0, m.Residuals[0], tolerance)
	assert.InDelta(t, -4.0/3.0, m.Residuals[1], tolerance)
	assert.InDelta(t, 2.0/3.0, m.Residuals[2], tolerance)
	assert.InDelta(t, 8.0/9.0, m.MAE, tolerance)
	assert.InDelta(t, math.Sqrt(8.0/9.0), m.RMSE, tolerance)
}

func TestEvaluate_PerfectFit(t *testing.T) {
	m := Evaluate(linePoints(10, 2, 5), FitResult{Slope: 2, Intercept: 5})
	assert.Equal(t, 0.0, m.MAE)
	assert.Equal(t, 0.0, m.RMSE)
}

func TestEvaluate_Empty(t *testing.T) {
	m := Evaluate(nil, FitResult{Slope: 1})
	assert.Equal(t, 0, m.DataPoints)
	assert.Empty(t, m.Residuals)
	assert.Equal(t, 0.0, m.MAE)
}
