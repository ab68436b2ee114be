package regression

import (
	"math"
	"testing"

	"github.com/soltixdb/linreg/internal/analytics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every registered strategy must honour the same input contract.
func TestStrategies_SharedContract(t *testing.T) {
	// y alternates around zero so every squared deviation underflows to zero,
	// while the fitted line leaves two residuals just large enough to survive
	// squaring: total variance is zero but the residual is not.
	const eps = 1.4e-162
	underflowY := []analytics.Point{{X: 2, Y: eps}, {X: 0, Y: -eps}, {X: -2, Y: eps}, {X: 4, Y: -eps}}

	tests := []struct {
		name    string
		points  []analytics.Point
		want    FitResult
		wantErr error
	}{
		{name: "no points", points: nil, wantErr: ErrInsufficientData},
		{name: "single point", points: []analytics.Point{{X: 1, Y: 1}}, wantErr: ErrInsufficientData},
		{name: "identical x", points: []analytics.Point{{X: 3, Y: 1}, {X: 3, Y: 2}}, wantErr: ErrDegenerateInput},
		{name: "NaN x", points: []analytics.Point{{X: math.NaN(), Y: 1}, {X: 2, Y: 2}}, wantErr: ErrDegenerateInput},
		{name: "negative infinite y", points: []analytics.Point{{X: 1, Y: 1}, {X: 2, Y: math.Inf(-1)}}, wantErr: ErrDegenerateInput},
		{name: "x overflow", points: []analytics.Point{{X: 1e308, Y: 1}, {X: 1.5e308, Y: 2}}, wantErr: ErrDegenerateInput},
		{name: "zero total variance with residual", points: underflowY, wantErr: ErrUndefinedGoodnessOfFit},
		{
			name:   "constant y 0.1",
			points: []analytics.Point{{X: 1, Y: 0.1}, {X: 2, Y: 0.1}, {X: 3, Y: 0.1}},
			want:   FitResult{Slope: 0, Intercept: 0.1, RSquared: 1},
		},
		{
			name:   "constant y 7.7",
			points: []analytics.Point{{X: 1, Y: 7.7}, {X: 5, Y: 7.7}},
			want:   FitResult{Slope: 0, Intercept: 7.7, RSquared: 1},
		},
		{
			name:   "exact line",
			points: []analytics.Point{{X: 1, Y: 7}, {X: 2, Y: 9}, {X: 3, Y: 11}, {X: 4, Y: 13}},
			want:   FitResult{Slope: 2, Intercept: 5, RSquared: 1},
		},
	}

	for _, name := range List() {
		r, err := New(name, DefaultConfig())
		require.NoError(t, err)

		for _, tt := range tests {
			t.Run(name+"/"+tt.name, func(t *testing.T) {
				fit, err := r.Compute(tt.points)
				if tt.wantErr != nil {
					require.Error(t, err)
					assert.ErrorIs(t, err, tt.wantErr)
					assert.Equal(t, FitResult{}, fit)
					return
				}

				require.NoError(t, err)
				assert.InDelta(t, tt.want.Slope, fit.Slope, tolerance)
				assert.InDelta(t, tt.want.Intercept, fit.Intercept, tolerance)
				assert.InDelta(t, tt.want.RSquared, fit.RSquared, tolerance)
			})
		}
	}
}
