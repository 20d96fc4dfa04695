package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optistock/optistock-analytics-service/internal/apperrors"
)

func TestQuantileForServiceLevel(t *testing.T) {
	tests := []struct {
		name string
		p    float64
		want float64
	}{
		{name: "median", p: 0.5, want: 0},
		{name: "95th percentile", p: 0.95, want: 1.6449},
		{name: "97.5th percentile", p: 0.975, want: 1.9600},
		{name: "80th percentile", p: 0.80, want: 0.8416},
		{name: "below median", p: 0.25, want: -0.6745},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z, err := QuantileForServiceLevel(tt.p)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, z, 1e-4)
		})
	}
}

func TestQuantileForServiceLevel_Domain(t *testing.T) {
	for _, p := range []float64{0, 1, -0.1, 1.2} {
		_, err := QuantileForServiceLevel(p)
		require.Error(t, err, "p=%g", p)
		assert.True(t, apperrors.IsDomain(err), "p=%g", p)
	}
}

func TestSafetyStock(t *testing.T) {
	// z(0.95) * 0.10*1000 * sqrt(4) = 1.6449 * 100 * 2
	ss, err := SafetyStock(1000, 4, 0.95)
	require.NoError(t, err)
	assert.InDelta(t, 328.97, ss, 0.01)
}

func TestSafetyStock_NeverNegative(t *testing.T) {
	// Below the median service level the z-score is negative; no buffer is
	// held rather than a negative one.
	ss, err := SafetyStock(1000, 4, 0.3)
	require.NoError(t, err)
	assert.Equal(t, 0.0, ss)
}

func TestSafetyStock_MonotonicInServiceLevel(t *testing.T) {
	prev := -1.0
	for sl := 0.80; sl < 0.995; sl += 0.01 {
		ss, err := SafetyStock(500, 2, sl)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, ss, prev, "service level %g", sl)
		prev = ss
	}
}

func TestSafetyStock_Errors(t *testing.T) {
	_, err := SafetyStock(1000, -1, 0.95)
	require.Error(t, err)
	assert.True(t, apperrors.IsDomain(err))

	_, err = SafetyStock(1000, 2, 1.5)
	require.Error(t, err)
	assert.True(t, apperrors.IsDomain(err))
}

func TestHoldingCost(t *testing.T) {
	assert.InDelta(t, 100*10*0.2, HoldingCost(100, 10, 0.2), 1e-9)
	assert.Equal(t, 0.0, HoldingCost(0, 10, 0.2))
}

func TestSafetyStock_ZeroLeadTime(t *testing.T) {
	ss, err := SafetyStock(1000, 0, 0.95)
	require.NoError(t, err)
	assert.True(t, math.Abs(ss) < 1e-12)
}
