package pricemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandardize(t *testing.T) {
	assert.Equal(t, 0.0, Standardize(86.99, 86.99, 53.56))
	assert.InEpsilon(t, -0.22386856, Standardize(75, 86.99, 53.56), 1e-6)
	assert.InEpsilon(t, 1.0, Standardize(10, 5, 5), 1e-12)
}

func TestLog1pStandardize(t *testing.T) {
	// ln(1+75) = 4.33073...
	want := (math.Log1p(75) - 4.3865) / 0.4726
	assert.InEpsilon(t, want, Log1pStandardize(75, 4.3865, 0.4726), 1e-12)
}

// TestBand verifies ordering and the intentional price-space asymmetry
// of a log-symmetric interval.
func TestBand(t *testing.T) {
	logPrice := 12.48
	low, high := Band(logPrice, 0.3807)
	price := math.Exp(logPrice)

	assert.Less(t, low, price)
	assert.Greater(t, high, price)
	assert.Greater(t, high-price, price-low)

	// Multiplicative symmetry holds instead.
	assert.InEpsilon(t, price/low, high/price, 1e-12)
}

func TestBand_ZeroResidualCollapses(t *testing.T) {
	low, high := Band(10, 0)
	assert.Equal(t, low, high)
}

func TestMultiplier(t *testing.T) {
	assert.Equal(t, 1.0, Multiplier(0))
	assert.InEpsilon(t, math.Exp(0.2695), Multiplier(0.2695), 1e-12)
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(0))
	assert.True(t, IsFinite(-1e300))
	assert.False(t, IsFinite(math.NaN()))
	assert.False(t, IsFinite(math.Inf(1)))
	assert.False(t, IsFinite(math.Inf(-1)))
}
