// Package pricemath provides log-price regression math utilities.
package pricemath

import "math"

// Standardize centers x on a training-set mean and scales by its
// standard deviation.
func Standardize(x, mean, std float64) float64 {
	return (x - mean) / std
}

// Log1pStandardize applies a log1p transform before standardizing.
// Used for right-skewed features such as floor area.
func Log1pStandardize(x, mean, std float64) float64 {
	return Standardize(math.Log1p(x), mean, std)
}

// Band converts a log-price and a residual standard deviation into a
// one-sigma price interval. The interval is symmetric in log space and
// therefore asymmetric in price space; that asymmetry is intentional.
func Band(logPrice, residualLogStd float64) (low, high float64) {
	return math.Exp(logPrice - residualLogStd), math.Exp(logPrice + residualLogStd)
}

// Multiplier maps an additive log-space term to its multiplicative
// effect on the final price.
func Multiplier(term float64) float64 {
	return math.Exp(term)
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
