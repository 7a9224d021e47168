// Package model defines the trained regression parameter bundle.
//
// A bundle is everything the estimator needs at prediction time: the
// intercept, categorical coefficient tables, continuous-feature weights
// and the standardization statistics captured when the model was fitted.
// Bundles are immutable once constructed and safe to share across
// goroutines.
package model

import (
	"fmt"
	"sort"
)

// SaleYearTerm projects the estimate to a fixed valuation year. The
// training data spans historical sales, so without this term the model
// prices in the frame of the mean training year.
type SaleYearTerm struct {
	Coefficient float64 `yaml:"coefficient"`
	Mean        float64 `yaml:"mean"`
	Std         float64 `yaml:"std"`
	TargetYear  int     `yaml:"target_year"`
}

// Scaler holds the (mean, std) pair of a standardized continuous feature.
type Scaler struct {
	Mean float64 `yaml:"mean"`
	Std  float64 `yaml:"std"`
}

// Params is a single trained coefficient set. District and property-type
// coefficients are log-price offsets relative to an implicit baseline
// category (offset 0, not necessarily stored).
type Params struct {
	Name     string `yaml:"name"`
	Currency string `yaml:"currency"`

	Intercept float64 `yaml:"intercept"`

	DistrictCoefs     map[string]float64 `yaml:"district_coefficients"`
	PropertyTypeCoefs map[string]float64 `yaml:"property_type_coefficients"`

	NewBuildCoef  float64 `yaml:"new_build_coefficient"`
	FloorAreaCoef float64 `yaml:"floor_area_coefficient"`
	RoomCoef      float64 `yaml:"room_coefficient"`

	// LogFloorArea selects a log1p transform of floor area before
	// standardization. Per-deployment choice, not universal.
	LogFloorArea bool   `yaml:"log_floor_area"`
	FloorArea    Scaler `yaml:"floor_area_scaler"`
	Rooms        Scaler `yaml:"rooms_scaler"`

	SaleYear *SaleYearTerm `yaml:"sale_year,omitempty"`

	// ResidualLogStd is the fitted model's RMSE in log-price space.
	// Zero disables the confidence band.
	ResidualLogStd float64 `yaml:"residual_log_std,omitempty"`
}

// Validate checks that the bundle is usable for prediction.
func (p *Params) Validate() error {
	if len(p.DistrictCoefs) == 0 {
		return fmt.Errorf("model %q: district coefficient table is empty", p.Name)
	}
	if len(p.PropertyTypeCoefs) == 0 {
		return fmt.Errorf("model %q: property type coefficient table is empty", p.Name)
	}
	if p.FloorArea.Std <= 0 {
		return fmt.Errorf("model %q: floor area std must be positive, got %v", p.Name, p.FloorArea.Std)
	}
	if p.Rooms.Std <= 0 {
		return fmt.Errorf("model %q: rooms std must be positive, got %v", p.Name, p.Rooms.Std)
	}
	if p.SaleYear != nil && p.SaleYear.Std <= 0 {
		return fmt.Errorf("model %q: sale year std must be positive, got %v", p.Name, p.SaleYear.Std)
	}
	if p.ResidualLogStd < 0 {
		return fmt.Errorf("model %q: residual log std must not be negative, got %v", p.Name, p.ResidualLogStd)
	}
	return nil
}

// DistrictOffset returns the log-price offset for a borough. Unknown
// boroughs map to the baseline offset of zero; this leniency is part of
// the model contract, not an error.
func (p *Params) DistrictOffset(borough string) float64 {
	return p.DistrictCoefs[borough]
}

// PropertyTypeOffset returns the log-price offset for a property type,
// with the same baseline fallback as DistrictOffset.
func (p *Params) PropertyTypeOffset(propertyType string) float64 {
	return p.PropertyTypeCoefs[propertyType]
}

// KnownBoroughs lists the boroughs in the coefficient table, sorted.
func (p *Params) KnownBoroughs() []string {
	return sortedKeys(p.DistrictCoefs)
}

// KnownPropertyTypes lists the property types in the coefficient table,
// sorted.
func (p *Params) KnownPropertyTypes() []string {
	return sortedKeys(p.PropertyTypeCoefs)
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
