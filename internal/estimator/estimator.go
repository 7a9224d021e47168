// Package estimator predicts a property's sale price from a trained
// log-price regression bundle.
//
// The prediction is a pure function of its inputs and the immutable
// parameter bundle: no state, no side effects, no randomness. Any
// number of goroutines may share one Estimator.
package estimator

import (
	"math"

	"homeprice/internal/model"
	"homeprice/pkg/pricemath"
)

// Input is one property to value. Borough and PropertyType should come
// from KnownBoroughs / KnownPropertyTypes; values outside those sets
// fall back to the baseline category rather than failing. Bounds
// checking against sane physical ranges (15-500 m², 1-10 rooms) is the
// caller's job.
type Input struct {
	Borough      string  `json:"borough"`
	PropertyType string  `json:"property_type"`
	FloorArea    float64 `json:"floor_area"`
	Rooms        float64 `json:"rooms"`
	NewBuild     bool    `json:"new_build"`
}

// Estimate is the point price plus the optional one-sigma band. The
// band is symmetric in log space, so Low sits proportionally closer to
// Price than High does; that asymmetry is intentional.
type Estimate struct {
	Price    float64 `json:"price"`
	Low      float64 `json:"low,omitempty"`
	High     float64 `json:"high,omitempty"`
	HasRange bool    `json:"has_range"`
	LogPrice float64 `json:"log_price"`
}

// Factor is one multiplicative contribution in a price breakdown.
type Factor struct {
	Name       string  `json:"name"`
	Term       float64 `json:"term"`
	Multiplier float64 `json:"multiplier"`
}

// Breakdown decomposes an estimate into a base price times one factor
// per regression term. Multiplying BasePrice by every factor reproduces
// Price up to floating-point rounding.
type Breakdown struct {
	BasePrice float64  `json:"base_price"`
	Factors   []Factor `json:"factors"`
	Price     float64  `json:"price"`
}

// Estimator evaluates the regression for one parameter bundle.
type Estimator struct {
	params *model.Params
}

// New builds an estimator over a validated bundle.
func New(params *model.Params) (*Estimator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Estimator{params: params}, nil
}

// ModelName returns the bundle name.
func (e *Estimator) ModelName() string { return e.params.Name }

// Currency returns the bundle's currency code.
func (e *Estimator) Currency() string { return e.params.Currency }

// KnownBoroughs lists the boroughs the model was trained on, sorted.
func (e *Estimator) KnownBoroughs() []string { return e.params.KnownBoroughs() }

// KnownPropertyTypes lists the trained property types, sorted.
func (e *Estimator) KnownPropertyTypes() []string { return e.params.KnownPropertyTypes() }

// Estimate predicts the sale price for one property.
func (e *Estimator) Estimate(in Input) (*Estimate, error) {
	terms, err := e.terms(in)
	if err != nil {
		return nil, err
	}

	logPrice := e.params.Intercept
	for _, t := range terms {
		logPrice += t.value
	}
	if !pricemath.IsFinite(logPrice) {
		return nil, newNonFiniteResultError(logPrice)
	}

	est := &Estimate{
		Price:    math.Exp(logPrice),
		LogPrice: logPrice,
	}
	if e.params.ResidualLogStd > 0 {
		est.Low, est.High = pricemath.Band(logPrice, e.params.ResidualLogStd)
		est.HasRange = true
	}
	return est, nil
}

// Breakdown explains an estimate as base price times named multipliers.
// It evaluates the same terms as Estimate, so the product of the
// factors equals the point estimate.
func (e *Estimator) Breakdown(in Input) (*Breakdown, error) {
	terms, err := e.terms(in)
	if err != nil {
		return nil, err
	}

	b := &Breakdown{
		BasePrice: math.Exp(e.params.Intercept),
		Factors:   make([]Factor, 0, len(terms)),
	}
	logPrice := e.params.Intercept
	for _, t := range terms {
		logPrice += t.value
		b.Factors = append(b.Factors, Factor{
			Name:       t.name,
			Term:       t.value,
			Multiplier: pricemath.Multiplier(t.value),
		})
	}
	if !pricemath.IsFinite(logPrice) {
		return nil, newNonFiniteResultError(logPrice)
	}
	b.Price = math.Exp(logPrice)
	return b, nil
}

type term struct {
	name  string
	value float64
}

// terms computes the additive log-price contributions in a fixed order.
// Floor area must be strictly positive even under the log1p transform,
// where ln(1+0) would be defined but a zero-area property is not.
func (e *Estimator) terms(in Input) ([]term, error) {
	if !pricemath.IsFinite(in.FloorArea) {
		return nil, newNonFiniteInputError("floor_area", in.FloorArea)
	}
	if in.FloorArea <= 0 {
		return nil, newInvalidFloorAreaError(in.FloorArea)
	}
	if !pricemath.IsFinite(in.Rooms) {
		return nil, newNonFiniteInputError("rooms", in.Rooms)
	}

	p := e.params

	newBuild := 0.0
	if in.NewBuild {
		newBuild = p.NewBuildCoef
	}

	terms := []term{
		{name: "borough", value: p.DistrictOffset(in.Borough)},
		{name: "property_type", value: p.PropertyTypeOffset(in.PropertyType)},
		{name: "new_build", value: newBuild},
	}

	if sy := p.SaleYear; sy != nil {
		scaled := pricemath.Standardize(float64(sy.TargetYear), sy.Mean, sy.Std)
		terms = append(terms, term{name: "sale_year", value: sy.Coefficient * scaled})
	}

	var scaledArea float64
	if p.LogFloorArea {
		scaledArea = pricemath.Log1pStandardize(in.FloorArea, p.FloorArea.Mean, p.FloorArea.Std)
	} else {
		scaledArea = pricemath.Standardize(in.FloorArea, p.FloorArea.Mean, p.FloorArea.Std)
	}
	terms = append(terms,
		term{name: "floor_area", value: p.FloorAreaCoef * scaledArea},
		term{name: "rooms", value: p.RoomCoef * pricemath.Standardize(in.Rooms, p.Rooms.Mean, p.Rooms.Std)},
	)
	return terms, nil
}
