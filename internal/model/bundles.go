package model

import (
	"fmt"
	"sort"
)

// DefaultBundle is the bundle used when the caller does not pick one.
const DefaultBundle = "london-2025"

// builtins holds the parameter bundles shipped with the binary. Each is
// an independently trained fit over the same transaction data; they
// differ in feature transforms, not in prediction semantics.
var builtins = map[string]*Params{
	"london-2025":   london2025,
	"london-linear": londonLinear,
}

// Builtin returns a named built-in bundle.
func Builtin(name string) (*Params, error) {
	p, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown model bundle %q (available: %v)", name, BuiltinNames())
	}
	return p, nil
}

// BuiltinNames lists the built-in bundle names, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// london2025 is the full fit: 1.1M London transactions matched to EPC
// records, log1p floor area, sale year projected to 2025. Baseline
// categories are Barking and Dagenham (district) and an implicit
// property-type baseline absorbed by the intercept.
var london2025 = &Params{
	Name:      "london-2025",
	Currency:  "GBP",
	Intercept: 11.4917,
	DistrictCoefs: map[string]float64{
		"Barking and Dagenham":   0.0,
		"Barnet":                 0.4975,
		"Bexley":                 -0.1113,
		"Brent":                  0.6007,
		"Bromley":                0.1366,
		"Camden":                 0.8878,
		"City of London":         0.5691,
		"City of Westminster":    0.9886,
		"Croydon":                0.1507,
		"Ealing":                 0.6350,
		"Enfield":                0.3132,
		"Greenwich":              0.0358,
		"Hackney":                0.5290,
		"Hammersmith and Fulham": 0.8440,
		"Haringey":               0.4812,
		"Harrow":                 0.5155,
		"Havering":               0.0895,
		"Hillingdon":             0.5468,
		"Hounslow":               0.7711,
		"Islington":              0.7516,
		"Kensington and Chelsea": 1.2278,
		"Kingston upon Thames":   0.3462,
		"Lambeth":                0.4489,
		"Lewisham":               0.1146,
		"Merton":                 0.4242,
		"Newham":                 0.0961,
		"Redbridge":              0.1090,
		"Richmond upon Thames":   0.7332,
		"Southwark":              0.3791,
		"Sutton":                 0.5576,
		"Tower Hamlets":          0.4349,
		"Waltham Forest":         0.1827,
		"Wandsworth":             0.5601,
	},
	PropertyTypeCoefs: map[string]float64{
		"Detached Bungalow":      0.1111,
		"Detached House":         0.1808,
		"Flat":                   0.0464,
		"House":                  -0.0928,
		"Maisonette":             -0.0150,
		"Semi-Detached Bungalow": 0.0638,
		"Semi-Detached House":    0.0430,
		"Terraced House":         0.0289,
	},
	NewBuildCoef:  0.2060,
	FloorAreaCoef: 0.3229,
	RoomCoef:      0.0038,
	LogFloorArea:  true,
	FloorArea: Scaler{
		Mean: 4.386511603767719,
		Std:  0.47257771853330777,
	},
	Rooms: Scaler{
		Mean: 3.9727626069998228,
		Std:  1.7406400213620896,
	},
	SaleYear: &SaleYearTerm{
		Coefficient: 0.6003,
		Mean:        2008.7952931442833,
		Std:         8.688165520246507,
		TargetYear:  2025,
	},
	ResidualLogStd: 0.3807,
}

// londonLinear is an earlier fit over raw (unlogged) floor area with no
// sale-year projection. Kept for deployments that want estimates in the
// training-period price frame.
var londonLinear = &Params{
	Name:      "london-linear",
	Currency:  "GBP",
	Intercept: 12.0915,
	DistrictCoefs: map[string]float64{
		"Barking and Dagenham":   0.0,
		"Barnet":                 0.4571,
		"Bexley":                 -0.0897,
		"Brent":                  0.5489,
		"Bromley":                0.1321,
		"Camden":                 0.8667,
		"City of London":         0.5520,
		"City of Westminster":    0.9583,
		"Croydon":                0.1405,
		"Ealing":                 0.5872,
		"Enfield":                0.2910,
		"Greenwich":              0.0412,
		"Hackney":                0.5452,
		"Hammersmith and Fulham": 0.8109,
		"Haringey":               0.4680,
		"Harrow":                 0.4788,
		"Havering":               0.0814,
		"Hillingdon":             0.5012,
		"Hounslow":               0.7204,
		"Islington":              0.7290,
		"Kensington and Chelsea": 1.1902,
		"Kingston upon Thames":   0.3301,
		"Lambeth":                0.4307,
		"Lewisham":               0.1028,
		"Merton":                 0.4011,
		"Newham":                 0.0883,
		"Redbridge":              0.0976,
		"Richmond upon Thames":   0.7018,
		"Southwark":              0.3644,
		"Sutton":                 0.5213,
		"Tower Hamlets":          0.4190,
		"Waltham Forest":         0.1702,
		"Wandsworth":             0.5377,
	},
	PropertyTypeCoefs: map[string]float64{
		"Detached Bungalow":      0.0644,
		"Detached House":         0.1463,
		"Flat":                   -0.1121,
		"House":                  -0.1337,
		"Maisonette":             -0.0415,
		"Semi-Detached Bungalow": 0.0212,
		"Semi-Detached House":    0.0147,
		"Terraced House":         -0.0053,
	},
	NewBuildCoef:  0.2695,
	FloorAreaCoef: 0.2029,
	RoomCoef:      0.0439,
	LogFloorArea:  false,
	FloorArea: Scaler{
		Mean: 86.99,
		Std:  53.56,
	},
	Rooms: Scaler{
		Mean: 3.94,
		Std:  1.79,
	},
	ResidualLogStd: 0.4102,
}
