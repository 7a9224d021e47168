package model

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuiltinBundles_Validate verifies every shipped bundle passes its
// own validation.
func TestBuiltinBundles_Validate(t *testing.T) {
	for _, name := range BuiltinNames() {
		params, err := Builtin(name)
		require.NoError(t, err)
		assert.NoError(t, params.Validate(), "bundle %s", name)
		assert.Equal(t, name, params.Name)
	}
}

// TestBuiltin_UnknownName verifies the error lists the available
// bundles.
func TestBuiltin_UnknownName(t *testing.T) {
	_, err := Builtin("paris-2030")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "london-2025")
}

// TestDefaultBundle_Exists pins the default to a real bundle.
func TestDefaultBundle_Exists(t *testing.T) {
	_, err := Builtin(DefaultBundle)
	assert.NoError(t, err)
}

// TestLondon2025_Shape spot-checks the full trained set.
func TestLondon2025_Shape(t *testing.T) {
	p, err := Builtin("london-2025")
	require.NoError(t, err)

	assert.Len(t, p.DistrictCoefs, 33)
	assert.Len(t, p.PropertyTypeCoefs, 8)
	assert.Zero(t, p.DistrictCoefs["Barking and Dagenham"], "baseline borough offset")
	assert.True(t, p.LogFloorArea)
	require.NotNil(t, p.SaleYear)
	assert.Equal(t, 2025, p.SaleYear.TargetYear)
	assert.InDelta(t, 0.3807, p.ResidualLogStd, 1e-9)
}

// TestKnownBoroughs_SortedAndComplete verifies the accessor exposes
// every table key exactly once, sorted.
func TestKnownBoroughs_SortedAndComplete(t *testing.T) {
	p, err := Builtin("london-2025")
	require.NoError(t, err)

	boroughs := p.KnownBoroughs()
	assert.Len(t, boroughs, len(p.DistrictCoefs))
	assert.True(t, sort.StringsAreSorted(boroughs))
	assert.Contains(t, boroughs, "Hackney")
}

const sampleYAML = `
name: test-bundle
currency: GBP
intercept: 12.0915
district_coefficients:
  Barking and Dagenham: 0.0
  Hackney: 0.5452
property_type_coefficients:
  Flat: -0.1121
new_build_coefficient: 0.2695
floor_area_coefficient: 0.2029
room_coefficient: 0.0439
log_floor_area: false
floor_area_scaler:
  mean: 86.99
  std: 53.56
rooms_scaler:
  mean: 3.94
  std: 1.79
residual_log_std: 0.3807
`

// TestParse_YAMLBundle verifies a deployment-supplied bundle decodes
// into the same structure the built-ins use.
func TestParse_YAMLBundle(t *testing.T) {
	p, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "test-bundle", p.Name)
	assert.InDelta(t, 12.0915, p.Intercept, 1e-9)
	assert.InDelta(t, 0.5452, p.DistrictCoefs["Hackney"], 1e-9)
	assert.InDelta(t, -0.1121, p.PropertyTypeCoefs["Flat"], 1e-9)
	assert.False(t, p.LogFloorArea)
	assert.Nil(t, p.SaleYear)
	assert.InDelta(t, 53.56, p.FloorArea.Std, 1e-9)
}

// TestParse_RejectsInvalidBundle verifies validation runs at load time.
func TestParse_RejectsInvalidBundle(t *testing.T) {
	_, err := Parse([]byte(`
name: broken
district_coefficients: {Hackney: 0.5}
property_type_coefficients: {Flat: 0.1}
floor_area_scaler: {mean: 86.99, std: 0}
rooms_scaler: {mean: 3.94, std: 1.79}
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "floor area std")
}

// TestParse_RejectsMalformedYAML covers the decode failure path.
func TestParse_RejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("intercept: [not a number"))
	assert.Error(t, err)
}

// TestLoadFile reads a bundle from disk.
func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bundle.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	p, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "test-bundle", p.Name)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

// TestValidate_EmptyTables verifies empty coefficient tables are
// rejected.
func TestValidate_EmptyTables(t *testing.T) {
	p := &Params{
		Name:      "empty",
		FloorArea: Scaler{Mean: 0, Std: 1},
		Rooms:     Scaler{Mean: 0, Std: 1},
	}
	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "district coefficient table")
}

// TestValidate_NegativeResidual verifies a negative residual std is
// rejected while zero (band disabled) is allowed.
func TestValidate_NegativeResidual(t *testing.T) {
	p, err := Builtin("london-linear")
	require.NoError(t, err)

	clone := *p
	clone.ResidualLogStd = 0
	assert.NoError(t, clone.Validate())

	clone.ResidualLogStd = -0.1
	assert.Error(t, clone.Validate())
}
