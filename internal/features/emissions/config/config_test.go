package config

import (
	"testing"

	"greenboard/internal/features/emissions/domain"
	pkgdomain "greenboard/internal/features/packages/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefault_Validates verifies the built-in configuration is complete.
func TestDefault_Validates(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
}

// TestDefault_KeyFactors verifies the factors the rest of the system leans on.
func TestDefault_KeyFactors(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 0.127, cfg.Factors[domain.ModeGroundStandard])
	assert.Equal(t, 0.69, cfg.Factors[domain.ModeAirIntlExpedited])
	assert.Equal(t, 0.200, cfg.Factors[domain.ModeLastMileStandard])
	assert.Equal(t, 0.010, cfg.Factors[domain.ModeOceanStandard])
	assert.Equal(t, 0.022, cfg.Factors[domain.ModeRailStandard])
}

// TestDefault_Distances verifies the fixed fallback distances.
func TestDefault_Distances(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 1200.0, cfg.Distances.DomesticGroundKm)
	assert.Equal(t, 1500.0, cfg.Distances.DomesticAirKm)
	assert.Equal(t, 5000.0, cfg.Distances.InternationalKm)
	assert.Equal(t, 10.0, cfg.Distances.LastMileKm)
}

// TestDefault_ServiceMapsHaveDefaults verifies every carrier map carries
// its mandatory fallback entry.
func TestDefault_ServiceMapsHaveDefaults(t *testing.T) {
	cfg := Default()

	for carrier, codes := range cfg.ServiceModes {
		mode, ok := codes[DefaultModeKey]
		assert.True(t, ok, "carrier %s missing default entry", carrier)
		assert.Equal(t, domain.ModeGroundStandard, mode)
	}
}

// TestValidate_MissingFactor verifies an incomplete factor table is rejected.
func TestValidate_MissingFactor(t *testing.T) {
	cfg := Default()
	delete(cfg.Factors, domain.ModeRailStandard)

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "emission factor missing")
	assert.Contains(t, err.Error(), "rail_standard")
}

// TestValidate_NonPositiveFactor verifies zero factors are rejected.
func TestValidate_NonPositiveFactor(t *testing.T) {
	cfg := Default()
	cfg.Factors[domain.ModeOceanStandard] = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be positive")
}

// TestValidate_UnknownFactorMode verifies stray factor entries are rejected.
func TestValidate_UnknownFactorMode(t *testing.T) {
	cfg := Default()
	cfg.Factors[domain.TransportMode("hovercraft")] = 0.5

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown transport mode")
}

// TestValidate_MissingDefaultEntry verifies a carrier map without its
// fallback entry is rejected.
func TestValidate_MissingDefaultEntry(t *testing.T) {
	cfg := Default()
	delete(cfg.ServiceModes[pkgdomain.CarrierDHL], DefaultModeKey)

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing its \"default\" entry")
}

// TestValidate_BadDistances verifies non-positive distances are rejected.
func TestValidate_BadDistances(t *testing.T) {
	cfg := Default()
	cfg.Distances.LastMileKm = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default distances")
}

// TestDivisorFor verifies carrier-specific divisors override the default.
func TestDivisorFor(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 5000.0, cfg.DivisorFor(pkgdomain.CarrierUPS))

	cfg.DimensionalDivisors[pkgdomain.CarrierUSPS] = 6000
	assert.Equal(t, 6000.0, cfg.DivisorFor(pkgdomain.CarrierUSPS))
	assert.Equal(t, 5000.0, cfg.DivisorFor(pkgdomain.CarrierFedEx))
}
