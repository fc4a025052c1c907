package service

import (
	"testing"

	"greenboard/internal/features/emissions/config"
	"greenboard/internal/features/emissions/domain"
	pkgdomain "greenboard/internal/features/packages/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeightResolver_DeclaredOnly(t *testing.T) {
	resolver := NewWeightResolver(config.Default())

	weight, dimensional, err := resolver.Resolve(4.5, nil, pkgdomain.CarrierUPS)

	require.NoError(t, err)
	assert.Equal(t, 4.5, weight)
	assert.False(t, dimensional)
}

func TestWeightResolver_VolumetricWins(t *testing.T) {
	resolver := NewWeightResolver(config.Default())

	// 50*40*30 = 60000 cm3 / 5000 = 12 kg, above the declared 2 kg.
	weight, dimensional, err := resolver.Resolve(2,
		&pkgdomain.Dimensions{LengthCm: 50, WidthCm: 40, HeightCm: 30},
		pkgdomain.CarrierUPS,
	)

	require.NoError(t, err)
	assert.InDelta(t, 12.0, weight, 1e-9)
	assert.True(t, dimensional)
}

func TestWeightResolver_DeclaredWinsOverVolumetric(t *testing.T) {
	resolver := NewWeightResolver(config.Default())

	// 10*10*10 = 1000 cm3 / 5000 = 0.2 kg, below the declared 5 kg.
	weight, dimensional, err := resolver.Resolve(5,
		&pkgdomain.Dimensions{LengthCm: 10, WidthCm: 10, HeightCm: 10},
		pkgdomain.CarrierUPS,
	)

	require.NoError(t, err)
	assert.Equal(t, 5.0, weight)
	assert.False(t, dimensional)
}

func TestWeightResolver_EqualWeightsNotDimensional(t *testing.T) {
	resolver := NewWeightResolver(config.Default())

	// Volumetric exactly equals declared; strictly-greater rule keeps declared.
	weight, dimensional, err := resolver.Resolve(0.2,
		&pkgdomain.Dimensions{LengthCm: 10, WidthCm: 10, HeightCm: 10},
		pkgdomain.CarrierUPS,
	)

	require.NoError(t, err)
	assert.Equal(t, 0.2, weight)
	assert.False(t, dimensional)
}

func TestWeightResolver_MissingWeight(t *testing.T) {
	resolver := NewWeightResolver(config.Default())

	// No declared weight and nothing to derive one from.
	_, _, err := resolver.Resolve(0, nil, pkgdomain.CarrierUPS)

	assert.ErrorIs(t, err, domain.ErrMissingWeight)
}

func TestWeightResolver_ZeroDeclaredWithDimensions(t *testing.T) {
	resolver := NewWeightResolver(config.Default())

	// Dimensions alone are enough; the volumetric weight stands in.
	weight, dimensional, err := resolver.Resolve(0,
		&pkgdomain.Dimensions{LengthCm: 50, WidthCm: 40, HeightCm: 30},
		pkgdomain.CarrierUPS,
	)

	require.NoError(t, err)
	assert.InDelta(t, 12.0, weight, 1e-9)
	assert.True(t, dimensional)
}

func TestWeightResolver_NegativeDeclaredWeight(t *testing.T) {
	resolver := NewWeightResolver(config.Default())

	_, _, err := resolver.Resolve(-1, nil, pkgdomain.CarrierUPS)

	assert.ErrorIs(t, err, domain.ErrInvalidWeight)
}

func TestWeightResolver_InvalidDimensions(t *testing.T) {
	resolver := NewWeightResolver(config.Default())

	_, _, err := resolver.Resolve(2,
		&pkgdomain.Dimensions{LengthCm: 50, WidthCm: 0, HeightCm: 30},
		pkgdomain.CarrierUPS,
	)

	assert.ErrorIs(t, err, domain.ErrInvalidDimensions)
}

func TestWeightResolver_CarrierDivisorOverride(t *testing.T) {
	cfg := config.Default()
	cfg.DimensionalDivisors[pkgdomain.CarrierFedEx] = 6000

	resolver := NewWeightResolver(cfg)

	weight, dimensional, err := resolver.Resolve(1,
		&pkgdomain.Dimensions{LengthCm: 50, WidthCm: 40, HeightCm: 30},
		pkgdomain.CarrierFedEx,
	)

	require.NoError(t, err)
	assert.InDelta(t, 10.0, weight, 1e-9)
	assert.True(t, dimensional)
}
