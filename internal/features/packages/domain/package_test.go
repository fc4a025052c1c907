package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseCarrierID verifies normalization of free-text carrier names.
func TestParseCarrierID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    CarrierID
		wantErr error
	}{
		{"UPS lowercase", "ups", CarrierUPS, nil},
		{"UPS uppercase", "UPS", CarrierUPS, nil},
		{"FedEx with spaces", "  FedEx  ", CarrierFedEx, nil},
		{"USPS", "usps", CarrierUSPS, nil},
		{"DHL", "DHL", CarrierDHL, nil},
		{"Amazon has no API", "amazon", CarrierUnknown, ErrCarrierNoPublicAPI},
		{"LaserShip has no API", "LaserShip", CarrierUnknown, ErrCarrierNoPublicAPI},
		{"Unrecognized degrades silently", "some_regional_courier", CarrierUnknown, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCarrierID(tt.input)
			assert.Equal(t, tt.want, got)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestAddress_QueryString verifies the fixed field order and empty-field skipping.
func TestAddress_QueryString(t *testing.T) {
	addr := Address{
		Street:     "100 Institute Rd",
		City:       "Worcester",
		State:      "MA",
		PostalCode: "01609",
		Country:    "US",
	}
	assert.Equal(t, "100 Institute Rd, Worcester, MA, 01609, US", addr.QueryString())

	partial := Address{City: "Worcester", Country: "US"}
	assert.Equal(t, "Worcester, US", partial.QueryString())

	assert.Equal(t, "", Address{}.QueryString())
}

// TestAddress_HasCoordinates verifies the coordinate short-circuit predicate.
func TestAddress_HasCoordinates(t *testing.T) {
	assert.True(t, Address{Latitude: 42.27, Longitude: -71.81}.HasCoordinates())
	assert.False(t, Address{Latitude: 42.27}.HasCoordinates())
	assert.False(t, Address{City: "Worcester"}.HasCoordinates())
}

// TestDimensions verifies validity and volume computation.
func TestDimensions(t *testing.T) {
	dims := Dimensions{LengthCm: 50, WidthCm: 40, HeightCm: 30}
	assert.True(t, dims.Valid())
	assert.Equal(t, 60000.0, dims.VolumeCm3())

	assert.False(t, Dimensions{LengthCm: 50, WidthCm: 0, HeightCm: 30}.Valid())
	assert.False(t, Dimensions{LengthCm: -1, WidthCm: 40, HeightCm: 30}.Valid())
}

// TestPackageInfo_Validate verifies the boundary guarantees.
func TestPackageInfo_Validate(t *testing.T) {
	pkg := &PackageInfo{TrackingNumber: "1Z999", WeightKg: 2.5, Carrier: CarrierUPS}
	require.NoError(t, pkg.Validate())

	missing := &PackageInfo{WeightKg: 2.5}
	assert.ErrorIs(t, missing.Validate(), ErrMissingTrackingNumber)

	negative := &PackageInfo{TrackingNumber: "1Z999", WeightKg: -1}
	assert.ErrorIs(t, negative.Validate(), ErrNegativeWeight)
}
