package service

import (
	"context"
	"errors"
	"testing"

	"greenboard/internal/features/packages/domain"
	"greenboard/internal/features/packages/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCarrierProvider is a mock implementation of CarrierProvider for testing.
type mockCarrierProvider struct {
	carrier     domain.CarrierID
	token       string
	authErr     error
	fetchErr    error
	parseErr    error
	parsed      *domain.PackageInfo
	gotCreds    ports.Credentials
	gotTracking string
}

// Authenticate implements CarrierProvider.
func (m *mockCarrierProvider) Authenticate(_ context.Context, creds ports.Credentials) (string, error) {
	m.gotCreds = creds
	if m.authErr != nil {
		return "", m.authErr
	}
	return m.token, nil
}

// FetchTracking implements CarrierProvider.
func (m *mockCarrierProvider) FetchTracking(_ context.Context, token, trackingNumber string) ([]byte, error) {
	m.gotTracking = trackingNumber
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	return []byte(`{}`), nil
}

// Parse implements CarrierProvider.
func (m *mockCarrierProvider) Parse(_ []byte) (*domain.PackageInfo, error) {
	if m.parseErr != nil {
		return nil, m.parseErr
	}
	return m.parsed, nil
}

// SupportsCarrier implements CarrierProvider.
func (m *mockCarrierProvider) SupportsCarrier(carrier domain.CarrierID) bool {
	return carrier == m.carrier
}

// TestPackageService_GetPackage_Success verifies the full pipeline and
// credential routing.
func TestPackageService_GetPackage_Success(t *testing.T) {
	provider := &mockCarrierProvider{
		carrier: domain.CarrierUPS,
		token:   "token",
		parsed:  &domain.PackageInfo{TrackingNumber: "1Z999", WeightKg: 5, Carrier: domain.CarrierUPS},
	}

	creds := map[domain.CarrierID]ports.Credentials{
		domain.CarrierUPS: {ClientID: "id", ClientSecret: "secret"},
	}

	svc := NewPackageService([]ports.CarrierProvider{provider}, creds)

	info, err := svc.GetPackage(context.Background(), domain.CarrierUPS, "1Z999", nil)
	require.NoError(t, err)
	assert.Equal(t, "1Z999", info.TrackingNumber)
	assert.Equal(t, "id", provider.gotCreds.ClientID)
	assert.Equal(t, "1Z999", provider.gotTracking)
	assert.Nil(t, info.Dimensions)
}

// TestPackageService_GetPackage_AppendsDimensions verifies caller-supplied
// dimensions are attached after parsing.
func TestPackageService_GetPackage_AppendsDimensions(t *testing.T) {
	provider := &mockCarrierProvider{
		carrier: domain.CarrierUPS,
		token:   "token",
		parsed:  &domain.PackageInfo{TrackingNumber: "1Z999", WeightKg: 2, Carrier: domain.CarrierUPS},
	}

	svc := NewPackageService([]ports.CarrierProvider{provider}, nil)

	dims := &domain.Dimensions{LengthCm: 50, WidthCm: 40, HeightCm: 30}
	info, err := svc.GetPackage(context.Background(), domain.CarrierUPS, "1Z999", dims)

	require.NoError(t, err)
	require.NotNil(t, info.Dimensions)
	assert.Equal(t, 50.0, info.Dimensions.LengthCm)
}

// TestPackageService_GetPackage_CarrierNotSupported verifies routing failure.
func TestPackageService_GetPackage_CarrierNotSupported(t *testing.T) {
	provider := &mockCarrierProvider{carrier: domain.CarrierUPS}
	svc := NewPackageService([]ports.CarrierProvider{provider}, nil)

	info, err := svc.GetPackage(context.Background(), domain.CarrierFedEx, "794600000000", nil)

	assert.Nil(t, info)
	assert.ErrorIs(t, err, ErrCarrierNotSupported)
}

// TestPackageService_GetPackage_AuthError verifies authentication error wrapping.
func TestPackageService_GetPackage_AuthError(t *testing.T) {
	provider := &mockCarrierProvider{
		carrier: domain.CarrierUPS,
		authErr: errors.New("bad credentials"),
	}
	svc := NewPackageService([]ports.CarrierProvider{provider}, nil)

	_, err := svc.GetPackage(context.Background(), domain.CarrierUPS, "1Z999", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to authenticate")
}

// TestPackageService_GetPackage_FetchError verifies fetch error wrapping.
func TestPackageService_GetPackage_FetchError(t *testing.T) {
	provider := &mockCarrierProvider{
		carrier:  domain.CarrierUPS,
		fetchErr: errors.New("upstream down"),
	}
	svc := NewPackageService([]ports.CarrierProvider{provider}, nil)

	_, err := svc.GetPackage(context.Background(), domain.CarrierUPS, "1Z999", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch tracking data")
}

// TestPackageService_GetPackage_ParseError verifies parse error wrapping.
func TestPackageService_GetPackage_ParseError(t *testing.T) {
	provider := &mockCarrierProvider{
		carrier:  domain.CarrierUPS,
		parseErr: errors.New("unexpected payload"),
	}
	svc := NewPackageService([]ports.CarrierProvider{provider}, nil)

	_, err := svc.GetPackage(context.Background(), domain.CarrierUPS, "1Z999", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse tracking data")
}
