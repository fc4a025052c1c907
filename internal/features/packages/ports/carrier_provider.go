package ports

import (
	"context"

	"greenboard/internal/features/packages/domain"
)

// Credentials are the OAuth client credentials for a carrier API.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// CarrierProvider defines the interface for carrier tracking implementations.
// One implementation exists per carrier; adding a carrier means adding an
// adapter, not touching the emissions engine.
type CarrierProvider interface {
	// Authenticate exchanges credentials for an API access token.
	Authenticate(ctx context.Context, creds Credentials) (string, error)
	// FetchTracking retrieves the raw tracking payload for a tracking number.
	FetchTracking(ctx context.Context, token, trackingNumber string) ([]byte, error)
	// Parse normalizes a raw tracking payload into a PackageInfo.
	Parse(raw []byte) (*domain.PackageInfo, error)
	// SupportsCarrier returns true if this provider handles the given carrier.
	SupportsCarrier(carrier domain.CarrierID) bool
}
