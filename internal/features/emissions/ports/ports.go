package ports

import (
	"context"
	"errors"
	"time"

	"greenboard/internal/features/emissions/domain"
	pkgdomain "greenboard/internal/features/packages/domain"
)

// ErrNotFound is returned by a Geocoder when an address cannot be
// resolved. Callers degrade to a policy default distance; this is never
// a calculation failure.
var ErrNotFound = errors.New("address could not be geocoded")

// Geocoder resolves a free-form postal address to coordinates.
type Geocoder interface {
	// Resolve returns the latitude and longitude for an address, or
	// ErrNotFound when no resolution is possible.
	Resolve(ctx context.Context, addr pkgdomain.Address) (lat, lon float64, err error)
}

// RetryPolicy bounds retries of transient geocoding failures. Injected as
// configuration so tests can use a zero-delay policy.
type RetryPolicy struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int
	// Delay is the fixed wait between attempts.
	Delay time.Duration
}

// DefaultRetryPolicy mirrors the production geocoder settings.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, Delay: time.Second}
}

// ResultRepository stores computed emission results. Persistent storage is
// a collaborator of the core; this port is its full contract.
type ResultRepository interface {
	// Save stores a computed result.
	Save(ctx context.Context, result *domain.EmissionResult) error
	// Get retrieves a stored result by carrier and tracking number.
	// Returns (nil, nil) when no result is stored.
	Get(ctx context.Context, carrier pkgdomain.CarrierID, trackingNumber string) (*domain.EmissionResult, error)
}
