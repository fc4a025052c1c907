package service

import (
	"context"
	"errors"
	"fmt"

	"greenboard/internal/core/logger"
	"greenboard/internal/features/packages/domain"
	"greenboard/internal/features/packages/ports"

	"go.uber.org/zap"
)

var (
	// ErrCarrierNotSupported is returned when no provider handles the requested carrier.
	ErrCarrierNotSupported = errors.New("carrier not supported")
)

// PackageService retrieves and normalizes package records across carrier
// providers. Per-carrier credentials are injected once at construction.
type PackageService struct {
	providers   []ports.CarrierProvider
	credentials map[domain.CarrierID]ports.Credentials
	logger      *zap.Logger
}

// NewPackageService creates a new PackageService with the given providers
// and per-carrier credentials.
func NewPackageService(providers []ports.CarrierProvider, credentials map[domain.CarrierID]ports.Credentials) *PackageService {
	return &PackageService{
		providers:   providers,
		credentials: credentials,
		logger:      logger.Named("packages"),
	}
}

// GetPackage runs the authenticate, fetch and parse pipeline for a tracking
// number. Caller-supplied dimensions, when valid, are appended after the
// authoritative parse; a carrier payload never carries dimensions itself.
func (s *PackageService) GetPackage(ctx context.Context, carrier domain.CarrierID, trackingNumber string, dims *domain.Dimensions) (*domain.PackageInfo, error) {
	for _, provider := range s.providers {
		if !provider.SupportsCarrier(carrier) {
			continue
		}

		token, err := provider.Authenticate(ctx, s.credentials[carrier])
		if err != nil {
			return nil, fmt.Errorf("failed to authenticate with carrier: %w", err)
		}

		raw, err := provider.FetchTracking(ctx, token, trackingNumber)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch tracking data: %w", err)
		}

		info, err := provider.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse tracking data: %w", err)
		}

		if dims != nil {
			info.Dimensions = dims
		}

		s.logger.Debug("Package retrieved",
			zap.String("carrier", string(carrier)),
			zap.String("tracking_number", info.TrackingNumber),
		)
		return info, nil
	}

	return nil, ErrCarrierNotSupported
}
