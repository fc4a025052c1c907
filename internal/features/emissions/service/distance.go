package service

import (
	"context"
	"math"
	"strings"

	"greenboard/internal/core/logger"
	"greenboard/internal/features/emissions/config"
	"greenboard/internal/features/emissions/ports"
	pkgdomain "greenboard/internal/features/packages/domain"

	"go.uber.org/zap"
)

// earthRadiusKm is the mean Earth radius used for great-circle distances.
const earthRadiusKm = 6371.0

// DistanceEstimator resolves the main-transit distance between two
// addresses. Geocoding failures degrade to fixed policy defaults; the
// estimator never returns an error.
type DistanceEstimator struct {
	geocoder  ports.Geocoder
	distances config.DefaultDistances
	logger    *zap.Logger
}

// NewDistanceEstimator creates a DistanceEstimator.
func NewDistanceEstimator(geocoder ports.Geocoder, distances config.DefaultDistances) *DistanceEstimator {
	return &DistanceEstimator{
		geocoder:  geocoder,
		distances: distances,
		logger:    logger.Named("distance"),
	}
}

// Estimate returns the distance in kilometers between origin and
// destination. When both ends geocode, the great-circle distance is
// authoritative, and can be zero when both resolve to the same point.
// Otherwise the default tiers apply in order: differing countries,
// air-service hint, domestic ground; only the tier distances are
// guaranteed positive.
func (e *DistanceEstimator) Estimate(ctx context.Context, origin, destination pkgdomain.Address, serviceHint string) float64 {
	originLat, originLon, originErr := e.geocoder.Resolve(ctx, origin)
	destLat, destLon, destErr := e.geocoder.Resolve(ctx, destination)

	if originErr == nil && destErr == nil {
		distance := haversineKm(originLat, originLon, destLat, destLon)
		e.logger.Debug("Calculated great-circle distance", zap.Float64("distance_km", distance))
		return distance
	}

	distance := e.defaultDistance(origin, destination, serviceHint)
	e.logger.Debug("Using default distance",
		zap.Float64("distance_km", distance),
		zap.String("service_hint", serviceHint),
	)
	return distance
}

// defaultDistance applies the three-tier fallback policy.
func (e *DistanceEstimator) defaultDistance(origin, destination pkgdomain.Address, serviceHint string) float64 {
	if origin.Country != "" && destination.Country != "" && origin.Country != destination.Country {
		return e.distances.InternationalKm
	}
	if strings.Contains(strings.ToLower(serviceHint), "air") {
		return e.distances.DomesticAirKm
	}
	return e.distances.DomesticGroundKm
}

// haversineKm computes the great-circle distance between two coordinate
// pairs in kilometers.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)

	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
