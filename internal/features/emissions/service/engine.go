package service

import (
	"context"
	"fmt"

	"greenboard/internal/core/logger"
	"greenboard/internal/features/emissions/config"
	"greenboard/internal/features/emissions/domain"
	"greenboard/internal/features/emissions/ports"
	pkgdomain "greenboard/internal/features/packages/domain"

	"go.uber.org/zap"
)

// Engine computes the carbon footprint of a shipment. It is a pure
// function of its inputs apart from the geocode cache behind the
// distance estimator.
type Engine struct {
	cfg        *config.EmissionsConfig
	weights    *WeightResolver
	distances  *DistanceEstimator
	classifier *ModeClassifier
	logger     *zap.Logger
}

// NewEngine creates an emissions Engine.
func NewEngine(cfg *config.EmissionsConfig, geocoder ports.Geocoder) *Engine {
	return &Engine{
		cfg:        cfg,
		weights:    NewWeightResolver(cfg),
		distances:  NewDistanceEstimator(geocoder, cfg.Distances),
		classifier: NewModeClassifier(cfg),
		logger:     logger.Named("emissions"),
	}
}

// Calculate produces the EmissionResult for one package.
//
// Pipeline: resolve weight, check the address precondition, estimate
// distance, classify the transport mode, then build the main-transit
// segment and, unless the main mode is itself last-mile, append a fixed
// last-mile delivery segment. No rounding happens here.
func (e *Engine) Calculate(ctx context.Context, pkg *pkgdomain.PackageInfo) (*domain.EmissionResult, error) {
	weightKg, usedDimensional, err := e.weights.Resolve(pkg.WeightKg, pkg.Dimensions, pkg.Carrier)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve weight for %s: %w", pkg.TrackingNumber, err)
	}

	if pkg.Origin == nil || pkg.Destination == nil {
		return nil, fmt.Errorf("package %s: %w", pkg.TrackingNumber, domain.ErrMissingAddress)
	}

	distanceKm := e.distances.Estimate(ctx, *pkg.Origin, *pkg.Destination, pkg.ServiceDesc)
	mode := e.classifier.Classify(pkg.Carrier, pkg.ServiceCode)
	factor := e.cfg.Factors[mode]

	breakdown := []domain.EmissionSegment{
		newSegment(domain.SegmentMainTransit, mode, distanceKm, weightKg, factor),
	}

	if !mode.IsLastMile() {
		breakdown = append(breakdown, newSegment(
			domain.SegmentLastMile,
			domain.ModeLastMileStandard,
			e.cfg.Distances.LastMileKm,
			weightKg,
			e.cfg.Factors[domain.ModeLastMileStandard],
		))
	}

	total := 0.0
	for _, segment := range breakdown {
		total += segment.EmissionsKg
	}

	e.logger.Info("Calculated emissions",
		zap.String("tracking_number", pkg.TrackingNumber),
		zap.String("carrier", string(pkg.Carrier)),
		zap.String("mode", string(mode)),
		zap.Float64("total_kg", total),
	)

	return &domain.EmissionResult{
		TotalEmissionsKg: total,
		WeightUsedKg:     weightKg,
		IsDimensional:    usedDimensional,
		DistanceKm:       distanceKm,
		TransportMode:    mode,
		EmissionFactor:   factor,
		Breakdown:        breakdown,
		Package:          *pkg,
	}, nil
}

// newSegment applies the tonne-km formula: (kg/1000) * km * factor.
func newSegment(label string, mode domain.TransportMode, distanceKm, weightKg, factor float64) domain.EmissionSegment {
	return domain.EmissionSegment{
		Segment:        label,
		Mode:           mode,
		DistanceKm:     distanceKm,
		WeightKg:       weightKg,
		EmissionFactor: factor,
		EmissionsKg:    (weightKg / 1000) * distanceKm * factor,
	}
}
