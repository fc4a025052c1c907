package service

import (
	"greenboard/internal/features/emissions/config"
	"greenboard/internal/features/emissions/domain"
	pkgdomain "greenboard/internal/features/packages/domain"
)

// WeightResolver determines the chargeable weight of a package: the
// larger of declared and volumetric weight, the latter derived from
// dimensions through the carrier's divisor.
type WeightResolver struct {
	cfg *config.EmissionsConfig
}

// NewWeightResolver creates a WeightResolver.
func NewWeightResolver(cfg *config.EmissionsConfig) *WeightResolver {
	return &WeightResolver{cfg: cfg}
}

// Resolve returns the weight to attribute emissions to and whether the
// volumetric weight was billed instead of the declared one. Negative
// declared weight and non-positive dimensions are data errors, never
// clamped; so is a package with no declared weight and no dimensions,
// since a zero-weight calculation would silently report zero emissions.
func (r *WeightResolver) Resolve(declaredKg float64, dims *pkgdomain.Dimensions, carrier pkgdomain.CarrierID) (float64, bool, error) {
	if declaredKg < 0 {
		return 0, false, domain.ErrInvalidWeight
	}
	if dims == nil {
		if declaredKg == 0 {
			return 0, false, domain.ErrMissingWeight
		}
		return declaredKg, false, nil
	}
	if !dims.Valid() {
		return 0, false, domain.ErrInvalidDimensions
	}

	volumetricKg := dims.VolumeCm3() / r.cfg.DivisorFor(carrier)
	if volumetricKg > declaredKg {
		return volumetricKg, true, nil
	}
	return declaredKg, false, nil
}
