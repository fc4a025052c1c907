package domain

import (
	"errors"
	"strings"

	pkgdomain "greenboard/internal/features/packages/domain"
)

var (
	// ErrMissingAddress is returned when a package lacks an origin or
	// destination; distance and international status cannot be estimated
	// without both ends.
	ErrMissingAddress = errors.New("package is missing origin or destination address")
	// ErrInvalidWeight is returned for a negative declared weight.
	ErrInvalidWeight = errors.New("declared weight must be non-negative")
	// ErrMissingWeight is returned when a package carries neither a
	// declared weight nor dimensions to derive one from. A zero-weight
	// shipment is never calculated silently.
	ErrMissingWeight = errors.New("package has neither declared weight nor dimensions")
	// ErrInvalidDimensions is returned when dimensions are present but any
	// side is zero or negative.
	ErrInvalidDimensions = errors.New("package dimensions must be positive")
)

// TransportMode is the closed classification of how a transit leg moved.
// Every mode carries a fixed emission factor; a mode missing from the
// factor table is a configuration error caught at startup.
type TransportMode string

const (
	// Ground services.
	ModeGroundStandard  TransportMode = "ground_standard"
	ModeGroundEconomy   TransportMode = "ground_economy"
	ModeGroundExpedited TransportMode = "ground_expedited"
	ModeGround2Day      TransportMode = "ground_2day"

	// Domestic air (short-haul).
	ModeAirNextDay      TransportMode = "air_next_day"
	ModeAirNextDayEarly TransportMode = "air_next_day_early"
	ModeAirNextDaySaver TransportMode = "air_next_day_saver"
	ModeAir2Day         TransportMode = "air_2day"
	ModeAir2DayEarly    TransportMode = "air_2day_early"
	ModeAir3Day         TransportMode = "air_3day"

	// International air (long-haul; more fuel-efficient per km).
	ModeAirIntlExpress   TransportMode = "air_intl_express"
	ModeAirIntlExpedited TransportMode = "air_intl_expedited"
	ModeAirIntlSaver     TransportMode = "air_intl_saver"

	// Ocean.
	ModeOceanStandard  TransportMode = "ocean_standard"
	ModeOceanExpedited TransportMode = "ocean_expedited"

	// Rail.
	ModeRailStandard TransportMode = "rail_standard"

	// Last mile.
	ModeLastMileStandard TransportMode = "last_mile_standard"
	ModeLastMileUrban    TransportMode = "last_mile_urban"

	// Freight.
	ModeFreightLTL TransportMode = "freight_ltl"
	ModeFreightFTL TransportMode = "freight_ftl"

	// Hybrid carrier/postal.
	ModeMailInnovations TransportMode = "mail_innovations"
	ModeSurePost        TransportMode = "surepost"
)

// AllTransportModes returns every mode in the closed set, used to validate
// factor-table completeness at startup.
func AllTransportModes() []TransportMode {
	return []TransportMode{
		ModeGroundStandard, ModeGroundEconomy, ModeGroundExpedited, ModeGround2Day,
		ModeAirNextDay, ModeAirNextDayEarly, ModeAirNextDaySaver,
		ModeAir2Day, ModeAir2DayEarly, ModeAir3Day,
		ModeAirIntlExpress, ModeAirIntlExpedited, ModeAirIntlSaver,
		ModeOceanStandard, ModeOceanExpedited,
		ModeRailStandard,
		ModeLastMileStandard, ModeLastMileUrban,
		ModeFreightLTL, ModeFreightFTL,
		ModeMailInnovations, ModeSurePost,
	}
}

// IsAir reports whether the mode is air-based.
func (m TransportMode) IsAir() bool {
	return strings.HasPrefix(string(m), "air_")
}

// IsInternational reports whether the mode implies an international route.
func (m TransportMode) IsInternational() bool {
	switch m {
	case ModeAirIntlExpress, ModeAirIntlExpedited, ModeAirIntlSaver,
		ModeOceanStandard, ModeOceanExpedited:
		return true
	}
	return false
}

// IsLastMile reports whether the mode is itself a last-mile delivery mode.
// A shipment classified as last-mile gets no additional delivery leg.
func (m TransportMode) IsLastMile() bool {
	return m == ModeLastMileStandard || m == ModeLastMileUrban
}

// Segment labels.
const (
	SegmentMainTransit = "Main Transit"
	SegmentLastMile    = "Last Mile Delivery"
)

// EmissionSegment is one leg of transport with its share of the total.
// EmissionsKg always equals (WeightKg/1000) * DistanceKm * EmissionFactor.
type EmissionSegment struct {
	Segment        string        `json:"segment"`
	Mode           TransportMode `json:"mode"`
	DistanceKm     float64       `json:"distance_km"`
	WeightKg       float64       `json:"weight_kg"`
	EmissionFactor float64       `json:"emission_factor"`
	EmissionsKg    float64       `json:"emissions_kg"`
}

// EmissionResult is the complete, auditable outcome of one calculation.
// Created once per successful calculation and never mutated afterwards.
type EmissionResult struct {
	TotalEmissionsKg float64 `json:"total_emissions_kg"`
	WeightUsedKg     float64 `json:"weight_used_kg"`
	// IsDimensional is true when volumetric weight exceeded the declared
	// weight and was billed instead.
	IsDimensional bool `json:"is_dimensional"`
	// DistanceKm is the main-transit distance only; the last-mile leg is
	// reported in its own segment.
	DistanceKm     float64               `json:"distance_km"`
	TransportMode  TransportMode         `json:"transport_mode"`
	EmissionFactor float64               `json:"emission_factor"`
	Breakdown      []EmissionSegment     `json:"breakdown"`
	Package        pkgdomain.PackageInfo `json:"package_info"`
}
