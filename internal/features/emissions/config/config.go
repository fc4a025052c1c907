package config

import (
	"fmt"

	"greenboard/internal/features/emissions/domain"
	pkgdomain "greenboard/internal/features/packages/domain"
)

// DefaultModeKey is the mandatory per-carrier fallback entry in every
// service-code map.
const DefaultModeKey = "default"

// DefaultDistances are the fixed fallback distances in kilometers used
// when geocoding cannot resolve both ends of a route.
type DefaultDistances struct {
	DomesticGroundKm float64 `json:"domestic_ground_km"`
	DomesticAirKm    float64 `json:"domestic_air_km"`
	InternationalKm  float64 `json:"international_km"`
	LastMileKm       float64 `json:"last_mile_km"`
}

// EmissionsConfig is the immutable configuration surface of the emissions
// engine: emission factors, default distances, dimensional-weight divisors
// and per-carrier service-code mappings. Loaded once at process start and
// injected, never mutated.
type EmissionsConfig struct {
	// Factors maps each transport mode to kg CO2e per tonne-km.
	Factors map[domain.TransportMode]float64
	// Distances are the fallback distance tiers.
	Distances DefaultDistances
	// DimensionalDivisors maps carriers to their volumetric-weight divisor
	// (volume cm3 / divisor = kg).
	DimensionalDivisors map[pkgdomain.CarrierID]float64
	// DimensionalDivisorDefault applies to carriers without a specific divisor.
	DimensionalDivisorDefault float64
	// ServiceModes maps each carrier's raw service codes to transport modes.
	// UPS codes are matched case-sensitively as issued; other carriers'
	// codes are upper-cased before lookup.
	ServiceModes map[pkgdomain.CarrierID]map[string]domain.TransportMode
}

// Default returns the built-in configuration. Factor sources: EPA SmartWay,
// GLEC Framework, EEA. Faster services carry higher factors because they
// leave less room for route consolidation; long-haul air is more fuel
// efficient per km than short-haul.
func Default() *EmissionsConfig {
	return &EmissionsConfig{
		Factors: map[domain.TransportMode]float64{
			domain.ModeGroundEconomy:   0.062,
			domain.ModeGroundStandard:  0.127,
			domain.ModeGroundExpedited: 0.180,
			domain.ModeGround2Day:      0.220,

			domain.ModeAirNextDayEarly: 0.90,
			domain.ModeAirNextDay:      0.82,
			domain.ModeAirNextDaySaver: 0.78,
			domain.ModeAir2Day:         0.75,
			domain.ModeAir2DayEarly:    0.77,
			domain.ModeAir3Day:         0.72,

			domain.ModeAirIntlExpress:   0.75,
			domain.ModeAirIntlExpedited: 0.69,
			domain.ModeAirIntlSaver:     0.65,

			domain.ModeOceanStandard:  0.010,
			domain.ModeOceanExpedited: 0.015,

			domain.ModeRailStandard: 0.022,

			domain.ModeLastMileStandard: 0.200,
			domain.ModeLastMileUrban:    0.307,

			domain.ModeFreightLTL: 0.150,
			domain.ModeFreightFTL: 0.062,

			domain.ModeMailInnovations: 0.180,
			domain.ModeSurePost:        0.180,
		},
		Distances: DefaultDistances{
			DomesticGroundKm: 1200,
			DomesticAirKm:    1500,
			InternationalKm:  5000,
			LastMileKm:       10,
		},
		// 5000 is the metric air-cargo convention (cm3 to kg).
		DimensionalDivisorDefault: 5000,
		DimensionalDivisors:       map[pkgdomain.CarrierID]float64{},
		ServiceModes: map[pkgdomain.CarrierID]map[string]domain.TransportMode{
			pkgdomain.CarrierUPS: {
				"01":           domain.ModeAirNextDay,
				"02":           domain.ModeAir2Day,
				"03":           domain.ModeGroundStandard,
				"07":           domain.ModeAirIntlExpress,
				"08":           domain.ModeAirIntlExpedited,
				"11":           domain.ModeGroundStandard,
				"12":           domain.ModeAir3Day,
				"13":           domain.ModeAirNextDaySaver,
				"14":           domain.ModeAirNextDayEarly,
				"54":           domain.ModeAirIntlExpress,
				"59":           domain.ModeAir2DayEarly,
				"65":           domain.ModeAirIntlSaver,
				"70":           domain.ModeFreightLTL,
				"74":           domain.ModeGroundEconomy,
				"82":           domain.ModeGroundEconomy,
				"83":           domain.ModeGroundEconomy,
				"93":           domain.ModeSurePost,
				"M2":           domain.ModeMailInnovations,
				"M3":           domain.ModeMailInnovations,
				"M4":           domain.ModeMailInnovations,
				"M5":           domain.ModeMailInnovations,
				"M6":           domain.ModeMailInnovations,
				DefaultModeKey: domain.ModeGroundStandard,
			},
			pkgdomain.CarrierFedEx: {
				"FEDEX_GROUND":           domain.ModeGroundStandard,
				"GROUND_HOME_DELIVERY":   domain.ModeGroundStandard,
				"FEDEX_EXPRESS_SAVER":    domain.ModeAir3Day,
				"FEDEX_2_DAY":            domain.ModeAir2Day,
				"FEDEX_2_DAY_AM":         domain.ModeAir2DayEarly,
				"STANDARD_OVERNIGHT":     domain.ModeAirNextDay,
				"PRIORITY_OVERNIGHT":     domain.ModeAirNextDayEarly,
				"FIRST_OVERNIGHT":        domain.ModeAirNextDayEarly,
				"INTERNATIONAL_ECONOMY":  domain.ModeAirIntlSaver,
				"INTERNATIONAL_PRIORITY": domain.ModeAirIntlExpress,
				"INTERNATIONAL_FIRST":    domain.ModeAirIntlExpress,
				"FEDEX_FREIGHT_PRIORITY": domain.ModeFreightLTL,
				"FEDEX_FREIGHT_ECONOMY":  domain.ModeFreightLTL,
				"FEDEX_FREIGHT":          domain.ModeFreightFTL,
				"SMART_POST":             domain.ModeMailInnovations,
				DefaultModeKey:           domain.ModeGroundStandard,
			},
			pkgdomain.CarrierUSPS: {
				"PRIORITY":                            domain.ModeAir2Day,
				"PRIORITY_EXPRESS":                    domain.ModeAirNextDay,
				"FIRST_CLASS":                         domain.ModeGroundStandard,
				"PARCEL_SELECT":                       domain.ModeGroundEconomy,
				"MEDIA_MAIL":                          domain.ModeGroundEconomy,
				"PRIORITY_MAIL_EXPRESS_INTERNATIONAL": domain.ModeAirIntlExpress,
				"PRIORITY_MAIL_INTERNATIONAL":         domain.ModeAirIntlExpedited,
				"FIRST_CLASS_PACKAGE_INTERNATIONAL":   domain.ModeGroundStandard,
				DefaultModeKey:                        domain.ModeGroundStandard,
			},
			pkgdomain.CarrierDHL: {
				"EXPRESS_WORLDWIDE": domain.ModeAirIntlExpress,
				"EXPRESS_12:00":     domain.ModeAirIntlExpress,
				"EXPRESS_9:00":      domain.ModeAirIntlExpress,
				"EXPRESS_EASY":      domain.ModeAirIntlExpedited,
				"ECONOMY_SELECT":    domain.ModeAirIntlSaver,
				"GROUND":            domain.ModeGroundStandard,
				DefaultModeKey:      domain.ModeGroundStandard,
			},
		},
	}
}

// Validate checks the configuration for completeness. A gap here is fatal
// at startup, not a per-request condition.
func (c *EmissionsConfig) Validate() error {
	for _, mode := range domain.AllTransportModes() {
		factor, ok := c.Factors[mode]
		if !ok {
			return fmt.Errorf("emission factor missing for transport mode: %s", mode)
		}
		if factor <= 0 {
			return fmt.Errorf("emission factor for %s must be positive, got %v", mode, factor)
		}
	}

	for mode := range c.Factors {
		if !knownMode(mode) {
			return fmt.Errorf("emission factor configured for unknown transport mode: %s", mode)
		}
	}

	if c.Distances.DomesticGroundKm <= 0 || c.Distances.DomesticAirKm <= 0 ||
		c.Distances.InternationalKm <= 0 || c.Distances.LastMileKm <= 0 {
		return fmt.Errorf("default distances must all be positive: %+v", c.Distances)
	}

	if c.DimensionalDivisorDefault <= 0 {
		return fmt.Errorf("default dimensional divisor must be positive, got %v", c.DimensionalDivisorDefault)
	}
	for carrier, divisor := range c.DimensionalDivisors {
		if divisor <= 0 {
			return fmt.Errorf("dimensional divisor for %s must be positive, got %v", carrier, divisor)
		}
	}

	for carrier, codes := range c.ServiceModes {
		if _, ok := codes[DefaultModeKey]; !ok {
			return fmt.Errorf("service-code map for %s is missing its %q entry", carrier, DefaultModeKey)
		}
		for code, mode := range codes {
			if !knownMode(mode) {
				return fmt.Errorf("service code %s/%s maps to unknown transport mode: %s", carrier, code, mode)
			}
		}
	}

	return nil
}

// DivisorFor returns the dimensional-weight divisor for a carrier.
func (c *EmissionsConfig) DivisorFor(carrier pkgdomain.CarrierID) float64 {
	if divisor, ok := c.DimensionalDivisors[carrier]; ok {
		return divisor
	}
	return c.DimensionalDivisorDefault
}

func knownMode(mode domain.TransportMode) bool {
	for _, known := range domain.AllTransportModes() {
		if mode == known {
			return true
		}
	}
	return false
}
