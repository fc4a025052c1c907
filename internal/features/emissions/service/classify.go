package service

import (
	"strings"

	"greenboard/internal/features/emissions/config"
	"greenboard/internal/features/emissions/domain"
	pkgdomain "greenboard/internal/features/packages/domain"
)

// ModeClassifier maps a carrier's raw service code to a transport mode.
// Classification never fails: unmapped codes use the carrier's default
// entry and unrecognized carriers fall back to ground standard.
type ModeClassifier struct {
	cfg *config.EmissionsConfig
}

// NewModeClassifier creates a ModeClassifier.
func NewModeClassifier(cfg *config.EmissionsConfig) *ModeClassifier {
	return &ModeClassifier{cfg: cfg}
}

// Classify returns the transport mode for a carrier's service code.
// UPS codes match case-sensitively as issued; other carriers' codes are
// upper-cased before lookup.
func (c *ModeClassifier) Classify(carrier pkgdomain.CarrierID, serviceCode string) domain.TransportMode {
	codes, ok := c.cfg.ServiceModes[carrier]
	if !ok {
		return domain.ModeGroundStandard
	}

	code := strings.TrimSpace(serviceCode)
	if carrier != pkgdomain.CarrierUPS {
		code = strings.ToUpper(code)
	}

	if mode, ok := codes[code]; ok {
		return mode
	}
	return codes[config.DefaultModeKey]
}
