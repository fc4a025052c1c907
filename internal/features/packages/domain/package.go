package domain

import (
	"errors"
	"strings"
)

// CarrierID identifies a supported carrier.
type CarrierID string

const (
	// CarrierUPS is United Parcel Service.
	CarrierUPS CarrierID = "ups"
	// CarrierFedEx is FedEx.
	CarrierFedEx CarrierID = "fedex"
	// CarrierUSPS is the United States Postal Service.
	CarrierUSPS CarrierID = "usps"
	// CarrierDHL is DHL.
	CarrierDHL CarrierID = "dhl"
	// CarrierUnknown is any carrier outside the recognized set.
	CarrierUnknown CarrierID = "unknown"
)

var (
	// ErrMissingTrackingNumber is returned when a package has no tracking number.
	ErrMissingTrackingNumber = errors.New("tracking number is required")
	// ErrNegativeWeight is returned when a package declares a negative weight.
	ErrNegativeWeight = errors.New("declared weight must be non-negative")
	// ErrCarrierNoPublicAPI is returned for carriers we recognize but cannot
	// track (no public tracking API).
	ErrCarrierNoPublicAPI = errors.New("carrier has no public tracking API")
)

// carriersWithoutAPI are recognized names that cannot be tracked. Kept so
// callers get a clearer message than a generic "unknown carrier".
var carriersWithoutAPI = map[string]bool{
	"amazon":    true,
	"lasership": true,
}

// ParseCarrierID normalizes a free-text carrier name to a CarrierID.
// Recognized-but-untrackable carriers return ErrCarrierNoPublicAPI;
// anything else maps to CarrierUnknown with no error, since an unknown
// carrier degrades rather than fails downstream.
func ParseCarrierID(name string) (CarrierID, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))

	switch normalized {
	case "ups":
		return CarrierUPS, nil
	case "fedex":
		return CarrierFedEx, nil
	case "usps":
		return CarrierUSPS, nil
	case "dhl":
		return CarrierDHL, nil
	}

	if carriersWithoutAPI[normalized] {
		return CarrierUnknown, ErrCarrierNoPublicAPI
	}

	return CarrierUnknown, nil
}

// Address is the standardized address structure all carrier payloads
// normalize into. Latitude/Longitude, when present, take precedence over
// re-geocoding the textual fields.
type Address struct {
	Street     string  `json:"street,omitempty"`
	City       string  `json:"city,omitempty"`
	State      string  `json:"state,omitempty"`
	PostalCode string  `json:"postal_code,omitempty"`
	Country    string  `json:"country,omitempty"`
	Latitude   float64 `json:"latitude,omitempty"`
	Longitude  float64 `json:"longitude,omitempty"`
}

// HasCoordinates reports whether the address already carries coordinates.
func (a Address) HasCoordinates() bool {
	return a.Latitude != 0 && a.Longitude != 0
}

// QueryString builds the free-text geocoding query from non-empty fields,
// in the fixed order street, city, state, postal code, country.
func (a Address) QueryString() string {
	parts := make([]string, 0, 5)
	for _, field := range []string{a.Street, a.City, a.State, a.PostalCode, a.Country} {
		if field != "" {
			parts = append(parts, field)
		}
	}
	return strings.Join(parts, ", ")
}

// IsZero reports whether no address field is populated.
func (a Address) IsZero() bool {
	return a == Address{}
}

// Dimensions are a package's physical dimensions in centimeters.
type Dimensions struct {
	LengthCm float64 `json:"length_cm"`
	WidthCm  float64 `json:"width_cm"`
	HeightCm float64 `json:"height_cm"`
}

// Valid reports whether every side is strictly positive.
func (d Dimensions) Valid() bool {
	return d.LengthCm > 0 && d.WidthCm > 0 && d.HeightCm > 0
}

// VolumeCm3 is the package volume in cubic centimeters.
func (d Dimensions) VolumeCm3() float64 {
	return d.LengthCm * d.WidthCm * d.HeightCm
}

// PackageInfo is the normalized package record every carrier adapter
// produces. It is immutable for the duration of a calculation; the only
// in-place extension allowed is appending caller-supplied dimensions after
// the authoritative parse.
type PackageInfo struct {
	TrackingNumber string      `json:"tracking_number"`
	WeightKg       float64     `json:"weight_kg"`
	Dimensions     *Dimensions `json:"dimensions,omitempty"`
	Origin         *Address    `json:"origin,omitempty"`
	Destination    *Address    `json:"destination,omitempty"`
	ServiceCode    string      `json:"service_code,omitempty"`
	ServiceDesc    string      `json:"service_description,omitempty"`
	Carrier        CarrierID   `json:"carrier"`
	PickupDate     string      `json:"pickup_date,omitempty"`
}

// Validate enforces the adapter guarantees at the boundary: a tracking
// number is present and the declared weight is non-negative.
func (p *PackageInfo) Validate() error {
	if strings.TrimSpace(p.TrackingNumber) == "" {
		return ErrMissingTrackingNumber
	}
	if p.WeightKg < 0 {
		return ErrNegativeWeight
	}
	return nil
}
