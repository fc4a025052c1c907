package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"greenboard/internal/core/httpclient"
	"greenboard/internal/core/logger"
	"greenboard/internal/features/packages/domain"
	"greenboard/internal/features/packages/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// lbsToKg converts pounds to kilograms.
const lbsToKg = 0.453592

// UPSAdapter implements the CarrierProvider interface over the UPS
// OAuth and tracking APIs.
type UPSAdapter struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewUPSAdapter creates a new UPSAdapter for the given API host.
func NewUPSAdapter(baseURL string) *UPSAdapter {
	return &UPSAdapter{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  httpclient.NewClient(15 * time.Second),
		logger:  logger.Named("ups"),
	}
}

// Authenticate performs the OAuth client-credentials exchange and returns
// an access token.
func (a *UPSAdapter) Authenticate(ctx context.Context, creds ports.Credentials) (string, error) {
	tokenURL := a.baseURL + "/security/v1/oauth/token"

	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}
	req.SetBasicAuth(creds.ClientID, creds.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("UPS authentication request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("UPS authentication returned status: %d", resp.StatusCode)
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if tokenResp.AccessToken == "" {
		return "", fmt.Errorf("UPS authentication returned no access token")
	}

	a.logger.Debug("UPS authentication succeeded")
	return tokenResp.AccessToken, nil
}

// FetchTracking retrieves the raw tracking payload for a tracking number.
func (a *UPSAdapter) FetchTracking(ctx context.Context, token, trackingNumber string) ([]byte, error) {
	trackURL := fmt.Sprintf("%s/api/track/v1/details/%s", a.baseURL, url.PathEscape(trackingNumber))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, trackURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create tracking request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("transId", uuid.NewString())
	req.Header.Set("transactionSrc", "greenboard")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("UPS tracking request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("tracking number not found: %s", trackingNumber)
		}
		return nil, fmt.Errorf("UPS tracking returned status: %d", resp.StatusCode)
	}

	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to read tracking response: %w", err)
	}

	a.logger.Debug("Retrieved UPS tracking data", zap.String("tracking_number", trackingNumber))
	return raw, nil
}

// upsTrackPayload mirrors the UPS tracking response. encoding/json matches
// field names case-insensitively, which covers the two casing variants the
// API is known to emit (trackResponse/TrackResponse and so on).
type upsTrackPayload struct {
	TrackResponse *struct {
		Shipment []struct {
			Package []upsPackage `json:"package"`
		} `json:"shipment"`
	} `json:"trackResponse"`
}

type upsPackage struct {
	TrackingNumber string     `json:"trackingNumber"`
	PackageWeight  *upsWeight `json:"packageWeight"`
	// Some responses call the same block "weight" instead.
	Weight         *upsWeight          `json:"weight"`
	PackageAddress []upsPackageAddress `json:"packageAddress"`
	Service        struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"service"`
}

type upsWeight struct {
	UnitOfMeasurement string `json:"unitOfMeasurement"`
	Weight            string `json:"weight"`
}

type upsPackageAddress struct {
	Type    string `json:"type"`
	Address struct {
		AddressLine   string `json:"addressLine"`
		City          string `json:"city"`
		StateProvince string `json:"stateProvince"`
		PostalCode    string `json:"postalCode"`
		Country       string `json:"country"`
	} `json:"address"`
}

// Parse normalizes a raw UPS tracking payload into a PackageInfo.
func (a *UPSAdapter) Parse(raw []byte) (*domain.PackageInfo, error) {
	var payload upsTrackPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse UPS response: %w", err)
	}

	if payload.TrackResponse == nil ||
		len(payload.TrackResponse.Shipment) == 0 ||
		len(payload.TrackResponse.Shipment[0].Package) == 0 {
		return nil, fmt.Errorf("unable to find shipment data in UPS response")
	}

	pkg := payload.TrackResponse.Shipment[0].Package[0]

	weightKg, err := parseWeightKg(pkg)
	if err != nil {
		return nil, err
	}

	var origin, destination *domain.Address
	for _, entry := range pkg.PackageAddress {
		addr := &domain.Address{
			Street:     entry.Address.AddressLine,
			City:       entry.Address.City,
			State:      entry.Address.StateProvince,
			PostalCode: entry.Address.PostalCode,
			Country:    entry.Address.Country,
		}
		if addr.Country == "" {
			addr.Country = "US"
		}

		switch strings.ToLower(entry.Type) {
		case "origin":
			origin = addr
		case "destination":
			destination = addr
		}
	}

	serviceCode := pkg.Service.Code
	if serviceCode == "" {
		serviceCode = "03"
	}
	serviceDesc := pkg.Service.Description
	if serviceDesc == "" {
		serviceDesc = "Ground"
	}

	info := &domain.PackageInfo{
		TrackingNumber: pkg.TrackingNumber,
		WeightKg:       weightKg,
		Origin:         origin,
		Destination:    destination,
		ServiceCode:    serviceCode,
		ServiceDesc:    serviceDesc,
		Carrier:        domain.CarrierUPS,
	}

	a.logger.Debug("Parsed UPS package",
		zap.String("tracking_number", info.TrackingNumber),
		zap.Float64("weight_kg", info.WeightKg),
		zap.String("service_code", info.ServiceCode),
	)

	return info, nil
}

// parseWeightKg extracts the package weight in kilograms, converting from
// pounds when that is the reported unit. A payload without a weight block
// or with an unrecognized unit is an error; a guessed weight would feed a
// wrong number into every downstream calculation.
func parseWeightKg(pkg upsPackage) (float64, error) {
	block := pkg.PackageWeight
	if block == nil {
		block = pkg.Weight
	}
	if block == nil {
		return 0, fmt.Errorf("UPS response carries no package weight")
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(block.Weight), 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse UPS weight %q: %w", block.Weight, err)
	}

	switch strings.ToLower(block.UnitOfMeasurement) {
	case "lbs":
		return value * lbsToKg, nil
	case "kgs":
		return value, nil
	default:
		return 0, fmt.Errorf("unrecognized UPS weight unit %q", block.UnitOfMeasurement)
	}
}

// SupportsCarrier returns true if this adapter handles UPS.
func (a *UPSAdapter) SupportsCarrier(carrier domain.CarrierID) bool {
	return carrier == domain.CarrierUPS
}
