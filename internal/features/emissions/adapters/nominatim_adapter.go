package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"greenboard/internal/core/cache"
	"greenboard/internal/core/httpclient"
	"greenboard/internal/core/logger"
	"greenboard/internal/features/emissions/ports"
	pkgdomain "greenboard/internal/features/packages/domain"

	"go.uber.org/zap"
)

// NominatimConfig configures the Nominatim geocoding adapter.
type NominatimConfig struct {
	// BaseURL is the Nominatim host, e.g. https://nominatim.openstreetmap.org.
	BaseURL string
	// UserAgent identifies this application per Nominatim usage policy.
	UserAgent string
	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration
	// Retry bounds retries of transient service failures.
	Retry ports.RetryPolicy
}

// NominatimAdapter implements the Geocoder port against the Nominatim
// search API. Resolved coordinates are cached by query string in an
// in-process cache that lives and dies with the adapter instance; geocode
// results are never persisted across runs. The cache is safe for the batch
// worker pool, and duplicate in-flight lookups for the same address are
// acceptable.
type NominatimAdapter struct {
	cfg    NominatimConfig
	client *http.Client
	cache  cache.Cache
	logger *zap.Logger
}

// NewNominatimAdapter creates a geocoding adapter with its own per-instance
// query cache.
func NewNominatimAdapter(cfg NominatimConfig) *NominatimAdapter {
	if cfg.Retry.MaxAttempts <= 0 {
		cfg.Retry = ports.DefaultRetryPolicy()
	}
	return &NominatimAdapter{
		cfg:    cfg,
		client: httpclient.NewClientWithUserAgent(cfg.Timeout, cfg.UserAgent),
		cache:  cache.NewMemoryAdapter(),
		logger: logger.Named("geocoder"),
	}
}

// cachedCoords is the cache entry layout for a resolved query.
type cachedCoords struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// errTransient wraps service-level failures that are worth retrying.
var errTransient = errors.New("transient geocoding failure")

// Resolve returns coordinates for an address.
//
// Order of resolution:
//  1. coordinates already on the address (hard short-circuit)
//  2. cache hit for the exact query string
//  3. up to MaxAttempts passes over the query tiers: full address,
//     "city, country", "postal_code, country"
//
// Transient service errors retry the whole tier sequence with a fixed
// delay; exhausting the budget yields ErrNotFound, never a hard error.
func (a *NominatimAdapter) Resolve(ctx context.Context, addr pkgdomain.Address) (float64, float64, error) {
	if addr.HasCoordinates() {
		return addr.Latitude, addr.Longitude, nil
	}

	query := addr.QueryString()
	if query == "" {
		return 0, 0, ports.ErrNotFound
	}

	if coords, ok := a.fromCache(ctx, query); ok {
		return coords.Lat, coords.Lon, nil
	}

	var lastErr error
	for attempt := 1; attempt <= a.cfg.Retry.MaxAttempts; attempt++ {
		lat, lon, err := a.resolveTiers(ctx, addr, query)
		if err == nil {
			a.toCache(ctx, query, cachedCoords{Lat: lat, Lon: lon})
			return lat, lon, nil
		}
		if errors.Is(err, ports.ErrNotFound) {
			// The service answered; the address simply has no match.
			return 0, 0, ports.ErrNotFound
		}

		lastErr = err
		a.logger.Warn("Geocoding attempt failed",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", a.cfg.Retry.MaxAttempts),
			zap.String("query", query),
			zap.Error(err),
		)
		if attempt < a.cfg.Retry.MaxAttempts {
			select {
			case <-time.After(a.cfg.Retry.Delay):
			case <-ctx.Done():
				return 0, 0, ports.ErrNotFound
			}
		}
	}

	a.logger.Warn("Geocoding retries exhausted", zap.String("query", query), zap.Error(lastErr))
	return 0, 0, ports.ErrNotFound
}

// resolveTiers tries the full query, then city+country, then postal+country.
func (a *NominatimAdapter) resolveTiers(ctx context.Context, addr pkgdomain.Address, query string) (float64, float64, error) {
	lat, lon, err := a.search(ctx, query)
	if err == nil || !errors.Is(err, ports.ErrNotFound) {
		return lat, lon, err
	}

	if addr.City != "" && addr.Country != "" {
		fallback := fmt.Sprintf("%s, %s", addr.City, addr.Country)
		a.logger.Debug("Trying city+country fallback", zap.String("query", fallback))
		lat, lon, err = a.search(ctx, fallback)
		if err == nil || !errors.Is(err, ports.ErrNotFound) {
			return lat, lon, err
		}
	}

	if addr.PostalCode != "" && addr.Country != "" {
		fallback := fmt.Sprintf("%s, %s", addr.PostalCode, addr.Country)
		a.logger.Debug("Trying postal+country fallback", zap.String("query", fallback))
		lat, lon, err = a.search(ctx, fallback)
		if err == nil || !errors.Is(err, ports.ErrNotFound) {
			return lat, lon, err
		}
	}

	return 0, 0, ports.ErrNotFound
}

// search issues one Nominatim query. Network and 5xx failures are
// transient; an empty result set is ErrNotFound.
func (a *NominatimAdapter) search(ctx context.Context, query string) (float64, float64, error) {
	searchURL := fmt.Sprintf("%s/search?q=%s&format=json&limit=1",
		a.cfg.BaseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to create geocoding request: %w", err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", errTransient, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests {
		return 0, 0, fmt.Errorf("%w: service returned status %d", errTransient, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return 0, 0, fmt.Errorf("geocoding service returned status: %d", resp.StatusCode)
	}

	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return 0, 0, fmt.Errorf("%w: malformed response: %v", errTransient, err)
	}

	if len(results) == 0 {
		return 0, 0, ports.ErrNotFound
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to parse latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to parse longitude %q: %w", results[0].Lon, err)
	}

	a.logger.Debug("Geocoded address", zap.String("query", query), zap.Float64("lat", lat), zap.Float64("lon", lon))
	return lat, lon, nil
}

// fromCache looks up a previously resolved query.
func (a *NominatimAdapter) fromCache(ctx context.Context, query string) (cachedCoords, bool) {
	data, err := a.cache.Get(ctx, geocodeCacheKey(query))
	if err != nil {
		return cachedCoords{}, false
	}

	var coords cachedCoords
	if err := json.Unmarshal(data, &coords); err != nil {
		return cachedCoords{}, false
	}
	return coords, true
}

// toCache stores a resolved query. Cache failures only cost a future lookup.
func (a *NominatimAdapter) toCache(ctx context.Context, query string, coords cachedCoords) {
	data, err := json.Marshal(coords)
	if err != nil {
		return
	}
	if err := a.cache.Set(ctx, geocodeCacheKey(query), data, 0); err != nil {
		a.logger.Warn("Failed to cache geocode result", zap.String("query", query), zap.Error(err))
	}
}

func geocodeCacheKey(query string) string {
	return "geocode:" + query
}
