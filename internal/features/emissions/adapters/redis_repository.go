package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"greenboard/internal/core/cache"
	"greenboard/internal/features/emissions/domain"
	pkgdomain "greenboard/internal/features/packages/domain"
)

// RedisResultRepository implements ports.ResultRepository using the cache
// adaptation. Results expire after the configured TTL so a re-query of the
// same shipment eventually recomputes against fresh carrier data.
type RedisResultRepository struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewRedisResultRepository creates a new RedisResultRepository.
func NewRedisResultRepository(c cache.Cache, ttl time.Duration) *RedisResultRepository {
	return &RedisResultRepository{
		cache: c,
		ttl:   ttl,
	}
}

// Save stores the result in the cache, keyed by carrier and tracking number.
func (r *RedisResultRepository) Save(ctx context.Context, result *domain.EmissionResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal emission result: %w", err)
	}

	key := resultCacheKey(result.Package.Carrier, result.Package.TrackingNumber)
	if err := r.cache.Set(ctx, key, data, r.ttl); err != nil {
		return fmt.Errorf("failed to save emission result to cache: %w", err)
	}

	return nil
}

// Get retrieves a stored result. A miss is (nil, nil), not an error.
func (r *RedisResultRepository) Get(ctx context.Context, carrier pkgdomain.CarrierID, trackingNumber string) (*domain.EmissionResult, error) {
	data, err := r.cache.Get(ctx, resultCacheKey(carrier, trackingNumber))
	if err != nil {
		if errors.Is(err, cache.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get emission result from cache: %w", err)
	}

	var result domain.EmissionResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal emission result: %w", err)
	}

	return &result, nil
}

func resultCacheKey(carrier pkgdomain.CarrierID, trackingNumber string) string {
	return fmt.Sprintf("emissions:%s:%s", carrier, trackingNumber)
}
