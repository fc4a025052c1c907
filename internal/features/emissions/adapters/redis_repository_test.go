package adapters

import (
	"context"
	"testing"
	"time"

	"greenboard/internal/core/cache"
	"greenboard/internal/features/emissions/domain"
	pkgdomain "greenboard/internal/features/packages/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupResultRepo(t *testing.T) (*RedisResultRepository, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	c, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	return NewRedisResultRepository(c, time.Hour), mr
}

func sampleResult() *domain.EmissionResult {
	return &domain.EmissionResult{
		TotalEmissionsKg: 1.544,
		WeightUsedKg:     4.0,
		DistanceKm:       2500,
		TransportMode:    domain.ModeGroundStandard,
		EmissionFactor:   0.127,
		Breakdown: []domain.EmissionSegment{
			{
				Segment:        domain.SegmentMainTransit,
				Mode:           domain.ModeGroundStandard,
				DistanceKm:     2500,
				WeightKg:       4.0,
				EmissionFactor: 0.127,
				EmissionsKg:    1.27,
			},
		},
		Package: pkgdomain.PackageInfo{
			TrackingNumber: "1Z999AA10123456784",
			Carrier:        pkgdomain.CarrierUPS,
			WeightKg:       4.0,
		},
	}
}

func TestRedisResultRepository_SaveAndGet(t *testing.T) {
	repo, _ := setupResultRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleResult()))

	got, err := repo.Get(ctx, pkgdomain.CarrierUPS, "1Z999AA10123456784")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 1.544, got.TotalEmissionsKg)
	assert.Equal(t, domain.ModeGroundStandard, got.TransportMode)
	assert.Len(t, got.Breakdown, 1)
	assert.Equal(t, "1Z999AA10123456784", got.Package.TrackingNumber)
}

func TestRedisResultRepository_Get_Miss(t *testing.T) {
	repo, _ := setupResultRepo(t)

	got, err := repo.Get(context.Background(), pkgdomain.CarrierUPS, "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisResultRepository_Get_Expired(t *testing.T) {
	repo, mr := setupResultRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleResult()))

	mr.FastForward(2 * time.Hour)

	got, err := repo.Get(ctx, pkgdomain.CarrierUPS, "1Z999AA10123456784")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisResultRepository_KeyIsolation(t *testing.T) {
	repo, _ := setupResultRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleResult()))

	// Same tracking number under a different carrier is a separate entry.
	got, err := repo.Get(ctx, pkgdomain.CarrierFedEx, "1Z999AA10123456784")
	require.NoError(t, err)
	assert.Nil(t, got)
}
