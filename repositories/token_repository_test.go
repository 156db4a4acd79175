package repositories

import (
	"context"
	"gin-bomtracker/models"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("revoke then check", func(t *testing.T) {
		repo := NewTokenRepository(setupTestDB(t))

		revoked, err := repo.IsRevoked(ctx, "jti-1")
		require.NoError(t, err)
		assert.False(t, revoked)

		require.NoError(t, repo.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)))
		require.NoError(t, repo.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)))

		revoked, err = repo.IsRevoked(ctx, "jti-1")
		require.NoError(t, err)
		assert.True(t, revoked)
	})

	t.Run("clean expired keeps live entries", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewTokenRepository(db)
		require.NoError(t, repo.Revoke(ctx, "old", time.Now().Add(-time.Minute)))
		require.NoError(t, repo.Revoke(ctx, "live", time.Now().Add(time.Hour)))

		require.NoError(t, repo.CleanExpired(ctx))

		var count int64
		require.NoError(t, db.Model(&models.RevokedToken{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
		revoked, err := repo.IsRevoked(ctx, "live")
		require.NoError(t, err)
		assert.True(t, revoked)
	})
}

func TestRedisTokenRepository(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	repo := NewRedisTokenRepository(rdb)

	require.NoError(t, repo.Revoke(ctx, "jti-1", time.Now().Add(time.Minute)))

	revoked, err := repo.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)
	assert.True(t, mr.Exists(revokedTokenKeyPrefix+"jti-1"))

	mr.FastForward(2 * time.Minute)

	revoked, err = repo.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
	assert.NoError(t, repo.CleanExpired(ctx))
}

func TestRedisTokenRepository_ExpiredTokenIsNotStored(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	repo := NewRedisTokenRepository(rdb)

	require.NoError(t, repo.Revoke(ctx, "stale", time.Now().Add(-time.Second)))

	assert.False(t, mr.Exists(revokedTokenKeyPrefix+"stale"))
}
