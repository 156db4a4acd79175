package repositories

import (
	"context"
	"gin-bomtracker/models"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ITokenRepository remembers revoked access tokens until they expire.
type ITokenRepository interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
	CleanExpired(ctx context.Context) error
}

type TokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) ITokenRepository {
	return &TokenRepository{db: db}
}

func (r *TokenRepository) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	revoked := models.RevokedToken{
		TokenID:   tokenID,
		ExpiresAt: expiresAt.Unix(),
	}
	// revoking twice is not an error
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&revoked)
	return result.Error
}

func (r *TokenRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	// runs on every authenticated request; a miss is the normal case
	var revoked []models.RevokedToken
	result := r.db.WithContext(ctx).Where("token_id = ?", tokenID).Limit(1).Find(&revoked)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *TokenRepository) CleanExpired(ctx context.Context) error {
	now := time.Now().Unix()
	return r.db.WithContext(ctx).Where("expires_at < ?", now).Delete(&models.RevokedToken{}).Error
}

const revokedTokenKeyPrefix = "revoked_token:"

// RedisTokenRepository keeps revocations as keys that expire with the token.
type RedisTokenRepository struct {
	rdb *redis.Client
}

func NewRedisTokenRepository(rdb *redis.Client) ITokenRepository {
	return &RedisTokenRepository{rdb: rdb}
}

func (r *RedisTokenRepository) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return r.rdb.Set(ctx, revokedTokenKeyPrefix+tokenID, expiresAt.Unix(), ttl).Err()
}

func (r *RedisTokenRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.rdb.Exists(ctx, revokedTokenKeyPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// CleanExpired is a no-op; redis drops the keys on TTL.
func (r *RedisTokenRepository) CleanExpired(ctx context.Context) error {
	return nil
}
