package models

import "time"

// RevokedToken is a logged-out access token, keyed by its jti claim.
// Rows past ExpiresAt are safe to purge.
type RevokedToken struct {
	ID        uint   `gorm:"primaryKey"`
	TokenID   string `gorm:"size:64;not null;uniqueIndex"`
	ExpiresAt int64  `gorm:"not null;index"`
	CreatedAt time.Time
}
