package repositories

import (
	"context"
	"gin-bomtracker/constants"
	"gin-bomtracker/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestAuthRepository_Settings(t *testing.T) {
	ctx := context.Background()
	repo := NewAuthRepository(setupTestDB(t))

	enabled, err := repo.GetBool(ctx, constants.SettingAuthEnabled)
	require.NoError(t, err)
	assert.False(t, enabled)

	require.NoError(t, repo.SetBools(ctx, map[string]bool{constants.SettingAuthEnabled: true}))
	enabled, err = repo.GetBool(ctx, constants.SettingAuthEnabled)
	require.NoError(t, err)
	assert.True(t, enabled)

	require.NoError(t, repo.SetBools(ctx, map[string]bool{constants.SettingAuthEnabled: false}))
	enabled, err = repo.GetBool(ctx, constants.SettingAuthEnabled)
	require.NoError(t, err)
	assert.False(t, enabled)
}

func TestAuthRepository_CreateAdminAndEnableIsAtomic(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewAuthRepository(db)
	require.NoError(t, db.Create(&models.User{Username: "taken", PasswordHash: "x", Role: "user", IsActive: true}).Error)

	err := repo.CreateAdminAndEnable(ctx, &models.User{Username: "taken", PasswordHash: "y", Role: "admin", IsActive: true})

	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	enabled, err := repo.GetBool(ctx, constants.SettingAuthEnabled)
	require.NoError(t, err)
	assert.False(t, enabled)

	require.NoError(t, repo.CreateAdminAndEnable(ctx, &models.User{Username: "root", PasswordHash: "y", Role: "admin", IsActive: true}))
	enabled, err = repo.GetBool(ctx, constants.SettingAuthEnabled)
	require.NoError(t, err)
	assert.True(t, enabled)
}
