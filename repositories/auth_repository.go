package repositories

import (
	"context"
	"errors"
	"gin-bomtracker/constants"
	"gin-bomtracker/models"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IAuthRepository stores the auth switches kept in the settings table.
type IAuthRepository interface {
	GetBool(ctx context.Context, key string) (bool, error)
	SetBools(ctx context.Context, values map[string]bool) error
	CreateAdminAndEnable(ctx context.Context, admin *models.User) error
}

type AuthRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) IAuthRepository {
	return &AuthRepository{db: db}
}

// GetBool returns false for a missing key.
func (r *AuthRepository) GetBool(ctx context.Context, key string) (bool, error) {
	var setting models.Setting
	result := r.db.WithContext(ctx).First(&setting, "key = ?", key)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, result.Error
	}
	return strconv.ParseBool(setting.Value)
}

func (r *AuthRepository) SetBools(ctx context.Context, values map[string]bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return upsertBools(tx, values)
	})
}

// CreateAdminAndEnable inserts the first admin and turns auth on in one transaction.
func (r *AuthRepository) CreateAdminAndEnable(ctx context.Context, admin *models.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(admin).Error; err != nil {
			return err
		}
		return upsertBools(tx, map[string]bool{
			constants.SettingAuthEnabled:    true,
			constants.SettingSetupCompleted: true,
		})
	})
}

func upsertBools(tx *gorm.DB, values map[string]bool) error {
	for key, value := range values {
		setting := models.Setting{Key: key, Value: strconv.FormatBool(value)}
		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&setting)
		if result.Error != nil {
			return result.Error
		}
	}
	return nil
}
