package infra

import (
	"fmt"
	"gin-bomtracker/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	// parents before children so foreign keys resolve
	if err := db.AutoMigrate(
		&models.Setting{},
		&models.User{},
		&models.Project{},
		&models.PrintArchive{},
		&models.ProjectBOMItem{},
		&models.RevokedToken{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
