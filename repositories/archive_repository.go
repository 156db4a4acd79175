package repositories

import (
	"context"
	"gin-bomtracker/models"

	"gorm.io/gorm"
)

type IArchiveRepository interface {
	FindAll(ctx context.Context, projectID *uint) ([]models.PrintArchive, error)
	FindByID(ctx context.Context, archiveID uint) (*models.PrintArchive, error)
	Create(ctx context.Context, archive *models.PrintArchive) error
	Delete(ctx context.Context, archiveID uint) error
}

type ArchiveRepository struct {
	db *gorm.DB
}

func NewArchiveRepository(db *gorm.DB) IArchiveRepository {
	return &ArchiveRepository{db: db}
}

func (r *ArchiveRepository) FindAll(ctx context.Context, projectID *uint) ([]models.PrintArchive, error) {
	var archives []models.PrintArchive
	query := r.db.WithContext(ctx).Order("id DESC")
	if projectID != nil {
		query = query.Where("project_id = ?", *projectID)
	}
	if err := query.Find(&archives).Error; err != nil {
		return nil, err
	}
	return archives, nil
}

func (r *ArchiveRepository) FindByID(ctx context.Context, archiveID uint) (*models.PrintArchive, error) {
	var archive models.PrintArchive
	result := r.db.WithContext(ctx).First(&archive, "id = ?", archiveID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &archive, nil
}

func (r *ArchiveRepository) Create(ctx context.Context, archive *models.PrintArchive) error {
	return r.db.WithContext(ctx).Create(archive).Error
}

// Delete removes the archive and clears archive_id on BOM items that
// referenced it; the items themselves stay.
func (r *ArchiveRepository) Delete(ctx context.Context, archiveID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.ProjectBOMItem{}).
			Where("archive_id = ?", archiveID).
			Update("archive_id", nil).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.PrintArchive{}, "id = ?", archiveID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
