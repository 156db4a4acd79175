package repositories

import (
	"context"
	"gin-bomtracker/models"

	"gorm.io/gorm"
)

type IProjectRepository interface {
	FindAll(ctx context.Context, status string) ([]models.Project, error)
	FindByID(ctx context.Context, projectID uint) (*models.Project, error)
	Create(ctx context.Context, project *models.Project) error
	Update(ctx context.Context, projectID uint, updates map[string]interface{}) (*models.Project, error)
	Delete(ctx context.Context, projectID uint) error
}

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) IProjectRepository {
	return &ProjectRepository{db: db}
}

// FindAll lists projects, optionally filtered by status.
func (r *ProjectRepository) FindAll(ctx context.Context, status string) ([]models.Project, error) {
	var projects []models.Project
	query := r.db.WithContext(ctx).Order("id ASC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, projectID uint) (*models.Project, error) {
	var project models.Project
	result := r.db.WithContext(ctx).First(&project, "id = ?", projectID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &project, nil
}

func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *ProjectRepository) Update(ctx context.Context, projectID uint, updates map[string]interface{}) (*models.Project, error) {
	result := r.db.WithContext(ctx).Model(&models.Project{}).
		Where("id = ?", projectID).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(ctx, projectID)
}

// Delete removes the project together with its BOM items and detaches its
// archives. The explicit statements keep the same result on databases
// where foreign keys are not enforced.
func (r *ProjectRepository) Delete(ctx context.Context, projectID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&models.ProjectBOMItem{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.PrintArchive{}).
			Where("project_id = ?", projectID).
			Update("project_id", nil).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Project{}, "id = ?", projectID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
