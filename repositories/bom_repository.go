package repositories

import (
	"context"
	"fmt"
	"gin-bomtracker/models"

	"gorm.io/gorm"
)

// BOMCounts is the per-project item tally shown in project listings.
type BOMCounts struct {
	ProjectID uint
	Total     int64
	Completed int64
}

type IBOMRepository interface {
	FindByProject(ctx context.Context, projectID uint) ([]models.ProjectBOMItem, error)
	FindByID(ctx context.Context, projectID uint, itemID uint) (*models.ProjectBOMItem, error)
	Create(ctx context.Context, item *models.ProjectBOMItem) error
	Update(ctx context.Context, projectID uint, itemID uint, updates map[string]interface{}) (*models.ProjectBOMItem, error)
	Delete(ctx context.Context, projectID uint, itemID uint) error
	NextSortOrder(ctx context.Context, projectID uint) (int, error)
	Reorder(ctx context.Context, projectID uint, itemIDs []uint) error
	CountsByProject(ctx context.Context) (map[uint]BOMCounts, error)
}

type BOMRepository struct {
	db *gorm.DB
}

func NewBOMRepository(db *gorm.DB) IBOMRepository {
	return &BOMRepository{db: db}
}

func (r *BOMRepository) FindByProject(ctx context.Context, projectID uint) ([]models.ProjectBOMItem, error) {
	var items []models.ProjectBOMItem
	result := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("sort_order ASC, id ASC").
		Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}
	return items, nil
}

func (r *BOMRepository) FindByID(ctx context.Context, projectID uint, itemID uint) (*models.ProjectBOMItem, error) {
	var item models.ProjectBOMItem
	result := r.db.WithContext(ctx).First(&item, "id = ? AND project_id = ?", itemID, projectID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &item, nil
}

func (r *BOMRepository) Create(ctx context.Context, item *models.ProjectBOMItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *BOMRepository) Update(ctx context.Context, projectID uint, itemID uint, updates map[string]interface{}) (*models.ProjectBOMItem, error) {
	result := r.db.WithContext(ctx).Model(&models.ProjectBOMItem{}).
		Where("id = ? AND project_id = ?", itemID, projectID).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(ctx, projectID, itemID)
}

func (r *BOMRepository) Delete(ctx context.Context, projectID uint, itemID uint) error {
	result := r.db.WithContext(ctx).Delete(&models.ProjectBOMItem{}, "id = ? AND project_id = ?", itemID, projectID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// NextSortOrder returns one past the highest sort_order in the project, or 0.
func (r *BOMRepository) NextSortOrder(ctx context.Context, projectID uint) (int, error) {
	var maxOrder int
	result := r.db.WithContext(ctx).Model(&models.ProjectBOMItem{}).
		Where("project_id = ?", projectID).
		Select("COALESCE(MAX(sort_order), -1)").
		Scan(&maxOrder)
	if result.Error != nil {
		return 0, result.Error
	}
	return maxOrder + 1, nil
}

// Reorder sets sort_order to each id's position in itemIDs. itemIDs must be
// exactly the project's items.
func (r *BOMRepository) Reorder(ctx context.Context, projectID uint, itemIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.ProjectBOMItem{}).
			Where("project_id = ?", projectID).
			Count(&count).Error; err != nil {
			return err
		}
		if count != int64(len(itemIDs)) {
			return fmt.Errorf("reorder project %d: got %d ids for %d items: %w", projectID, len(itemIDs), count, gorm.ErrRecordNotFound)
		}

		for position, itemID := range itemIDs {
			result := tx.Model(&models.ProjectBOMItem{}).
				Where("id = ? AND project_id = ?", itemID, projectID).
				Update("sort_order", position)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("reorder project %d: item %d: %w", projectID, itemID, gorm.ErrRecordNotFound)
			}
		}
		return nil
	})
}

func (r *BOMRepository) CountsByProject(ctx context.Context) (map[uint]BOMCounts, error) {
	var rows []BOMCounts
	result := r.db.WithContext(ctx).Model(&models.ProjectBOMItem{}).
		Select("project_id, COUNT(*) AS total, " +
			"SUM(CASE WHEN quantity_acquired >= quantity_needed THEN 1 ELSE 0 END) AS completed").
		Group("project_id").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	counts := make(map[uint]BOMCounts, len(rows))
	for _, row := range rows {
		counts[row.ProjectID] = row
	}
	return counts, nil
}
