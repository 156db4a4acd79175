package services

import (
	"context"
	"errors"
	"gin-bomtracker/dto"
	"gin-bomtracker/models"
	"gin-bomtracker/repositories"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type IBOMService interface {
	FindAll(ctx context.Context, projectID uint) ([]models.ProjectBOMItem, error)
	Create(ctx context.Context, projectID uint, input dto.CreateBOMItemInput) (*models.ProjectBOMItem, error)
	Update(ctx context.Context, projectID uint, itemID uint, input dto.UpdateBOMItemInput) (*models.ProjectBOMItem, error)
	Delete(ctx context.Context, projectID uint, itemID uint) error
	Reorder(ctx context.Context, projectID uint, itemIDs []uint) ([]models.ProjectBOMItem, error)
	Summary(ctx context.Context, projectID uint) (*dto.BOMSummaryResponse, error)
}

type BOMService struct {
	repository        repositories.IBOMRepository
	projectRepository repositories.IProjectRepository
	archiveRepository repositories.IArchiveRepository
}

func NewBOMService(
	repository repositories.IBOMRepository,
	projectRepository repositories.IProjectRepository,
	archiveRepository repositories.IArchiveRepository,
) IBOMService {
	return &BOMService{
		repository:        repository,
		projectRepository: projectRepository,
		archiveRepository: archiveRepository,
	}
}

func (s *BOMService) FindAll(ctx context.Context, projectID uint) ([]models.ProjectBOMItem, error) {
	if err := s.ensureProject(ctx, projectID); err != nil {
		return nil, err
	}
	return s.repository.FindByProject(ctx, projectID)
}

func (s *BOMService) Create(ctx context.Context, projectID uint, input dto.CreateBOMItemInput) (*models.ProjectBOMItem, error) {
	if err := s.ensureProject(ctx, projectID); err != nil {
		return nil, err
	}

	newItem := models.ProjectBOMItem{
		ProjectID:        projectID,
		Name:             strings.TrimSpace(input.Name),
		QuantityNeeded:   1,
		QuantityAcquired: 0,
		SourcingURL:      trimOptional(input.SourcingURL),
		STLFilename:      trimOptional(input.STLFilename),
		Remarks:          sanitizeText(input.Remarks),
	}
	if input.QuantityNeeded != nil {
		newItem.QuantityNeeded = *input.QuantityNeeded
	}
	if input.QuantityAcquired != nil {
		newItem.QuantityAcquired = *input.QuantityAcquired
	}
	if newItem.QuantityNeeded < 1 || newItem.QuantityAcquired < 0 {
		return nil, ErrInvalidQuantity
	}

	if input.UnitPrice != nil {
		if input.UnitPrice.IsNegative() {
			return nil, ErrInvalidUnitPrice
		}
		newItem.UnitPrice = decimal.NewNullDecimal(*input.UnitPrice)
	}

	if input.ArchiveID != nil {
		if err := s.ensureArchive(ctx, *input.ArchiveID); err != nil {
			return nil, err
		}
		newItem.ArchiveID = input.ArchiveID
	}

	if input.SortOrder != nil {
		newItem.SortOrder = *input.SortOrder
	} else {
		next, err := s.repository.NextSortOrder(ctx, projectID)
		if err != nil {
			return nil, err
		}
		newItem.SortOrder = next
	}

	if err := s.repository.Create(ctx, &newItem); err != nil {
		return nil, err
	}
	return &newItem, nil
}

func (s *BOMService) Update(ctx context.Context, projectID uint, itemID uint, input dto.UpdateBOMItemInput) (*models.ProjectBOMItem, error) {
	targetItem, err := s.repository.FindByID(ctx, projectID, itemID)
	if err != nil {
		return nil, bomError(err)
	}

	needed, acquired := targetItem.QuantityNeeded, targetItem.QuantityAcquired
	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = strings.TrimSpace(*input.Name)
	}
	if input.QuantityNeeded != nil {
		needed = *input.QuantityNeeded
		updates["quantity_needed"] = needed
	}
	if input.QuantityAcquired != nil {
		acquired = *input.QuantityAcquired
		updates["quantity_acquired"] = acquired
	}
	if needed < 1 || acquired < 0 {
		return nil, ErrInvalidQuantity
	}
	if input.UnitPrice != nil {
		if input.UnitPrice.IsNegative() {
			return nil, ErrInvalidUnitPrice
		}
		updates["unit_price"] = decimal.NewNullDecimal(*input.UnitPrice)
	}
	if input.SourcingURL != nil {
		updates["sourcing_url"] = trimOptional(input.SourcingURL)
	}
	if input.ArchiveID != nil {
		if err := s.ensureArchive(ctx, *input.ArchiveID); err != nil {
			return nil, err
		}
		updates["archive_id"] = *input.ArchiveID
	}
	if input.STLFilename != nil {
		updates["stl_filename"] = trimOptional(input.STLFilename)
	}
	if input.Remarks != nil {
		updates["remarks"] = sanitizeText(input.Remarks)
	}
	if input.SortOrder != nil {
		updates["sort_order"] = *input.SortOrder
	}

	if len(updates) == 0 {
		return targetItem, nil
	}

	updatedItem, err := s.repository.Update(ctx, projectID, itemID, updates)
	if err != nil {
		return nil, bomError(err)
	}
	return updatedItem, nil
}

func (s *BOMService) Delete(ctx context.Context, projectID uint, itemID uint) error {
	return bomError(s.repository.Delete(ctx, projectID, itemID))
}

func (s *BOMService) Reorder(ctx context.Context, projectID uint, itemIDs []uint) ([]models.ProjectBOMItem, error) {
	if err := s.ensureProject(ctx, projectID); err != nil {
		return nil, err
	}

	seen := make(map[uint]struct{}, len(itemIDs))
	for _, id := range itemIDs {
		if _, dup := seen[id]; dup {
			return nil, ErrReorderMismatch
		}
		seen[id] = struct{}{}
	}

	if err := s.repository.Reorder(ctx, projectID, itemIDs); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReorderMismatch
		}
		return nil, err
	}
	return s.repository.FindByProject(ctx, projectID)
}

func (s *BOMService) Summary(ctx context.Context, projectID uint) (*dto.BOMSummaryResponse, error) {
	items, err := s.FindAll(ctx, projectID)
	if err != nil {
		return nil, err
	}
	summary := summarize(items)
	return &summary, nil
}

// summarize totals a BOM. Items without a unit price add nothing to the costs.
func summarize(items []models.ProjectBOMItem) dto.BOMSummaryResponse {
	summary := dto.BOMSummaryResponse{
		TotalCost:     decimal.Zero,
		RemainingCost: decimal.Zero,
	}
	for _, item := range items {
		summary.TotalItems++
		summary.TotalQuantityNeeded += item.QuantityNeeded
		summary.TotalQuantityAcquired += item.QuantityAcquired
		if item.IsComplete() {
			summary.CompletedItems++
		}
		if !item.UnitPrice.Valid {
			continue
		}
		price := item.UnitPrice.Decimal
		summary.TotalCost = summary.TotalCost.Add(price.Mul(decimal.NewFromInt(int64(item.QuantityNeeded))))
		if missing := item.QuantityNeeded - item.QuantityAcquired; missing > 0 {
			summary.RemainingCost = summary.RemainingCost.Add(price.Mul(decimal.NewFromInt(int64(missing))))
		}
	}
	return summary
}

func (s *BOMService) ensureProject(ctx context.Context, projectID uint) error {
	_, err := s.projectRepository.FindByID(ctx, projectID)
	return projectError(err)
}

func (s *BOMService) ensureArchive(ctx context.Context, archiveID uint) error {
	_, err := s.archiveRepository.FindByID(ctx, archiveID)
	return archiveError(err)
}

func bomError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrBOMItemNotFound
	}
	return err
}
