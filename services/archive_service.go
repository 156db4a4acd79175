package services

import (
	"context"
	"errors"
	"gin-bomtracker/constants"
	"gin-bomtracker/dto"
	"gin-bomtracker/models"
	"gin-bomtracker/repositories"
	"strings"

	"gorm.io/gorm"
)

type IArchiveService interface {
	FindAll(ctx context.Context, projectID *uint) ([]models.PrintArchive, error)
	FindByID(ctx context.Context, archiveID uint) (*models.PrintArchive, error)
	Create(ctx context.Context, input dto.CreateArchiveInput) (*models.PrintArchive, error)
	Delete(ctx context.Context, archiveID uint) error
}

type ArchiveService struct {
	repository        repositories.IArchiveRepository
	projectRepository repositories.IProjectRepository
}

func NewArchiveService(repository repositories.IArchiveRepository, projectRepository repositories.IProjectRepository) IArchiveService {
	return &ArchiveService{repository: repository, projectRepository: projectRepository}
}

func (s *ArchiveService) FindAll(ctx context.Context, projectID *uint) ([]models.PrintArchive, error) {
	return s.repository.FindAll(ctx, projectID)
}

func (s *ArchiveService) FindByID(ctx context.Context, archiveID uint) (*models.PrintArchive, error) {
	archive, err := s.repository.FindByID(ctx, archiveID)
	if err != nil {
		return nil, archiveError(err)
	}
	return archive, nil
}

func (s *ArchiveService) Create(ctx context.Context, input dto.CreateArchiveInput) (*models.PrintArchive, error) {
	if input.ProjectID != nil {
		if _, err := s.projectRepository.FindByID(ctx, *input.ProjectID); err != nil {
			return nil, projectError(err)
		}
	}

	status := input.Status
	if status == "" {
		status = constants.ArchiveStatusCompleted
	}

	archive := models.PrintArchive{
		Filename:  strings.TrimSpace(input.Filename),
		PrintName: trimOptional(input.PrintName),
		ProjectID: input.ProjectID,
		Status:    status,
	}
	if err := s.repository.Create(ctx, &archive); err != nil {
		return nil, err
	}
	return &archive, nil
}

// Delete keeps BOM items that referenced the archive; their archive_id is cleared.
func (s *ArchiveService) Delete(ctx context.Context, archiveID uint) error {
	return archiveError(s.repository.Delete(ctx, archiveID))
}

func archiveError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrArchiveNotFound
	}
	return err
}
