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

type IProjectService interface {
	FindAll(ctx context.Context, status string) ([]dto.ProjectResponse, error)
	FindByID(ctx context.Context, projectID uint) (*dto.ProjectDetailResponse, error)
	Create(ctx context.Context, input dto.CreateProjectInput) (*models.Project, error)
	Update(ctx context.Context, projectID uint, input dto.UpdateProjectInput) (*models.Project, error)
	Delete(ctx context.Context, projectID uint) error
}

type ProjectService struct {
	repository    repositories.IProjectRepository
	bomRepository repositories.IBOMRepository
}

func NewProjectService(repository repositories.IProjectRepository, bomRepository repositories.IBOMRepository) IProjectService {
	return &ProjectService{repository: repository, bomRepository: bomRepository}
}

func (s *ProjectService) FindAll(ctx context.Context, status string) ([]dto.ProjectResponse, error) {
	projects, err := s.repository.FindAll(ctx, status)
	if err != nil {
		return nil, err
	}
	counts, err := s.bomRepository.CountsByProject(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ProjectResponse, 0, len(projects))
	for _, project := range projects {
		c := counts[project.ID]
		responses = append(responses, dto.ProjectResponse{
			Project:      project,
			BOMTotal:     c.Total,
			BOMCompleted: c.Completed,
		})
	}
	return responses, nil
}

func (s *ProjectService) FindByID(ctx context.Context, projectID uint) (*dto.ProjectDetailResponse, error) {
	project, err := s.repository.FindByID(ctx, projectID)
	if err != nil {
		return nil, projectError(err)
	}
	items, err := s.bomRepository.FindByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return &dto.ProjectDetailResponse{
		Project:    *project,
		BOMSummary: summarize(items),
	}, nil
}

func (s *ProjectService) Create(ctx context.Context, input dto.CreateProjectInput) (*models.Project, error) {
	status := input.Status
	if status == "" {
		status = constants.ProjectStatusActive
	}

	newProject := models.Project{
		Name:        strings.TrimSpace(input.Name),
		Description: sanitizeText(input.Description),
		Color:       trimOptional(input.Color),
		Status:      status,
		Notes:       sanitizeText(input.Notes),
	}
	if err := s.repository.Create(ctx, &newProject); err != nil {
		return nil, err
	}
	return &newProject, nil
}

func (s *ProjectService) Update(ctx context.Context, projectID uint, input dto.UpdateProjectInput) (*models.Project, error) {
	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		updates["description"] = sanitizeText(input.Description)
	}
	if input.Color != nil {
		updates["color"] = trimOptional(input.Color)
	}
	if input.Status != nil {
		updates["status"] = *input.Status
	}
	if input.Notes != nil {
		updates["notes"] = sanitizeText(input.Notes)
	}

	if len(updates) == 0 {
		project, err := s.repository.FindByID(ctx, projectID)
		return project, projectError(err)
	}

	project, err := s.repository.Update(ctx, projectID, updates)
	if err != nil {
		return nil, projectError(err)
	}
	return project, nil
}

func (s *ProjectService) Delete(ctx context.Context, projectID uint) error {
	return projectError(s.repository.Delete(ctx, projectID))
}

func projectError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrProjectNotFound
	}
	return err
}
