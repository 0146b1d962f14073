package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/voodley/voodley-backend/internal/models"
	"github.com/voodley/voodley-backend/internal/repository"
)

// PublicListLimit caps the public project listing.
const PublicListLimit = 20

type ProjectService struct {
	projectRepo *repository.ProjectRepository
}

func NewProjectService(projectRepo *repository.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

func (s *ProjectService) ListOwned(userID uint) ([]models.Project, error) {
	return s.projectRepo.GetByUserID(userID)
}

func (s *ProjectService) ListPublic() ([]models.ProjectResponse, error) {
	projects, err := s.projectRepo.GetPublished(PublicListLimit)
	if err != nil {
		return nil, err
	}

	responses := make([]models.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, models.NewProjectResponse(p))
	}
	return responses, nil
}

// Get returns a project readable by the viewer. viewerID 0 means
// unauthenticated. A qualifying public read by a non-owner counts a view.
func (s *ProjectService) Get(id uint, viewerID uint) (*models.ProjectResponse, error) {
	project, err := s.projectRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	if !project.IsPublic && project.UserID != viewerID {
		return nil, ErrAccessDenied
	}

	if project.IsPublic && project.UserID != viewerID {
		if err := s.projectRepo.IncrementViews(project.ID); err != nil {
			return nil, err
		}
		project.ViewsCount++
	}

	resp := models.NewProjectResponse(*project)
	return &resp, nil
}

func (s *ProjectService) Create(userID uint, req models.CreateProjectRequest) (*models.Project, error) {
	name := req.Name
	if name == "" {
		name = models.DefaultProjectName
	}

	data := req.ProjectData
	if data == nil {
		data = models.JSONMap{}
	}

	project := &models.Project{
		UserID:      userID,
		Name:        name,
		Description: req.Description,
		ProjectData: data,
		Status:      models.StatusDraft,
		IsPublic:    false,
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, err
	}

	return project, nil
}

// Update applies only the fields present in the request. Ownership is
// required regardless of visibility.
func (s *ProjectService) Update(id uint, userID uint, req models.UpdateProjectRequest) (*models.Project, error) {
	project, err := s.getOwned(id, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.ThumbnailURL != nil {
		project.ThumbnailURL = *req.ThumbnailURL
	}
	if req.ProjectData != nil {
		project.ProjectData = *req.ProjectData
	}
	if req.Status != nil {
		project.Status = *req.Status
	}
	if req.IsPublic != nil {
		project.IsPublic = *req.IsPublic
	}
	if req.DurationSeconds != nil {
		project.DurationSeconds = req.DurationSeconds
	}

	if err := s.projectRepo.Update(project); err != nil {
		return nil, err
	}

	return project, nil
}

func (s *ProjectService) Delete(id uint, userID uint) error {
	project, err := s.getOwned(id, userID)
	if err != nil {
		return err
	}

	return s.projectRepo.Delete(project.ID)
}

func (s *ProjectService) getOwned(id uint, userID uint) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	if project.UserID != userID {
		return nil, ErrAccessDenied
	}

	return project, nil
}
