package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/voodley/voodley-backend/internal/models"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

func (r *ProjectRepository) GetByID(id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Owner").First(&project, id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) GetByUserID(userID uint) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Where("user_id = ?", userID).Order("updated_at DESC").Find(&projects).Error
	return projects, err
}

// GetPublished returns publicly listed projects, most viewed first.
func (r *ProjectRepository) GetPublished(limit int) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Preload("Owner").
		Where("is_public = ? AND status = ?", true, models.StatusPublished).
		Order("views_count DESC").
		Limit(limit).
		Find(&projects).Error
	return projects, err
}

// Update persists owner-editable fields. views_count is omitted so a
// stale loaded value can never overwrite concurrent IncrementViews calls.
func (r *ProjectRepository) Update(project *models.Project) error {
	return r.db.Omit(clause.Associations, "views_count").Save(project).Error
}

func (r *ProjectRepository) Delete(id uint) error {
	return r.db.Delete(&models.Project{}, id).Error
}

// IncrementViews bumps views_count in the database so concurrent public
// reads never lose updates. updated_at is left untouched.
func (r *ProjectRepository) IncrementViews(id uint) error {
	return r.db.Model(&models.Project{}).Where("id = ?", id).
		UpdateColumn("views_count", gorm.Expr("views_count + ?", 1)).Error
}
