package models

import (
	"time"
)

// Project lifecycle statuses
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

const DefaultProjectName = "Untitled Project"

// JSONMap holds the client-owned project document. The backend never
// interprets its contents.
type JSONMap map[string]interface{}

type Project struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	UserID          uint      `json:"user_id" gorm:"not null;index"`
	Name            string    `json:"name" gorm:"not null;default:'Untitled Project'"`
	Description     string    `json:"description"`
	ThumbnailURL    string    `json:"thumbnail_url"`
	ProjectData     JSONMap   `json:"project_data" gorm:"type:json;serializer:json"`
	Status          string    `json:"status" gorm:"type:varchar(16);not null;default:draft"`
	IsPublic        bool      `json:"is_public" gorm:"not null;default:false"`
	ViewsCount      int       `json:"views_count" gorm:"not null;default:0"`
	TokensUsed      int       `json:"tokens_used" gorm:"not null;default:0"`
	DurationSeconds *int      `json:"duration_seconds"`
	Owner           *User     `json:"-" gorm:"foreignKey:UserID"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type CreateProjectRequest struct {
	Name        string  `json:"name" validate:"omitempty,min=1,max=255"`
	Description string  `json:"description"`
	ProjectData JSONMap `json:"project_data"`
}

type UpdateProjectRequest struct {
	Name            *string  `json:"name" validate:"omitempty,min=1,max=255"`
	Description     *string  `json:"description"`
	ThumbnailURL    *string  `json:"thumbnail_url" validate:"omitempty,url"`
	ProjectData     *JSONMap `json:"project_data"`
	Status          *string  `json:"status" validate:"omitempty,oneof=draft published archived"`
	IsPublic        *bool    `json:"is_public"`
	DurationSeconds *int     `json:"duration_seconds" validate:"omitempty,gte=0"`
}

// ProjectOwner is the owner projection attached to public reads.
type ProjectOwner struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

type ProjectResponse struct {
	Project
	User ProjectOwner `json:"user"`
}

func NewProjectResponse(p Project) ProjectResponse {
	resp := ProjectResponse{Project: p}
	if p.Owner != nil {
		resp.User = ProjectOwner{
			ID:        p.Owner.ID,
			Name:      p.Owner.Name,
			AvatarURL: p.Owner.AvatarURL,
		}
	}
	resp.Owner = nil
	return resp
}
