package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/folio-go-api/internal/dto"
	"github.com/noah-isme/folio-go-api/internal/models"
)

// ProjectService manages the showcased projects.
type ProjectService = ContentService[dto.ProjectRequest, dto.ProjectUpdateRequest, dto.ProjectResponse]

// NewProjectService builds the project collection service.
func NewProjectService(db *gorm.DB, recorder ActivityRecorder, validate *validator.Validate, logger zerolog.Logger) ProjectService {
	adapter := entityAdapter[models.Project, *models.Project, dto.ProjectRequest, dto.ProjectUpdateRequest, dto.ProjectResponse]{
		Audit: auditProfile{
			Noun:     "project",
			Plural:   "projects",
			Category: models.CategoryProjects,
			Icon:     "folder",
			Model:    "Project",
		},
		New: func(req dto.ProjectRequest) *models.Project {
			project := &models.Project{
				Title:       req.Title,
				Description: req.Description,
				ImageURL:    req.ImageURL,
				GithubURL:   req.GithubURL,
				LiveURL:     req.LiveURL,
				Tags:        req.Tags,
				Featured:    true,
			}
			if req.Featured != nil {
				project.Featured = *req.Featured
			}
			return project
		},
		Apply: func(project *models.Project, req dto.ProjectUpdateRequest) {
			assign(&project.Title, req.Title)
			assign(&project.Description, req.Description)
			assign(&project.ImageURL, req.ImageURL)
			assign(&project.GithubURL, req.GithubURL)
			assign(&project.LiveURL, req.LiveURL)
			assign(&project.Tags, req.Tags)
			assign(&project.Featured, req.Featured)
		},
		Out: func(project *models.Project) dto.ProjectResponse {
			return dto.ProjectResponse{
				ID:          project.ID,
				Title:       project.Title,
				Description: project.Description,
				ImageURL:    project.ImageURL,
				GithubURL:   project.GithubURL,
				LiveURL:     project.LiveURL,
				Tags:        project.Tags,
				Featured:    project.Featured,
				Order:       project.DisplayOrder,
				CreatedAt:   project.CreatedAt,
				UpdatedAt:   project.UpdatedAt,
			}
		},
		Label: func(project *models.Project) string { return project.Title },
	}

	return newContentService(db, recorder, validate, adapter, logger)
}
