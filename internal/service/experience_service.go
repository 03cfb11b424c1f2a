package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/folio-go-api/internal/dto"
	"github.com/noah-isme/folio-go-api/internal/models"
)

// ExperienceService manages the professional history entries.
type ExperienceService = ContentService[dto.ExperienceRequest, dto.ExperienceUpdateRequest, dto.ExperienceResponse]

// NewExperienceService builds the experience collection service.
func NewExperienceService(db *gorm.DB, recorder ActivityRecorder, validate *validator.Validate, logger zerolog.Logger) ExperienceService {
	adapter := entityAdapter[models.Experience, *models.Experience, dto.ExperienceRequest, dto.ExperienceUpdateRequest, dto.ExperienceResponse]{
		Audit: auditProfile{
			Noun:     "experience",
			Plural:   "experience entries",
			Category: models.CategoryExperience,
			Icon:     "briefcase",
			Model:    "Experience",
		},
		New: func(req dto.ExperienceRequest) *models.Experience {
			return &models.Experience{
				Company:          req.Company,
				Position:         req.Position,
				Period:           req.Period,
				Description:      req.Description,
				Achievements:     req.Achievements,
				Technologies:     req.Technologies,
				Responsibilities: req.Responsibilities,
			}
		},
		Apply: func(exp *models.Experience, req dto.ExperienceUpdateRequest) {
			assign(&exp.Company, req.Company)
			assign(&exp.Position, req.Position)
			assign(&exp.Period, req.Period)
			assign(&exp.Description, req.Description)
			assign(&exp.Achievements, req.Achievements)
			assign(&exp.Technologies, req.Technologies)
			assign(&exp.Responsibilities, req.Responsibilities)
		},
		Out: func(exp *models.Experience) dto.ExperienceResponse {
			return dto.ExperienceResponse{
				ID:               exp.ID,
				Company:          exp.Company,
				Position:         exp.Position,
				Period:           exp.Period,
				Description:      exp.Description,
				Achievements:     exp.Achievements,
				Technologies:     exp.Technologies,
				Responsibilities: exp.Responsibilities,
				Order:            exp.DisplayOrder,
				CreatedAt:        exp.CreatedAt,
				UpdatedAt:        exp.UpdatedAt,
			}
		},
		Label: func(exp *models.Experience) string { return exp.Company },
	}

	return newContentService(db, recorder, validate, adapter, logger)
}
