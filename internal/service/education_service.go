package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/folio-go-api/internal/dto"
	"github.com/noah-isme/folio-go-api/internal/models"
)

// EducationService manages degrees, certifications and courses.
type EducationService = ContentService[dto.EducationRequest, dto.EducationUpdateRequest, dto.EducationResponse]

// NewEducationService builds the education collection service.
func NewEducationService(db *gorm.DB, recorder ActivityRecorder, validate *validator.Validate, logger zerolog.Logger) EducationService {
	adapter := entityAdapter[models.Education, *models.Education, dto.EducationRequest, dto.EducationUpdateRequest, dto.EducationResponse]{
		Audit: auditProfile{
			Noun:     "education entry",
			Plural:   "education entries",
			Category: models.CategoryEducation,
			Icon:     "graduation-cap",
			Model:    "Education",
		},
		New: func(req dto.EducationRequest) *models.Education {
			entry := &models.Education{
				Institution: req.Institution,
				Degree:      req.Degree,
				Period:      req.Period,
				Description: req.Description,
				Type:        req.Type,
			}
			if entry.Type == "" {
				entry.Type = "degree"
			}
			return entry
		},
		Apply: func(entry *models.Education, req dto.EducationUpdateRequest) {
			assign(&entry.Institution, req.Institution)
			assign(&entry.Degree, req.Degree)
			assign(&entry.Period, req.Period)
			assign(&entry.Description, req.Description)
			assign(&entry.Type, req.Type)
		},
		Out: func(entry *models.Education) dto.EducationResponse {
			return dto.EducationResponse{
				ID:          entry.ID,
				Institution: entry.Institution,
				Degree:      entry.Degree,
				Period:      entry.Period,
				Description: entry.Description,
				Type:        entry.Type,
				Order:       entry.DisplayOrder,
				CreatedAt:   entry.CreatedAt,
				UpdatedAt:   entry.UpdatedAt,
			}
		},
		Label: func(entry *models.Education) string { return entry.Institution },
	}

	return newContentService(db, recorder, validate, adapter, logger)
}
