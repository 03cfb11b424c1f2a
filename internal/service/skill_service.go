package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/folio-go-api/internal/dto"
	"github.com/noah-isme/folio-go-api/internal/models"
)

// SkillService manages the skill groups shown on the landing page.
type SkillService = ContentService[dto.SkillRequest, dto.SkillUpdateRequest, dto.SkillResponse]

// NewSkillService builds the skill collection service.
func NewSkillService(db *gorm.DB, recorder ActivityRecorder, validate *validator.Validate, logger zerolog.Logger) SkillService {
	adapter := entityAdapter[models.Skill, *models.Skill, dto.SkillRequest, dto.SkillUpdateRequest, dto.SkillResponse]{
		Audit: auditProfile{
			Noun:     "skill",
			Plural:   "skills",
			Category: models.CategorySkills,
			Icon:     "code",
			Model:    "Skill",
		},
		New: func(req dto.SkillRequest) *models.Skill {
			return &models.Skill{
				Category: req.Category,
				Items:    req.Items,
			}
		},
		Apply: func(skill *models.Skill, req dto.SkillUpdateRequest) {
			assign(&skill.Category, req.Category)
			assign(&skill.Items, req.Items)
		},
		Out: func(skill *models.Skill) dto.SkillResponse {
			return dto.SkillResponse{
				ID:        skill.ID,
				Category:  skill.Category,
				Items:     skill.Items,
				Order:     skill.DisplayOrder,
				CreatedAt: skill.CreatedAt,
				UpdatedAt: skill.UpdatedAt,
			}
		},
		Label: func(skill *models.Skill) string { return skill.Category },
	}

	return newContentService(db, recorder, validate, adapter, logger)
}
