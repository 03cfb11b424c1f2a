package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/folio-go-api/internal/dto"
	"github.com/noah-isme/folio-go-api/internal/models"
)

// FeedbackService manages testimonials. Approval is a moderation gate: only
// approved and visible entries reach the public testimonial surface.
type FeedbackService struct {
	ContentService[dto.FeedbackRequest, dto.FeedbackUpdateRequest, dto.FeedbackResponse]
	db *gorm.DB
}

// NewFeedbackService builds the testimonial collection service.
func NewFeedbackService(db *gorm.DB, recorder ActivityRecorder, validate *validator.Validate, logger zerolog.Logger) *FeedbackService {
	adapter := entityAdapter[models.Feedback, *models.Feedback, dto.FeedbackRequest, dto.FeedbackUpdateRequest, dto.FeedbackResponse]{
		Audit: auditProfile{
			Noun:     "testimonial",
			Plural:   "testimonials",
			Category: models.CategoryTestimonials,
			Icon:     "message-square",
			Model:    "Feedback",
		},
		New: func(req dto.FeedbackRequest) *models.Feedback {
			entry := &models.Feedback{
				Name:        req.Name,
				Role:        req.Role,
				Feedback:    req.Feedback,
				Type:        req.Type,
				ProjectName: req.ProjectName,
				Rating:      req.Rating,
				IsVisible:   true,
				Avatar:      req.Avatar,
			}
			if entry.Rating == 0 {
				entry.Rating = 5
			}
			if req.IsApproved != nil {
				entry.IsApproved = *req.IsApproved
			}
			if req.IsVisible != nil {
				entry.IsVisible = *req.IsVisible
			}
			return entry
		},
		Apply: func(entry *models.Feedback, req dto.FeedbackUpdateRequest) {
			assign(&entry.Name, req.Name)
			assign(&entry.Role, req.Role)
			assign(&entry.Feedback, req.Feedback)
			assign(&entry.Type, req.Type)
			assign(&entry.ProjectName, req.ProjectName)
			assign(&entry.Rating, req.Rating)
			assign(&entry.IsApproved, req.IsApproved)
			assign(&entry.IsVisible, req.IsVisible)
			assign(&entry.Avatar, req.Avatar)
		},
		Out:   feedbackResponse,
		Label: func(entry *models.Feedback) string { return entry.Name },
	}

	return &FeedbackService{
		ContentService: newContentService(db, recorder, validate, adapter, logger),
		db:             db,
	}
}

// ListApproved returns the testimonials cleared for public display, in
// display order.
func (s *FeedbackService) ListApproved(ctx context.Context) ([]dto.FeedbackResponse, error) {
	var entries []models.Feedback
	err := s.db.WithContext(ctx).
		Where("is_approved = ? AND is_visible = ?", true, true).
		Order("display_order ASC, created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("list approved testimonials: %w", err)
	}

	out := make([]dto.FeedbackResponse, 0, len(entries))
	for i := range entries {
		out = append(out, feedbackResponse(&entries[i]))
	}
	return out, nil
}

func feedbackResponse(entry *models.Feedback) dto.FeedbackResponse {
	return dto.FeedbackResponse{
		ID:          entry.ID,
		Name:        entry.Name,
		Role:        entry.Role,
		Feedback:    entry.Feedback,
		Type:        entry.Type,
		ProjectName: entry.ProjectName,
		Rating:      entry.Rating,
		IsApproved:  entry.IsApproved,
		IsVisible:   entry.IsVisible,
		Avatar:      entry.Avatar,
		Order:       entry.DisplayOrder,
		CreatedAt:   entry.CreatedAt,
		UpdatedAt:   entry.UpdatedAt,
	}
}
