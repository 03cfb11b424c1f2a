package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/folio-go-api/internal/dto"
	"github.com/noah-isme/folio-go-api/internal/models"
)

// GalleryService manages the public media gallery.
type GalleryService = ContentService[dto.GalleryRequest, dto.GalleryUpdateRequest, dto.GalleryResponse]

// NewGalleryService builds the gallery collection service.
func NewGalleryService(db *gorm.DB, recorder ActivityRecorder, validate *validator.Validate, logger zerolog.Logger) GalleryService {
	adapter := entityAdapter[models.GalleryItem, *models.GalleryItem, dto.GalleryRequest, dto.GalleryUpdateRequest, dto.GalleryResponse]{
		Audit: auditProfile{
			Noun:     "gallery item",
			Plural:   "gallery items",
			Category: models.CategoryGallery,
			Icon:     "image",
			Model:    "GalleryItem",
		},
		New: func(req dto.GalleryRequest) *models.GalleryItem {
			item := &models.GalleryItem{
				Title:       req.Title,
				ImageURL:    req.ImageURL,
				Category:    req.Category,
				Description: req.Description,
			}
			if item.Category == "" {
				item.Category = "general"
			}
			return item
		},
		Apply: func(item *models.GalleryItem, req dto.GalleryUpdateRequest) {
			assign(&item.Title, req.Title)
			assign(&item.ImageURL, req.ImageURL)
			assign(&item.Category, req.Category)
			assign(&item.Description, req.Description)
		},
		Out: func(item *models.GalleryItem) dto.GalleryResponse {
			return dto.GalleryResponse{
				ID:          item.ID,
				Title:       item.Title,
				ImageURL:    item.ImageURL,
				Category:    item.Category,
				Description: item.Description,
				Order:       item.DisplayOrder,
				CreatedAt:   item.CreatedAt,
				UpdatedAt:   item.UpdatedAt,
			}
		},
		Label: func(item *models.GalleryItem) string { return item.Title },
	}

	return newContentService(db, recorder, validate, adapter, logger)
}
