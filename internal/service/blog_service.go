package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/folio-go-api/internal/dto"
	"github.com/noah-isme/folio-go-api/internal/models"
)

// BlogService manages published articles. Beyond the uniform collection
// contract it resolves posts by slug for the public site.
type BlogService struct {
	ContentService[dto.BlogRequest, dto.BlogUpdateRequest, dto.BlogResponse]
	db *gorm.DB
}

// NewBlogService builds the blog collection service. Post content is passed
// through an HTML sanitizer on every write; slugs are unique at the store
// level.
func NewBlogService(db *gorm.DB, recorder ActivityRecorder, validate *validator.Validate, logger zerolog.Logger) *BlogService {
	sanitizer := bluemonday.UGCPolicy()

	adapter := entityAdapter[models.BlogPost, *models.BlogPost, dto.BlogRequest, dto.BlogUpdateRequest, dto.BlogResponse]{
		Audit: auditProfile{
			Noun:     "blog post",
			Plural:   "blog posts",
			Category: models.CategoryBlog,
			Icon:     "file-text",
			Model:    "BlogPost",
		},
		New: func(req dto.BlogRequest) *models.BlogPost {
			return &models.BlogPost{
				Title:        req.Title,
				Slug:         req.Slug,
				Description:  req.Description,
				Content:      sanitizer.Sanitize(req.Content),
				ReadTime:     req.ReadTime,
				PublishedAt:  req.PublishedAt,
				AuthorName:   req.AuthorName,
				AuthorAvatar: req.AuthorAvatar,
				Tags:         req.Tags,
			}
		},
		Apply: func(post *models.BlogPost, req dto.BlogUpdateRequest) {
			assign(&post.Title, req.Title)
			assign(&post.Slug, req.Slug)
			assign(&post.Description, req.Description)
			if req.Content != nil {
				post.Content = sanitizer.Sanitize(*req.Content)
			}
			assign(&post.ReadTime, req.ReadTime)
			assign(&post.PublishedAt, req.PublishedAt)
			assign(&post.AuthorName, req.AuthorName)
			assign(&post.AuthorAvatar, req.AuthorAvatar)
			assign(&post.Tags, req.Tags)
		},
		Out:   blogResponse,
		Label: func(post *models.BlogPost) string { return post.Title },
	}

	return &BlogService{
		ContentService: newContentService(db, recorder, validate, adapter, logger),
		db:             db,
	}
}

// GetBySlug resolves a single post by its public slug.
func (s *BlogService) GetBySlug(ctx context.Context, slug string) (dto.BlogResponse, error) {
	var post models.BlogPost
	err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.BlogResponse{}, ErrNotFound
		}
		return dto.BlogResponse{}, fmt.Errorf("get blog post by slug %q: %w", slug, err)
	}
	return blogResponse(&post), nil
}

func blogResponse(post *models.BlogPost) dto.BlogResponse {
	return dto.BlogResponse{
		ID:           post.ID,
		Title:        post.Title,
		Slug:         post.Slug,
		Description:  post.Description,
		Content:      post.Content,
		ReadTime:     post.ReadTime,
		PublishedAt:  post.PublishedAt,
		AuthorName:   post.AuthorName,
		AuthorAvatar: post.AuthorAvatar,
		Tags:         post.Tags,
		Order:        post.DisplayOrder,
		CreatedAt:    post.CreatedAt,
		UpdatedAt:    post.UpdatedAt,
	}
}
