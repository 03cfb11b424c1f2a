package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/noah-isme/folio-go-api/internal/models"
)

// ActivityFilter narrows audit trail queries.
type ActivityFilter struct {
	Category  string
	User      string
	Search    string
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	PageSize  int
}

// ActivityRepository persists audit trail records.
type ActivityRepository interface {
	Create(ctx context.Context, record *models.ActivityLog) error
	List(ctx context.Context, filter ActivityFilter) ([]models.ActivityLog, int64, error)
	SoftDelete(ctx context.Context, id uint) error
	Facets(ctx context.Context) (categories []string, users []string, err error)
}

type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository constructs the activity repository.
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, record *models.ActivityLog) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *activityRepository) List(ctx context.Context, filter ActivityFilter) ([]models.ActivityLog, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.ActivityLog{}).
		Where("is_visible = ?", true)

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	if filter.User != "" {
		// "user" is reserved in postgres, keep it quoted in raw fragments.
		query = query.Where(`"user" = ?`, filter.User)
	}

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(action) LIKE ? OR LOWER(item) LIKE ? OR LOWER(details) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	if filter.StartDate != nil {
		query = query.Where("created_at >= ?", *filter.StartDate)
	}

	if filter.EndDate != nil {
		query = query.Where("created_at <= ?", *filter.EndDate)
	}

	countQuery := query.Session(&gorm.Session{})
	var total int64
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.PageSize > 0 {
		page := filter.Page
		if page <= 0 {
			page = 1
		}
		offset := (page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	var records []models.ActivityLog
	if err := query.Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

func (r *activityRepository) SoftDelete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).
		Model(&models.ActivityLog{}).
		Where("id = ? AND is_visible = ?", id, true).
		Update("is_visible", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *activityRepository) Facets(ctx context.Context) ([]string, []string, error) {
	var categories []string
	if err := r.db.WithContext(ctx).
		Model(&models.ActivityLog{}).
		Where("is_visible = ?", true).
		Distinct().
		Order("category ASC").
		Pluck("category", &categories).Error; err != nil {
		return nil, nil, err
	}

	var users []string
	if err := r.db.WithContext(ctx).
		Model(&models.ActivityLog{}).
		Where("is_visible = ?", true).
		Distinct().
		Order(`"user" ASC`).
		Pluck("user", &users).Error; err != nil {
		return nil, nil, err
	}

	return categories, users, nil
}
