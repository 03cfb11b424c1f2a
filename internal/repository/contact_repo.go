package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/folio-go-api/internal/models"
)

// Contact list boxes.
const (
	ContactBoxAll      = "all"
	ContactBoxUnread   = "unread"
	ContactBoxStarred  = "starred"
	ContactBoxArchived = "archived"
	ContactBoxInbox    = "inbox"
)

// ContactFilter narrows triage queries over inbound messages.
type ContactFilter struct {
	Box      string
	Page     int
	PageSize int
}

// ContactRepository persists inbound visitor messages.
type ContactRepository interface {
	Create(ctx context.Context, message *models.ContactMessage) error
	GetByID(ctx context.Context, id uint) (models.ContactMessage, error)
	Save(ctx context.Context, message *models.ContactMessage) error
	List(ctx context.Context, filter ContactFilter) ([]models.ContactMessage, int64, error)
}

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository constructs a repository backed by GORM.
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, message *models.ContactMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *contactRepository) GetByID(ctx context.Context, id uint) (models.ContactMessage, error) {
	var message models.ContactMessage
	err := r.db.WithContext(ctx).First(&message, id).Error
	return message, err
}

func (r *contactRepository) Save(ctx context.Context, message *models.ContactMessage) error {
	return r.db.WithContext(ctx).Save(message).Error
}

func (r *contactRepository) List(ctx context.Context, filter ContactFilter) ([]models.ContactMessage, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.ContactMessage{})

	switch filter.Box {
	case ContactBoxUnread:
		query = query.Where("read = ?", false)
	case ContactBoxStarred:
		query = query.Where("starred = ?", true)
	case ContactBoxArchived:
		query = query.Where("archived = ?", true)
	case ContactBoxInbox:
		query = query.Where("archived = ?", false)
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

	var messages []models.ContactMessage
	if err := query.Order("created_at DESC").Find(&messages).Error; err != nil {
		return nil, 0, err
	}

	return messages, total, nil
}
