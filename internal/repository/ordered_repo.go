package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/folio-go-api/internal/models"
)

// OrderedRepo manages a collection of documents carrying an integer display
// position. One instance is created per content type; the ordering rules are
// identical across all of them:
//
//   - Create appends at max(display_order)+1, 0 when the collection is empty.
//     The read is not transactional with the insert; two concurrent appends
//     may assign the same position, which reads tolerate by breaking ties on
//     created_at.
//   - Reorder assigns position i to the i-th supplied id inside one
//     transaction. Unknown ids are skipped silently (the update matches no
//     row); ids absent from the list keep their previous position.
//   - DeleteAndCompact removes a document and renormalises the survivors to a
//     dense 0..n-1 sequence in the same transaction.
type OrderedRepo[T any, PT interface {
	*T
	models.OrderedEntity
}] struct {
	db *gorm.DB
}

// NewOrderedRepo constructs an ordered repository for one content type.
func NewOrderedRepo[T any, PT interface {
	*T
	models.OrderedEntity
}](db *gorm.DB) *OrderedRepo[T, PT] {
	return &OrderedRepo[T, PT]{db: db}
}

// List returns all documents sorted by display position. Ties are broken by
// created_at descending so that legacy rows written before the position field
// existed surface newest first.
func (r *OrderedRepo[T, PT]) List(ctx context.Context) ([]T, error) {
	var items []T
	err := r.db.WithContext(ctx).
		Order("display_order ASC, created_at DESC").
		Find(&items).Error
	return items, err
}

// GetByID fetches one document; gorm.ErrRecordNotFound when absent.
func (r *OrderedRepo[T, PT]) GetByID(ctx context.Context, id uint) (T, error) {
	var item T
	err := r.db.WithContext(ctx).First(&item, id).Error
	return item, err
}

// Create appends the document at the end of the display sequence.
func (r *OrderedRepo[T, PT]) Create(ctx context.Context, entity PT) error {
	var next int
	if err := r.db.WithContext(ctx).Model(new(T)).
		Select("COALESCE(MAX(display_order) + 1, 0)").
		Scan(&next).Error; err != nil {
		return err
	}

	entity.SetOrderValue(next)
	return r.db.WithContext(ctx).Create(entity).Error
}

// Save persists the full document.
func (r *OrderedRepo[T, PT]) Save(ctx context.Context, entity PT) error {
	return r.db.WithContext(ctx).Save(entity).Error
}

// Reorder assigns display positions following the supplied id sequence.
func (r *OrderedRepo[T, PT]) Reorder(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for position, id := range ids {
			if err := tx.Model(new(T)).
				Where("id = ?", id).
				Update("display_order", position).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteAndCompact removes the document and renormalises the remaining
// positions to a dense 0..n-1 sequence preserving relative order.
// gorm.ErrRecordNotFound when the id does not exist; the collection is then
// left untouched.
func (r *OrderedRepo[T, PT]) DeleteAndCompact(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(new(T), id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		var rest []T
		if err := tx.Order("display_order ASC, created_at DESC").Find(&rest).Error; err != nil {
			return err
		}

		for position := range rest {
			entity := PT(&rest[position])
			if entity.OrderValue() == position {
				continue
			}
			if err := tx.Model(new(T)).
				Where("id = ?", entity.EntityID()).
				Update("display_order", position).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
