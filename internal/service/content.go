package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/folio-go-api/internal/models"
	"github.com/noah-isme/folio-go-api/internal/observability"
	"github.com/noah-isme/folio-go-api/internal/repository"
)

// Sentinel errors shared by the content services.
var (
	ErrNotFound      = errors.New("resource not found")
	ErrDuplicateSlug = errors.New("slug already in use")
)

// ContentService is the uniform contract every ordered content collection
// exposes. One implementation exists; it is instantiated per entity type.
type ContentService[Req any, Upd any, Resp any] interface {
	List(ctx context.Context) ([]Resp, error)
	Get(ctx context.Context, id uint) (Resp, error)
	Create(ctx context.Context, req Req) (Resp, error)
	Update(ctx context.Context, id uint, req Upd) (Resp, error)
	Delete(ctx context.Context, id uint) error
	Reorder(ctx context.Context, ids []uint) error
}

// auditProfile carries the entity-specific vocabulary for audit records.
type auditProfile struct {
	Noun     string // singular, e.g. "project"
	Plural   string // e.g. "projects", used as the reorder item
	Category string
	Icon     string
	Model    string // value stored in related_model
}

// entityAdapter supplies the per-entity behaviour the generic service
// cannot know: building a model from a create request, merging a partial
// update, rendering a response and naming a document for the audit trail.
type entityAdapter[T any, PT interface {
	*T
	models.OrderedEntity
}, Req any, Upd any, Resp any] struct {
	Audit auditProfile
	New   func(Req) PT
	Apply func(PT, Upd)
	Out   func(*T) Resp
	Label func(*T) string
}

type contentService[T any, PT interface {
	*T
	models.OrderedEntity
}, Req any, Upd any, Resp any] struct {
	repo     *repository.OrderedRepo[T, PT]
	recorder ActivityRecorder
	validate *validator.Validate
	adapter  entityAdapter[T, PT, Req, Upd, Resp]
	log      zerolog.Logger
}

func newContentService[T any, PT interface {
	*T
	models.OrderedEntity
}, Req any, Upd any, Resp any](
	db *gorm.DB,
	recorder ActivityRecorder,
	validate *validator.Validate,
	adapter entityAdapter[T, PT, Req, Upd, Resp],
	logger zerolog.Logger,
) *contentService[T, PT, Req, Upd, Resp] {
	return &contentService[T, PT, Req, Upd, Resp]{
		repo:     repository.NewOrderedRepo[T, PT](db),
		recorder: recorder,
		validate: validate,
		adapter:  adapter,
		log:      logger.With().Str("component", adapter.Audit.Noun+"_service").Logger(),
	}
}

func (s *contentService[T, PT, Req, Upd, Resp]) List(ctx context.Context) ([]Resp, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.adapter.Audit.Plural, err)
	}

	out := make([]Resp, 0, len(items))
	for i := range items {
		out = append(out, s.adapter.Out(&items[i]))
	}
	return out, nil
}

func (s *contentService[T, PT, Req, Upd, Resp]) Get(ctx context.Context, id uint) (Resp, error) {
	var zero Resp
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, ErrNotFound
		}
		return zero, fmt.Errorf("get %s %d: %w", s.adapter.Audit.Noun, id, err)
	}
	return s.adapter.Out(&item), nil
}

func (s *contentService[T, PT, Req, Upd, Resp]) Create(ctx context.Context, req Req) (Resp, error) {
	var zero Resp
	if err := s.validate.Struct(req); err != nil {
		return zero, err
	}

	entity := s.adapter.New(req)
	if err := s.repo.Create(ctx, entity); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return zero, ErrDuplicateSlug
		}
		return zero, fmt.Errorf("create %s: %w", s.adapter.Audit.Noun, err)
	}

	observability.ContentMutations.WithLabelValues(s.adapter.Audit.Plural, "create").Inc()

	label := s.adapter.Label((*T)(entity))
	id := entity.EntityID()
	s.recorder.Record(ctx, ActivityEntry{
		Action:       "Created " + s.adapter.Audit.Noun,
		Item:         label,
		Details:      fmt.Sprintf("Added %s %q", s.adapter.Audit.Noun, label),
		Category:     s.adapter.Audit.Category,
		Icon:         s.adapter.Audit.Icon,
		RelatedID:    &id,
		RelatedModel: s.adapter.Audit.Model,
	})

	return s.adapter.Out((*T)(entity)), nil
}

func (s *contentService[T, PT, Req, Upd, Resp]) Update(ctx context.Context, id uint, req Upd) (Resp, error) {
	var zero Resp
	if err := s.validate.Struct(req); err != nil {
		return zero, err
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, ErrNotFound
		}
		return zero, fmt.Errorf("get %s %d: %w", s.adapter.Audit.Noun, id, err)
	}

	entity := PT(&item)
	s.adapter.Apply(entity, req)
	if err := s.repo.Save(ctx, entity); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return zero, ErrDuplicateSlug
		}
		return zero, fmt.Errorf("update %s %d: %w", s.adapter.Audit.Noun, id, err)
	}

	observability.ContentMutations.WithLabelValues(s.adapter.Audit.Plural, "update").Inc()

	// The audit item is taken from the document after the update applied.
	label := s.adapter.Label(&item)
	s.recorder.Record(ctx, ActivityEntry{
		Action:       "Updated " + s.adapter.Audit.Noun,
		Item:         label,
		Details:      fmt.Sprintf("Updated %s %q", s.adapter.Audit.Noun, label),
		Category:     s.adapter.Audit.Category,
		Icon:         s.adapter.Audit.Icon,
		RelatedID:    &id,
		RelatedModel: s.adapter.Audit.Model,
	})

	return s.adapter.Out(&item), nil
}

// Delete fetches the document first so its identifying field survives into
// the audit record, then removes it and renormalises display positions.
func (s *contentService[T, PT, Req, Upd, Resp]) Delete(ctx context.Context, id uint) error {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("get %s %d: %w", s.adapter.Audit.Noun, id, err)
	}

	if err := s.repo.DeleteAndCompact(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete %s %d: %w", s.adapter.Audit.Noun, id, err)
	}

	observability.ContentMutations.WithLabelValues(s.adapter.Audit.Plural, "delete").Inc()

	label := s.adapter.Label(&item)
	s.recorder.Record(ctx, ActivityEntry{
		Action:   "Deleted " + s.adapter.Audit.Noun,
		Item:     label,
		Details:  fmt.Sprintf("Removed %s %q", s.adapter.Audit.Noun, label),
		Category: s.adapter.Audit.Category,
		Icon:     s.adapter.Audit.Icon,
	})

	return nil
}

func (s *contentService[T, PT, Req, Upd, Resp]) Reorder(ctx context.Context, ids []uint) error {
	if err := s.repo.Reorder(ctx, ids); err != nil {
		return fmt.Errorf("reorder %s: %w", s.adapter.Audit.Plural, err)
	}

	observability.ContentMutations.WithLabelValues(s.adapter.Audit.Plural, "reorder").Inc()

	s.recorder.Record(ctx, ActivityEntry{
		Action:   "Reordered " + s.adapter.Audit.Plural,
		Item:     s.adapter.Audit.Plural,
		Details:  fmt.Sprintf("Updated display order of %d items", len(ids)),
		Category: s.adapter.Audit.Category,
		Icon:     s.adapter.Audit.Icon,
	})

	return nil
}
