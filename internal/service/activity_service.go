package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/folio-go-api/internal/dto"
	"github.com/noah-isme/folio-go-api/internal/models"
	"github.com/noah-isme/folio-go-api/internal/observability"
	"github.com/noah-isme/folio-go-api/internal/repository"
)

// ActivitySubject is the NATS subject activity events are published on.
const ActivitySubject = "folio.activity"

type actorKey struct{}

// ActorKey is the request-scoped storage key for the acting user's display
// name. The JWT middleware stores it via fiber locals, which surface through
// the request context's Value.
var ActorKey = actorKey{}

// WithActor returns a context attributing subsequent audit records to name.
func WithActor(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, ActorKey, name)
}

func actorFromContext(ctx context.Context) string {
	name, _ := ctx.Value(ActorKey).(string)
	return strings.TrimSpace(name)
}

// ActivityEntry describes one audit record to be written.
type ActivityEntry struct {
	Action       string
	Item         string
	Details      string
	Category     string
	Icon         string
	User         string
	RelatedID    *uint
	RelatedModel string
	Metadata     map[string]interface{}
}

// ActivityRecorder is the write side of the audit trail. Record never
// reports failure; auditing must not break the operation being audited.
type ActivityRecorder interface {
	Record(ctx context.Context, entry ActivityEntry)
}

// ActivityService owns the audit trail: best-effort writes, filtered reads
// with human-relative timestamps, soft deletes and live fanout.
type ActivityService struct {
	repo   repository.ActivityRepository
	broker *ActivityBroker
	nats   *nats.Conn
	log    zerolog.Logger
	now    func() time.Time
}

// NewActivityService wires the audit trail. nc may be nil when NATS is not
// configured; fanout then stays in-process only.
func NewActivityService(repo repository.ActivityRepository, broker *ActivityBroker, nc *nats.Conn, logger zerolog.Logger) *ActivityService {
	return &ActivityService{
		repo:   repo,
		broker: broker,
		nats:   nc,
		log:    logger.With().Str("component", "activity_service").Logger(),
		now:    time.Now,
	}
}

// Record persists one audit record. Failures are logged and counted, never
// returned: the triggering operation already succeeded and must stay
// successful.
func (s *ActivityService) Record(ctx context.Context, entry ActivityEntry) {
	record := models.ActivityLog{
		Action:       entry.Action,
		Item:         entry.Item,
		Details:      entry.Details,
		Category:     entry.Category,
		User:         entry.User,
		Icon:         entry.Icon,
		RelatedID:    entry.RelatedID,
		RelatedModel: entry.RelatedModel,
		Metadata:     entry.Metadata,
		IsVisible:    true,
	}
	if record.User == "" {
		record.User = actorFromContext(ctx)
	}
	if record.User == "" {
		record.User = models.DefaultActivityUser
	}

	if err := s.repo.Create(ctx, &record); err != nil {
		observability.ActivityDrops.Inc()
		s.log.Warn().Err(err).
			Str("action", entry.Action).
			Str("category", entry.Category).
			Msg("dropping activity record")
		return
	}

	event := s.toResponse(record)
	s.broker.Publish(event)
	s.publishNATS(event)
}

func (s *ActivityService) publishNATS(event dto.ActivityResponse) {
	if s.nats == nil {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to encode activity event")
		return
	}

	if err := s.nats.Publish(ActivitySubject, payload); err != nil {
		s.log.Warn().Err(err).Msg("failed to publish activity event")
	}
}

// List returns visible audit records matching the filter, newest first,
// together with pagination metadata and the distinct filter facets.
func (s *ActivityService) List(ctx context.Context, req dto.ActivityListRequest) (dto.ActivityListResponse, error) {
	page := normalizePage(req.Page)
	pageSize := clampPageSize(req.PageSize)

	records, total, err := s.repo.List(ctx, repository.ActivityFilter{
		Category:  req.Category,
		User:      req.User,
		Search:    req.Search,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Page:      page,
		PageSize:  pageSize,
	})
	if err != nil {
		return dto.ActivityListResponse{}, fmt.Errorf("list activity: %w", err)
	}

	categories, users, err := s.repo.Facets(ctx)
	if err != nil {
		return dto.ActivityListResponse{}, fmt.Errorf("list activity facets: %w", err)
	}

	items := make([]dto.ActivityResponse, 0, len(records))
	for _, record := range records {
		items = append(items, s.toResponse(record))
	}

	return dto.ActivityListResponse{
		Items: items,
		Pagination: dto.PaginationMeta{
			Page:       page,
			PageSize:   pageSize,
			TotalItems: total,
			TotalPages: calculateTotalPages(total, pageSize),
		},
		Facets: dto.ActivityFacets{Categories: categories, Users: users},
	}, nil
}

// Delete hides one record from all reads. The row stays in the store.
func (s *ActivityService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("soft delete activity %d: %w", id, err)
	}
	return nil
}

func (s *ActivityService) toResponse(record models.ActivityLog) dto.ActivityResponse {
	return dto.ActivityResponse{
		ID:           record.ID,
		Action:       record.Action,
		Item:         record.Item,
		Details:      record.Details,
		Category:     record.Category,
		User:         record.User,
		Icon:         record.Icon,
		RelatedID:    record.RelatedID,
		RelatedModel: record.RelatedModel,
		Metadata:     record.Metadata,
		Time:         relativeTimeLabel(s.now(), record.CreatedAt),
		CreatedAt:    record.CreatedAt,
	}
}

// relativeTimeLabel renders the age of a record the way the dashboard
// displays it. The month arithmetic is deliberately coarse (30-day months),
// matching the labels the frontend has always shown.
func relativeTimeLabel(now, created time.Time) string {
	elapsed := now.Sub(created)
	if elapsed < 0 {
		elapsed = 0
	}

	minutes := int(elapsed.Minutes())
	if minutes < 1 {
		return "Just now"
	}
	if minutes < 60 {
		return pluralize(minutes, "minute")
	}

	hours := int(elapsed.Hours())
	if hours < 24 {
		return pluralize(hours, "hour")
	}

	days := hours / 24
	switch {
	case days == 1:
		return "Yesterday"
	case days < 7:
		return pluralize(days, "day")
	case days == 7:
		return "Last week"
	case days < 28:
		return pluralize(days/7, "week")
	case days == 30:
		return "Last month"
	}

	months := days / 30
	if months < 1 {
		months = 1
	}
	if months < 12 {
		return fmt.Sprintf("%d months ago", months)
	}

	return "More than a year ago"
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
