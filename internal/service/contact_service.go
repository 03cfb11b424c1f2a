package service

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/noah-isme/folio-go-api/internal/dto"
	"github.com/noah-isme/folio-go-api/internal/models"
	"github.com/noah-isme/folio-go-api/internal/observability"
	"github.com/noah-isme/folio-go-api/internal/repository"
)

// ErrDuplicateSubmission marks a contact form replay within the dedupe window.
var ErrDuplicateSubmission = errors.New("duplicate submission")

const (
	contactDetailsLimit = 100
	dedupeWindow        = time.Minute
	deliveryTimeout     = 10 * time.Second
)

// ContactService handles the public contact form and the admin triage view.
type ContactService struct {
	repo     repository.ContactRepository
	recorder ActivityRecorder
	validate *validator.Validate
	delivery ContactDelivery
	redis    *redis.Client
	log      zerolog.Logger
	tracer   trace.Tracer
}

// NewContactService wires contact intake. delivery and rdb may be nil;
// notification and dedupe are then disabled.
func NewContactService(
	repo repository.ContactRepository,
	recorder ActivityRecorder,
	validate *validator.Validate,
	delivery ContactDelivery,
	rdb *redis.Client,
	logger zerolog.Logger,
) *ContactService {
	return &ContactService{
		repo:     repo,
		recorder: recorder,
		validate: validate,
		delivery: delivery,
		redis:    rdb,
		log:      logger.With().Str("component", "contact_service").Logger(),
		tracer:   otel.Tracer("github.com/noah-isme/folio-go-api/internal/service/contact"),
	}
}

// Submit persists an inbound message, records the activity and fires the
// operator notification. Notification failure never fails the submission.
func (s *ContactService) Submit(ctx context.Context, req dto.ContactSubmitRequest) (dto.ContactMessageResponse, error) {
	ctx, span := s.tracer.Start(ctx, "contact.submit")
	defer span.End()

	if err := s.validate.Struct(req); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "validation failed")
		return dto.ContactMessageResponse{}, err
	}

	// Bots fill the honeypot; report success without persisting anything.
	if req.Honeypot != "" {
		observability.ContactSubmissions.WithLabelValues("honeypot").Inc()
		span.SetAttributes(attribute.Bool("contact.honeypot", true))
		s.log.Info().Str("ip", req.IPAddress).Msg("honeypot tripped, dropping submission")
		return dto.ContactMessageResponse{Name: req.Name, Email: req.Email}, nil
	}

	if err := s.checkDuplicate(ctx, req); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "duplicate submission")
		return dto.ContactMessageResponse{}, err
	}

	message := models.ContactMessage{
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		IPAddress: req.IPAddress,
		UserAgent: req.UserAgent,
	}
	if err := s.repo.Create(ctx, &message); err != nil {
		observability.ContactSubmissions.WithLabelValues("error").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "persist failed")
		return dto.ContactMessageResponse{}, fmt.Errorf("persist contact message: %w", err)
	}

	observability.ContactSubmissions.WithLabelValues("accepted").Inc()
	span.SetAttributes(attribute.Int("contact.message_id", int(message.ID)))

	id := message.ID
	s.recorder.Record(ctx, ActivityEntry{
		Action:       "New message received",
		Item:         message.Name,
		Details:      truncateWithEllipsis(message.Message, contactDetailsLimit),
		Category:     models.CategoryMessages,
		Icon:         "mail",
		RelatedID:    &id,
		RelatedModel: "ContactMessage",
	})

	s.notify(message)

	return contactResponse(message), nil
}

func (s *ContactService) checkDuplicate(ctx context.Context, req dto.ContactSubmitRequest) error {
	if s.redis == nil {
		return nil
	}

	digest := sha256.Sum256([]byte(req.Message))
	key := fmt.Sprintf("contact:dedupe:%s:%x", strings.ToLower(req.Email), digest[:8])

	fresh, err := s.redis.SetNX(ctx, key, 1, dedupeWindow).Result()
	if err != nil {
		// Dedupe is an optimization; a broken cache must not block intake.
		s.log.Warn().Err(err).Msg("contact dedupe check failed")
		return nil
	}
	if !fresh {
		observability.ContactSubmissions.WithLabelValues("duplicate").Inc()
		return ErrDuplicateSubmission
	}
	return nil
}

func (s *ContactService) notify(message models.ContactMessage) {
	if s.delivery == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
		defer cancel()

		if err := s.delivery.Deliver(ctx, message); err != nil {
			observability.ContactSubmissions.WithLabelValues("notify_failed").Inc()
			s.log.Warn().Err(err).Uint("message_id", message.ID).Msg("contact notification failed")
		}
	}()
}

// Get returns one message by id.
func (s *ContactService) Get(ctx context.Context, id uint) (dto.ContactMessageResponse, error) {
	message, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ContactMessageResponse{}, ErrNotFound
		}
		return dto.ContactMessageResponse{}, fmt.Errorf("get contact message %d: %w", id, err)
	}
	return contactResponse(message), nil
}

// UpdateFlags applies a partial triage update. Read and archive transitions
// land in the activity trail; star and reply flips do not.
func (s *ContactService) UpdateFlags(ctx context.Context, id uint, req dto.ContactFlagsRequest) (dto.ContactMessageResponse, error) {
	message, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ContactMessageResponse{}, ErrNotFound
		}
		return dto.ContactMessageResponse{}, fmt.Errorf("get contact message %d: %w", id, err)
	}

	prevRead, prevArchived := message.Read, message.Archived

	assign(&message.Read, req.Read)
	assign(&message.Starred, req.Starred)
	assign(&message.Archived, req.Archived)
	assign(&message.Replied, req.Replied)
	assign(&message.ReplyMessage, req.ReplyMessage)
	if req.ReplyMessage != nil && *req.ReplyMessage != "" {
		message.Replied = true
	}

	if err := s.repo.Save(ctx, &message); err != nil {
		return dto.ContactMessageResponse{}, fmt.Errorf("update contact message %d: %w", id, err)
	}

	s.recordFlagTransitions(ctx, message, prevRead, prevArchived)

	return contactResponse(message), nil
}

func (s *ContactService) recordFlagTransitions(ctx context.Context, message models.ContactMessage, prevRead, prevArchived bool) {
	id := message.ID

	if message.Read != prevRead {
		action := "Marked message as read"
		if !message.Read {
			action = "Marked message as unread"
		}
		s.recorder.Record(ctx, ActivityEntry{
			Action:       action,
			Item:         message.Name,
			Details:      truncateWithEllipsis(message.Message, contactDetailsLimit),
			Category:     models.CategoryMessages,
			Icon:         "mail-open",
			RelatedID:    &id,
			RelatedModel: "ContactMessage",
		})
	}

	if message.Archived != prevArchived {
		action := "Archived message"
		if !message.Archived {
			action = "Unarchived message"
		}
		s.recorder.Record(ctx, ActivityEntry{
			Action:       action,
			Item:         message.Name,
			Details:      truncateWithEllipsis(message.Message, contactDetailsLimit),
			Category:     models.CategoryMessages,
			Icon:         "archive",
			RelatedID:    &id,
			RelatedModel: "ContactMessage",
		})
	}
}

// List returns messages in the requested box, newest first.
func (s *ContactService) List(ctx context.Context, req dto.ContactListRequest) (dto.ContactListResponse, error) {
	page := normalizePage(req.Page)
	pageSize := clampPageSize(req.PageSize)

	messages, total, err := s.repo.List(ctx, repository.ContactFilter{
		Box:      req.Box,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return dto.ContactListResponse{}, fmt.Errorf("list contact messages: %w", err)
	}

	items := make([]dto.ContactMessageResponse, 0, len(messages))
	for _, message := range messages {
		items = append(items, contactResponse(message))
	}

	return dto.ContactListResponse{
		Items: items,
		Pagination: dto.PaginationMeta{
			Page:       page,
			PageSize:   pageSize,
			TotalItems: total,
			TotalPages: calculateTotalPages(total, pageSize),
		},
	}, nil
}

func contactResponse(message models.ContactMessage) dto.ContactMessageResponse {
	return dto.ContactMessageResponse{
		ID:           message.ID,
		Name:         message.Name,
		Email:        message.Email,
		Subject:      message.Subject,
		Message:      message.Message,
		Read:         message.Read,
		Starred:      message.Starred,
		Archived:     message.Archived,
		Replied:      message.Replied,
		ReplyMessage: message.ReplyMessage,
		IPAddress:    message.IPAddress,
		UserAgent:    message.UserAgent,
		CreatedAt:    message.CreatedAt,
		UpdatedAt:    message.UpdatedAt,
	}
}
