package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/folio-go-api/internal/dto"
	"github.com/noah-isme/folio-go-api/internal/service"
	"github.com/noah-isme/folio-go-api/internal/utils"
)

// ContactHandler exposes the public contact form.
type ContactHandler struct {
	service *service.ContactService
	logger  zerolog.Logger
}

// NewContactHandler constructs the handler.
func NewContactHandler(svc *service.ContactService, logger zerolog.Logger) *ContactHandler {
	return &ContactHandler{
		service: svc,
		logger:  logger.With().Str("component", "contact_handler").Logger(),
	}
}

// Register attaches routes.
func (h *ContactHandler) Register(router fiber.Router) {
	router.Post("", h.submit)
}

func (h *ContactHandler) submit(c *fiber.Ctx) error {
	var payload dto.ContactSubmitRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}
	payload.IPAddress = c.IP()
	payload.UserAgent = c.Get("User-Agent")

	message, err := h.service.Submit(c.Context(), payload)
	if err != nil {
		switch {
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrDuplicateSubmission):
			return utils.SendError(c, fiber.StatusTooManyRequests, "message already received, please wait before retrying")
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to accept contact message")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to send message")
		}
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "message sent", message)
}
