package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/folio-go-api/internal/dto"
	"github.com/noah-isme/folio-go-api/internal/service"
	"github.com/noah-isme/folio-go-api/internal/utils"
)

// AdminContactHandler exposes the message triage surface.
type AdminContactHandler struct {
	service *service.ContactService
	logger  zerolog.Logger
}

// NewAdminContactHandler constructs the handler.
func NewAdminContactHandler(svc *service.ContactService, logger zerolog.Logger) *AdminContactHandler {
	return &AdminContactHandler{
		service: svc,
		logger:  logger.With().Str("component", "admin_contact_handler").Logger(),
	}
}

// Register attaches routes.
func (h *AdminContactHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/:id", h.get)
	router.Patch("/:id", h.updateFlags)
}

func (h *AdminContactHandler) list(c *fiber.Ctx) error {
	page, err := parseQueryInt(c, "page")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid page")
	}
	pageSize, err := parseQueryInt(c, "pageSize")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid page size")
	}

	req := dto.ContactListRequest{
		Box:      c.Query("box", "all"),
		Page:     page,
		PageSize: pageSize,
	}

	result, err := h.service.List(c.Context(), req)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list contact messages")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list messages")
	}

	meta := fiber.Map{
		"pagination": result.Pagination,
		"box":        req.Box,
	}
	return utils.SendSuccessWithMeta(c, "messages retrieved", result.Items, meta)
}

func (h *AdminContactHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	message, err := h.service.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "message not found")
		}
		requestLogger(h.logger, c).Error().Err(err).Uint("message_id", id).Msg("failed to get contact message")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to get message")
	}

	return utils.SendSuccess(c, "message retrieved", message)
}

func (h *AdminContactHandler) updateFlags(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	var payload dto.ContactFlagsRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	message, err := h.service.UpdateFlags(c.Context(), id, payload)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "message not found")
		}
		requestLogger(h.logger, c).Error().Err(err).Uint("message_id", id).Msg("failed to update contact message")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to update message")
	}

	return utils.SendSuccess(c, "message updated", message)
}
