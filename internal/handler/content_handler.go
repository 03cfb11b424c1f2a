package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/folio-go-api/internal/dto"
	"github.com/noah-isme/folio-go-api/internal/service"
	"github.com/noah-isme/folio-go-api/internal/utils"
)

// ContentHandler exposes one ordered content collection over HTTP. A single
// generic implementation serves all seven entity types.
type ContentHandler[Req any, Upd any, Resp any] struct {
	service service.ContentService[Req, Upd, Resp]
	noun    string
	logger  zerolog.Logger
}

// NewContentHandler constructs the handler for one collection. noun is used
// in response messages and log lines ("project", "skill", ...).
func NewContentHandler[Req any, Upd any, Resp any](
	svc service.ContentService[Req, Upd, Resp],
	noun string,
	logger zerolog.Logger,
) *ContentHandler[Req, Upd, Resp] {
	return &ContentHandler[Req, Upd, Resp]{
		service: svc,
		noun:    noun,
		logger:  logger.With().Str("component", noun+"_handler").Logger(),
	}
}

// Register attaches the full admin CRUD surface.
func (h *ContentHandler[Req, Upd, Resp]) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
	router.Get("/:id", h.get)
	router.Patch("/:id", h.update)
	router.Delete("/:id", h.delete)
	router.Put("/reorder", h.reorder)
}

// RegisterPublic attaches the read-only public listing.
func (h *ContentHandler[Req, Upd, Resp]) RegisterPublic(router fiber.Router) {
	router.Get("", h.list)
}

func (h *ContentHandler[Req, Upd, Resp]) list(c *fiber.Ctx) error {
	items, err := h.service.List(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list " + h.noun + "s")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list "+h.noun+"s")
	}
	return utils.SendSuccess(c, h.noun+"s retrieved", items)
}

func (h *ContentHandler[Req, Upd, Resp]) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	item, err := h.service.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, h.noun+" not found")
		}
		requestLogger(h.logger, c).Error().Err(err).Uint("id", id).Msg("failed to get " + h.noun)
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to get "+h.noun)
	}
	return utils.SendSuccess(c, h.noun+" retrieved", item)
}

func (h *ContentHandler[Req, Upd, Resp]) create(c *fiber.Ctx) error {
	var payload Req
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	item, err := h.service.Create(c.Context(), payload)
	if err != nil {
		switch {
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrDuplicateSlug):
			return utils.SendError(c, fiber.StatusConflict, "slug already in use")
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to create " + h.noun)
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to create "+h.noun)
		}
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, h.noun+" created", item)
}

func (h *ContentHandler[Req, Upd, Resp]) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	var payload Upd
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	item, err := h.service.Update(c.Context(), id, payload)
	if err != nil {
		switch {
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrNotFound):
			return utils.SendError(c, fiber.StatusNotFound, h.noun+" not found")
		case errors.Is(err, service.ErrDuplicateSlug):
			return utils.SendError(c, fiber.StatusConflict, "slug already in use")
		default:
			requestLogger(h.logger, c).Error().Err(err).Uint("id", id).Msg("failed to update " + h.noun)
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to update "+h.noun)
		}
	}

	return utils.SendSuccess(c, h.noun+" updated", item)
}

func (h *ContentHandler[Req, Upd, Resp]) delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, h.noun+" not found")
		}
		requestLogger(h.logger, c).Error().Err(err).Uint("id", id).Msg("failed to delete " + h.noun)
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to delete "+h.noun)
	}

	return utils.SendSuccess(c, h.noun+" deleted", nil)
}

func (h *ContentHandler[Req, Upd, Resp]) reorder(c *fiber.Ctx) error {
	var payload dto.ReorderRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if len(payload.OrderedIDs) == 0 {
		return utils.SendError(c, fiber.StatusBadRequest, "orderedIds must not be empty")
	}

	if err := h.service.Reorder(c.Context(), payload.OrderedIDs); err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to reorder " + h.noun + "s")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to reorder "+h.noun+"s")
	}

	// Unknown ids are skipped, a subset is fine; the operation always
	// reports success once the writes are applied.
	return utils.SendSuccess(c, h.noun+"s reordered", nil)
}
