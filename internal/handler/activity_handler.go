package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/folio-go-api/internal/dto"
	"github.com/noah-isme/folio-go-api/internal/service"
	"github.com/noah-isme/folio-go-api/internal/utils"
)

// ActivityHandler exposes the audit trail to the admin dashboard.
type ActivityHandler struct {
	service *service.ActivityService
	logger  zerolog.Logger
}

// NewActivityHandler constructs the handler.
func NewActivityHandler(svc *service.ActivityService, logger zerolog.Logger) *ActivityHandler {
	return &ActivityHandler{
		service: svc,
		logger:  logger.With().Str("component", "activity_handler").Logger(),
	}
}

// Register attaches routes.
func (h *ActivityHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Delete("/:id", h.delete)
}

func (h *ActivityHandler) list(c *fiber.Ctx) error {
	page, err := parseQueryInt(c, "page")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid page")
	}
	pageSize, err := parseQueryInt(c, "pageSize")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid page size")
	}

	startDate, err := parseQueryTime(c, "startDate")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid start date")
	}
	endDate, err := parseQueryTime(c, "endDate")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid end date")
	}

	req := dto.ActivityListRequest{
		Page:      page,
		PageSize:  pageSize,
		Category:  c.Query("category"),
		User:      c.Query("user"),
		Search:    c.Query("search"),
		StartDate: startDate,
		EndDate:   endDate,
	}

	result, err := h.service.List(c.Context(), req)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list activity")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list activity")
	}

	meta := fiber.Map{
		"pagination": result.Pagination,
		"facets":     result.Facets,
	}
	return utils.SendSuccessWithMeta(c, "activity retrieved", result.Items, meta)
}

func (h *ActivityHandler) delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid identifier")
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "activity record not found")
		}
		requestLogger(h.logger, c).Error().Err(err).Uint("activity_id", id).Msg("failed to delete activity record")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to delete activity record")
	}

	return utils.SendSuccess(c, "activity record deleted", nil)
}
