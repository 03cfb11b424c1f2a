package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/folio-go-api/internal/service"
	"github.com/noah-isme/folio-go-api/internal/utils"
)

// PublicHandler serves the read-only surfaces that are not plain collection
// listings: blog posts by slug, approved testimonials and the site profile.
type PublicHandler struct {
	blog     *service.BlogService
	feedback *service.FeedbackService
	profile  *service.ProfileService
	logger   zerolog.Logger
}

// NewPublicHandler constructs the handler.
func NewPublicHandler(blog *service.BlogService, feedback *service.FeedbackService, profile *service.ProfileService, logger zerolog.Logger) *PublicHandler {
	return &PublicHandler{
		blog:     blog,
		feedback: feedback,
		profile:  profile,
		logger:   logger.With().Str("component", "public_handler").Logger(),
	}
}

// RegisterBlogSlug attaches the slug lookup under the public blog group.
func (h *PublicHandler) RegisterBlogSlug(router fiber.Router) {
	router.Get("/:slug", h.blogBySlug)
}

// RegisterTestimonials attaches the moderated testimonial listing.
func (h *PublicHandler) RegisterTestimonials(router fiber.Router) {
	router.Get("", h.testimonials)
}

// RegisterProfile attaches the public profile read.
func (h *PublicHandler) RegisterProfile(router fiber.Router) {
	router.Get("", h.profileGet)
}

func (h *PublicHandler) blogBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	post, err := h.blog.GetBySlug(c.Context(), slug)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "blog post not found")
		}
		requestLogger(h.logger, c).Error().Err(err).Str("slug", slug).Msg("failed to get blog post")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to get blog post")
	}

	return utils.SendSuccess(c, "blog post retrieved", post)
}

func (h *PublicHandler) testimonials(c *fiber.Ctx) error {
	entries, err := h.feedback.ListApproved(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list testimonials")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list testimonials")
	}
	return utils.SendSuccess(c, "testimonials retrieved", entries)
}

func (h *PublicHandler) profileGet(c *fiber.Ctx) error {
	profile, err := h.profile.Get(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to get profile")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to get profile")
	}
	return utils.SendSuccess(c, "profile retrieved", profile)
}
