package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/noah-isme/folio-go-api/internal/config"
	"github.com/noah-isme/folio-go-api/internal/dto"
	"github.com/noah-isme/folio-go-api/internal/handler"
)

// Dependencies groups router dependencies for registration. Nil handlers
// skip their routes, which keeps partial wiring in tests simple.
type Dependencies struct {
	SkillHandler      *handler.ContentHandler[dto.SkillRequest, dto.SkillUpdateRequest, dto.SkillResponse]
	ProjectHandler    *handler.ContentHandler[dto.ProjectRequest, dto.ProjectUpdateRequest, dto.ProjectResponse]
	ExperienceHandler *handler.ContentHandler[dto.ExperienceRequest, dto.ExperienceUpdateRequest, dto.ExperienceResponse]
	EducationHandler  *handler.ContentHandler[dto.EducationRequest, dto.EducationUpdateRequest, dto.EducationResponse]
	GalleryHandler    *handler.ContentHandler[dto.GalleryRequest, dto.GalleryUpdateRequest, dto.GalleryResponse]
	BlogHandler       *handler.ContentHandler[dto.BlogRequest, dto.BlogUpdateRequest, dto.BlogResponse]
	FeedbackHandler   *handler.ContentHandler[dto.FeedbackRequest, dto.FeedbackUpdateRequest, dto.FeedbackResponse]

	PublicHandler         *handler.PublicHandler
	ContactHandler        *handler.ContactHandler
	AdminContactHandler   *handler.AdminContactHandler
	ActivityHandler       *handler.ActivityHandler
	ActivityStreamHandler *handler.ActivityStreamHandler
	ProfileHandler        *handler.ProfileHandler
	UploadHandler         *handler.UploadHandler

	JWTMiddleware fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	// Public read surface.
	if deps.SkillHandler != nil {
		deps.SkillHandler.RegisterPublic(api.Group("/skills"))
	}
	if deps.ProjectHandler != nil {
		deps.ProjectHandler.RegisterPublic(api.Group("/projects"))
	}
	if deps.ExperienceHandler != nil {
		deps.ExperienceHandler.RegisterPublic(api.Group("/experience"))
	}
	if deps.EducationHandler != nil {
		deps.EducationHandler.RegisterPublic(api.Group("/education"))
	}
	if deps.GalleryHandler != nil {
		deps.GalleryHandler.RegisterPublic(api.Group("/gallery"))
	}
	if deps.BlogHandler != nil {
		blog := api.Group("/blog")
		deps.BlogHandler.RegisterPublic(blog)
		if deps.PublicHandler != nil {
			deps.PublicHandler.RegisterBlogSlug(blog)
		}
	}
	if deps.PublicHandler != nil {
		deps.PublicHandler.RegisterTestimonials(api.Group("/testimonials"))
		deps.PublicHandler.RegisterProfile(api.Group("/profile"))
	}
	if deps.ContactHandler != nil {
		deps.ContactHandler.Register(api.Group("/contact"))
	}

	// Admin surface, JWT-guarded.
	admin := api.Group("/admin", jwtMiddleware)
	if deps.SkillHandler != nil {
		deps.SkillHandler.Register(admin.Group("/skills"))
	}
	if deps.ProjectHandler != nil {
		deps.ProjectHandler.Register(admin.Group("/projects"))
	}
	if deps.ExperienceHandler != nil {
		deps.ExperienceHandler.Register(admin.Group("/experience"))
	}
	if deps.EducationHandler != nil {
		deps.EducationHandler.Register(admin.Group("/education"))
	}
	if deps.GalleryHandler != nil {
		deps.GalleryHandler.Register(admin.Group("/gallery"))
	}
	if deps.BlogHandler != nil {
		deps.BlogHandler.Register(admin.Group("/blog"))
	}
	if deps.FeedbackHandler != nil {
		deps.FeedbackHandler.Register(admin.Group("/testimonials"))
	}
	if deps.AdminContactHandler != nil {
		deps.AdminContactHandler.Register(admin.Group("/messages"))
	}
	if deps.ActivityHandler != nil {
		activity := admin.Group("/activity")
		deps.ActivityHandler.Register(activity)
		if deps.ActivityStreamHandler != nil {
			deps.ActivityStreamHandler.Register(activity)
		}
	}
	if deps.ProfileHandler != nil {
		deps.ProfileHandler.Register(admin.Group("/profile"))
	}
	if deps.UploadHandler != nil {
		deps.UploadHandler.Register(admin.Group("/uploads"))
	}
}
