package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/noah-isme/folio-go-api/internal/config"
	"github.com/noah-isme/folio-go-api/internal/database"
	"github.com/noah-isme/folio-go-api/internal/dto"
	"github.com/noah-isme/folio-go-api/internal/handler"
	"github.com/noah-isme/folio-go-api/internal/middleware"
	"github.com/noah-isme/folio-go-api/internal/repository"
	"github.com/noah-isme/folio-go-api/internal/router"
	"github.com/noah-isme/folio-go-api/internal/service"
	cloud "github.com/noah-isme/folio-go-api/pkg/cloudinary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// The document store is the only dependency without a degraded mode;
	// failing to reach it terminates the process.
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
	} else {
		logger.Info().Msg("redis url absent, submission dedupe disabled")
	}

	var natsConn *nats.Conn
	if cfg.NATSURL != "" {
		natsConn, err = nats.Connect(cfg.NATSURL)
		if err != nil {
			log.Fatalf("failed to connect to nats: %v", err)
		}
		defer natsConn.Close()
	} else {
		logger.Info().Msg("nats url absent, activity fanout stays in-process")
	}

	var uploader service.FileStorage
	if cfg.CloudinaryCloudName != "" {
		cld, err := cloud.New(cloud.Config{
			CloudName: cfg.CloudinaryCloudName,
			APIKey:    cfg.CloudinaryAPIKey,
			APISecret: cfg.CloudinaryAPISecret,
			Folder:    cfg.CloudinaryUploadFolder,
		}, logger)
		if err != nil {
			log.Fatalf("failed to create cloudinary client: %v", err)
		}
		uploader = cld
	} else {
		logger.Info().Msg("cloudinary credentials absent, uploads disabled")
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	broker := service.NewActivityBroker()
	activityService := service.NewActivityService(repository.NewActivityRepository(db), broker, natsConn, logger)

	skillService := service.NewSkillService(db, activityService, validate, logger)
	projectService := service.NewProjectService(db, activityService, validate, logger)
	experienceService := service.NewExperienceService(db, activityService, validate, logger)
	educationService := service.NewEducationService(db, activityService, validate, logger)
	galleryService := service.NewGalleryService(db, activityService, validate, logger)
	blogService := service.NewBlogService(db, activityService, validate, logger)
	feedbackService := service.NewFeedbackService(db, activityService, validate, logger)

	contactDelivery := service.NewContactDelivery(cfg, logger)
	contactService := service.NewContactService(
		repository.NewContactRepository(db), activityService, validate, contactDelivery, redisClient, logger)

	profileService, err := service.NewProfileService(repository.NewProfileRepository(db), activityService, logger)
	if err != nil {
		log.Fatalf("failed to build profile service: %v", err)
	}

	deps := router.Dependencies{
		SkillHandler:      handler.NewContentHandler(skillService, "skill", logger),
		ProjectHandler:    handler.NewContentHandler(projectService, "project", logger),
		ExperienceHandler: handler.NewContentHandler(experienceService, "experience entry", logger),
		EducationHandler:  handler.NewContentHandler(educationService, "education entry", logger),
		GalleryHandler:    handler.NewContentHandler(galleryService, "gallery item", logger),
		BlogHandler:       handler.NewContentHandler[dto.BlogRequest, dto.BlogUpdateRequest, dto.BlogResponse](blogService, "blog post", logger),
		FeedbackHandler:   handler.NewContentHandler[dto.FeedbackRequest, dto.FeedbackUpdateRequest, dto.FeedbackResponse](feedbackService, "testimonial", logger),

		PublicHandler:         handler.NewPublicHandler(blogService, feedbackService, profileService, logger),
		ContactHandler:        handler.NewContactHandler(contactService, logger),
		AdminContactHandler:   handler.NewAdminContactHandler(contactService, logger),
		ActivityHandler:       handler.NewActivityHandler(activityService, logger),
		ActivityStreamHandler: handler.NewActivityStreamHandler(broker, logger),
		ProfileHandler:        handler.NewProfileHandler(profileService, logger),

		JWTMiddleware: middleware.JWTProtected(cfg.JWTSecret),
	}

	if uploader != nil {
		uploadService := service.NewUploadService(uploader, repository.NewUploadRepository(db), cfg.UploadMaxMB, logger)
		deps.UploadHandler = handler.NewUploadHandler(uploadService, logger)
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, deps)

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
