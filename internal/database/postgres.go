package database

import (
	"fmt"
	"sync"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/noah-isme/folio-go-api/internal/models"
)

var (
	mu     sync.Mutex
	shared *gorm.DB
)

// Connect returns the process-wide database handle, dialing it on first use.
// Liveness is verified by pinging the underlying connection rather than by a
// flag, so an externally dropped connection triggers a re-dial. Callers treat
// a returned error at startup as fatal; the service has no degraded mode for
// its primary store.
func Connect(dsn string) (*gorm.DB, error) {
	mu.Lock()
	defer mu.Unlock()

	if shared != nil {
		if sqlDB, err := shared.DB(); err == nil && sqlDB.Ping() == nil {
			return shared, nil
		}
		shared = nil
	}

	if dsn == "" {
		return nil, fmt.Errorf("postgres dsn must not be empty")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	shared = db
	return shared, nil
}

// Reset clears the shared handle so tests can start from a clean slate.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	shared = nil
}

// Migrate creates or updates the schema and backfills the display position on
// legacy rows written before the field existed.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Skill{},
		&models.Project{},
		&models.Experience{},
		&models.Education{},
		&models.GalleryItem{},
		&models.BlogPost{},
		&models.Feedback{},
		&models.ActivityLog{},
		&models.ContactMessage{},
		&models.SiteProfile{},
		&models.UploadRecord{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	for _, model := range []interface{}{
		&models.Skill{},
		&models.Project{},
		&models.Experience{},
		&models.Education{},
		&models.GalleryItem{},
		&models.BlogPost{},
		&models.Feedback{},
	} {
		if err := db.Model(model).
			Where("display_order IS NULL").
			Update("display_order", 0).Error; err != nil {
			return fmt.Errorf("failed to backfill display order: %w", err)
		}
	}

	return nil
}
