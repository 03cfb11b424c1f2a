package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/folio-go-api/internal/models"
)

// siteProfileID pins the profile to a single well-known row.
const siteProfileID = 1

// ProfileRepository persists the single site profile document.
type ProfileRepository interface {
	Get(ctx context.Context) (models.SiteProfile, error)
	Save(ctx context.Context, profile *models.SiteProfile) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository constructs a profile repository.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Get(ctx context.Context) (models.SiteProfile, error) {
	profile := models.SiteProfile{ID: siteProfileID}
	err := r.db.WithContext(ctx).
		Where(models.SiteProfile{ID: siteProfileID}).
		FirstOrCreate(&profile).Error
	return profile, err
}

func (r *profileRepository) Save(ctx context.Context, profile *models.SiteProfile) error {
	profile.ID = siteProfileID
	return r.db.WithContext(ctx).Save(profile).Error
}
