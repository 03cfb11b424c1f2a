package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gorm.io/datatypes"

	"github.com/noah-isme/folio-go-api/internal/dto"
	"github.com/noah-isme/folio-go-api/internal/models"
	"github.com/noah-isme/folio-go-api/internal/repository"
)

// ErrProfileInvalid marks a profile update that failed schema validation.
var ErrProfileInvalid = errors.New("profile document invalid")

// profileSchema constrains the free-form profile document enough to keep the
// public site renderable. Extra fields are allowed.
const profileSchema = `{
	"type": "object",
	"properties": {
		"name":     {"type": "string", "minLength": 1},
		"headline": {"type": "string"},
		"about":    {"type": "string"},
		"email":    {"type": "string"},
		"location": {"type": "string"},
		"avatar":   {"type": "string"},
		"socials": {
			"type": "object",
			"additionalProperties": {"type": "string"}
		}
	},
	"required": ["name"]
}`

// ProfileService manages the single site profile document.
type ProfileService struct {
	repo     repository.ProfileRepository
	recorder ActivityRecorder
	schema   *jsonschema.Schema
	log      zerolog.Logger
}

// NewProfileService compiles the profile schema and wires the service.
func NewProfileService(repo repository.ProfileRepository, recorder ActivityRecorder, logger zerolog.Logger) (*ProfileService, error) {
	schema, err := jsonschema.CompileString("profile.json", profileSchema)
	if err != nil {
		return nil, fmt.Errorf("compile profile schema: %w", err)
	}

	return &ProfileService{
		repo:     repo,
		recorder: recorder,
		schema:   schema,
		log:      logger.With().Str("component", "profile_service").Logger(),
	}, nil
}

// Get returns the profile document, creating the empty row on first read.
func (s *ProfileService) Get(ctx context.Context) (dto.ProfileResponse, error) {
	profile, err := s.repo.Get(ctx)
	if err != nil {
		return dto.ProfileResponse{}, fmt.Errorf("get profile: %w", err)
	}
	return profileResponse(profile), nil
}

// Update replaces the profile document after schema validation.
func (s *ProfileService) Update(ctx context.Context, data map[string]interface{}) (dto.ProfileResponse, error) {
	if err := s.schema.Validate(data); err != nil {
		return dto.ProfileResponse{}, fmt.Errorf("%w: %v", ErrProfileInvalid, err)
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return dto.ProfileResponse{}, fmt.Errorf("encode profile: %w", err)
	}

	profile, err := s.repo.Get(ctx)
	if err != nil {
		return dto.ProfileResponse{}, fmt.Errorf("get profile: %w", err)
	}

	profile.Data = datatypes.JSON(raw)
	if err := s.repo.Save(ctx, &profile); err != nil {
		return dto.ProfileResponse{}, fmt.Errorf("save profile: %w", err)
	}

	s.recorder.Record(ctx, ActivityEntry{
		Action:   "Updated profile",
		Item:     "Site profile",
		Details:  "Updated the public site profile document",
		Category: models.CategoryProfile,
		Icon:     "user",
	})

	return profileResponse(profile), nil
}

func profileResponse(profile models.SiteProfile) dto.ProfileResponse {
	data := map[string]interface{}{}
	if len(profile.Data) > 0 {
		// The stored document was validated on write; a decode failure here
		// means manual tampering, surface an empty document instead.
		_ = json.Unmarshal(profile.Data, &data)
	}
	return dto.ProfileResponse{Data: data, UpdatedAt: profile.UpdatedAt}
}
