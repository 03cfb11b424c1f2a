package models

import (
	"time"

	"gorm.io/datatypes"
)

// Activity categories recognised by the audit trail.
const (
	CategoryProjects     = "projects"
	CategorySkills       = "skills"
	CategoryExperience   = "experience"
	CategoryMessages     = "messages"
	CategoryAnalytics    = "analytics"
	CategoryProfile      = "profile"
	CategorySettings     = "settings"
	CategorySystem       = "system"
	CategoryEducation    = "education"
	CategoryGallery      = "gallery"
	CategoryBlog         = "blog"
	CategoryTestimonials = "testimonials"
)

// DefaultActivityUser is attributed when no actor is supplied.
const DefaultActivityUser = "You"

// ActivityLog is an append-only audit record of one content mutation.
// Records are immutable except for the soft-delete flag; the related entity
// may be deleted later without invalidating the record.
type ActivityLog struct {
	ID           uint              `gorm:"primaryKey" json:"id"`
	Action       string            `gorm:"size:128;not null" json:"action"`
	Item         string            `gorm:"size:255;not null" json:"item"`
	Details      string            `gorm:"type:text" json:"details"`
	Category     string            `gorm:"size:64;not null;index" json:"category"`
	User         string            `gorm:"size:128;not null;default:'You'" json:"user"`
	Icon         string            `gorm:"size:64" json:"icon"`
	RelatedID    *uint             `json:"related_id"`
	RelatedModel string            `gorm:"size:64" json:"related_model"`
	Metadata     datatypes.JSONMap `gorm:"type:json" json:"metadata"`
	IsVisible    bool              `gorm:"not null;default:true;index" json:"is_visible"`
	CreatedAt    time.Time         `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}
