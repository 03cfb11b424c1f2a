package models

import (
	"time"

	"gorm.io/datatypes"
)

// SiteProfile is the single document holding the public site identity
// (hero, about, social links). Exactly one row exists.
type SiteProfile struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Data      datatypes.JSON `gorm:"type:json" json:"data"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// UploadRecord stores metadata about uploaded media assets.
type UploadRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FileName  string    `gorm:"size:255;not null" json:"file_name"`
	URL       string    `gorm:"size:512;not null" json:"url"`
	MimeType  string    `gorm:"size:128;not null" json:"mime_type"`
	SizeBytes int64     `gorm:"not null" json:"size_bytes"`
	Checksum  string    `gorm:"size:128;index" json:"checksum"`
	CreatedAt time.Time `json:"created_at"`
}
