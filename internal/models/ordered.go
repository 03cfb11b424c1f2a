package models

import (
	"strings"
	"time"
)

// Ordered carries the identity, timestamps and display position shared by
// every content collection. The position is stored as display_order because
// ORDER is reserved in SQL; the JSON field keeps the public name.
type Ordered struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	DisplayOrder int       `gorm:"column:display_order;not null;default:0;index" json:"order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// EntityID returns the primary key.
func (o *Ordered) EntityID() uint { return o.ID }

// OrderValue returns the current display position.
func (o *Ordered) OrderValue() int { return o.DisplayOrder }

// SetOrderValue assigns the display position.
func (o *Ordered) SetOrderValue(value int) { o.DisplayOrder = value }

// OrderedEntity is implemented by every model embedding Ordered.
type OrderedEntity interface {
	EntityID() uint
	OrderValue() int
	SetOrderValue(int)
}

func encodeTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		trimmed := strings.TrimSpace(tag)
		if trimmed == "" {
			continue
		}
		cleaned = append(cleaned, trimmed)
	}
	if len(cleaned) == 0 {
		return ""
	}
	return "|" + strings.Join(cleaned, "|") + "|"
}

func decodeTags(raw string) []string {
	raw = strings.Trim(raw, "|")
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, "|")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		tags = append(tags, trimmed)
	}
	return tags
}
