package models

import "time"

// ContactMessage stores an inbound visitor enquiry. The triage flags are
// independent booleans, not a state enum: archived+starred is legal.
type ContactMessage struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:128;not null" json:"name"`
	Email        string    `gorm:"size:160;not null;index" json:"email"`
	Subject      string    `gorm:"size:255" json:"subject"`
	Message      string    `gorm:"type:text;not null" json:"message"`
	Read         bool      `gorm:"not null;default:false;index" json:"read"`
	Starred      bool      `gorm:"not null;default:false;index" json:"starred"`
	Archived     bool      `gorm:"not null;default:false;index" json:"archived"`
	Replied      bool      `gorm:"not null;default:false" json:"replied"`
	ReplyMessage string    `gorm:"type:text" json:"reply_message"`
	IPAddress    string    `gorm:"size:64" json:"ip_address"`
	UserAgent    string    `gorm:"size:512" json:"user_agent"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
