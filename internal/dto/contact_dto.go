package dto

import "time"

// ContactSubmitRequest is the public contact form payload. Website is a
// honeypot field; humans never fill it.
type ContactSubmitRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Subject  string `json:"subject"`
	Message  string `json:"message" validate:"required,min=2"`
	Honeypot string `json:"website"`

	IPAddress string `json:"-"`
	UserAgent string `json:"-"`
}

// ContactFlagsRequest applies a partial triage update. The flags are
// independent booleans; any combination is legal.
type ContactFlagsRequest struct {
	Read         *bool   `json:"read"`
	Starred      *bool   `json:"starred"`
	Archived     *bool   `json:"archived"`
	Replied      *bool   `json:"replied"`
	ReplyMessage *string `json:"reply_message"`
}

// ContactListRequest filters the admin message list.
// Box is one of all|unread|starred|archived|inbox.
type ContactListRequest struct {
	Box      string
	Page     int
	PageSize int
}

// ContactMessageResponse serialises one inbound message.
type ContactMessageResponse struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Subject      string    `json:"subject,omitempty"`
	Message      string    `json:"message"`
	Read         bool      `json:"read"`
	Starred      bool      `json:"starred"`
	Archived     bool      `json:"archived"`
	Replied      bool      `json:"replied"`
	ReplyMessage string    `json:"reply_message,omitempty"`
	IPAddress    string    `json:"ip_address,omitempty"`
	UserAgent    string    `json:"user_agent,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ContactListResponse wraps a paginated message query result.
type ContactListResponse struct {
	Items      []ContactMessageResponse `json:"items"`
	Pagination PaginationMeta           `json:"pagination"`
}
