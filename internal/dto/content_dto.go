package dto

import "time"

// SkillRequest creates a skill group.
type SkillRequest struct {
	Category string   `json:"category" validate:"required"`
	Items    []string `json:"items" validate:"required,min=1"`
}

// SkillUpdateRequest captures a partial skill update.
type SkillUpdateRequest struct {
	Category *string   `json:"category" validate:"omitempty,min=1"`
	Items    *[]string `json:"items" validate:"omitempty,min=1"`
}

// SkillResponse serialises a skill group.
type SkillResponse struct {
	ID        uint      `json:"id"`
	Category  string    `json:"category"`
	Items     []string  `json:"items"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProjectRequest creates a project.
type ProjectRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	ImageURL    string   `json:"image_url" validate:"required"`
	GithubURL   string   `json:"github_url" validate:"required"`
	LiveURL     string   `json:"live_url" validate:"required"`
	Tags        []string `json:"tags" validate:"required,min=1"`
	Featured    *bool    `json:"featured"`
}

// ProjectUpdateRequest captures a partial project update.
type ProjectUpdateRequest struct {
	Title       *string   `json:"title" validate:"omitempty,min=1"`
	Description *string   `json:"description" validate:"omitempty,min=1"`
	ImageURL    *string   `json:"image_url" validate:"omitempty,min=1"`
	GithubURL   *string   `json:"github_url" validate:"omitempty,min=1"`
	LiveURL     *string   `json:"live_url" validate:"omitempty,min=1"`
	Tags        *[]string `json:"tags" validate:"omitempty,min=1"`
	Featured    *bool     `json:"featured"`
}

// ProjectResponse serialises a project.
type ProjectResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	GithubURL   string    `json:"github_url"`
	LiveURL     string    `json:"live_url"`
	Tags        []string  `json:"tags"`
	Featured    bool      `json:"featured"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ExperienceRequest creates a professional position entry.
type ExperienceRequest struct {
	Company          string   `json:"company" validate:"required"`
	Position         string   `json:"position" validate:"required"`
	Period           string   `json:"period" validate:"required"`
	Description      string   `json:"description" validate:"required"`
	Achievements     []string `json:"achievements"`
	Technologies     []string `json:"technologies"`
	Responsibilities []string `json:"responsibilities"`
}

// ExperienceUpdateRequest captures a partial experience update.
type ExperienceUpdateRequest struct {
	Company          *string   `json:"company" validate:"omitempty,min=1"`
	Position         *string   `json:"position" validate:"omitempty,min=1"`
	Period           *string   `json:"period" validate:"omitempty,min=1"`
	Description      *string   `json:"description" validate:"omitempty,min=1"`
	Achievements     *[]string `json:"achievements"`
	Technologies     *[]string `json:"technologies"`
	Responsibilities *[]string `json:"responsibilities"`
}

// ExperienceResponse serialises an experience entry.
type ExperienceResponse struct {
	ID               uint      `json:"id"`
	Company          string    `json:"company"`
	Position         string    `json:"position"`
	Period           string    `json:"period"`
	Description      string    `json:"description"`
	Achievements     []string  `json:"achievements"`
	Technologies     []string  `json:"technologies"`
	Responsibilities []string  `json:"responsibilities"`
	Order            int       `json:"order"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// EducationRequest creates an education entry.
type EducationRequest struct {
	Institution string `json:"institution" validate:"required"`
	Degree      string `json:"degree" validate:"required"`
	Period      string `json:"period" validate:"required"`
	Description string `json:"description" validate:"required"`
	Type        string `json:"type" validate:"omitempty,oneof=degree certification course"`
}

// EducationUpdateRequest captures a partial education update.
type EducationUpdateRequest struct {
	Institution *string `json:"institution" validate:"omitempty,min=1"`
	Degree      *string `json:"degree" validate:"omitempty,min=1"`
	Period      *string `json:"period" validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty,min=1"`
	Type        *string `json:"type" validate:"omitempty,oneof=degree certification course"`
}

// EducationResponse serialises an education entry.
type EducationResponse struct {
	ID          uint      `json:"id"`
	Institution string    `json:"institution"`
	Degree      string    `json:"degree"`
	Period      string    `json:"period"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GalleryRequest creates a gallery item.
type GalleryRequest struct {
	Title       string `json:"title" validate:"required"`
	ImageURL    string `json:"image_url" validate:"required"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// GalleryUpdateRequest captures a partial gallery update.
type GalleryUpdateRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	ImageURL    *string `json:"image_url" validate:"omitempty,min=1"`
	Category    *string `json:"category" validate:"omitempty,min=1"`
	Description *string `json:"description"`
}

// GalleryResponse serialises a gallery item.
type GalleryResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	ImageURL    string    `json:"image_url"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BlogRequest creates a blog post.
type BlogRequest struct {
	Title        string    `json:"title" validate:"required"`
	Slug         string    `json:"slug" validate:"required"`
	Description  string    `json:"description" validate:"required"`
	Content      string    `json:"content" validate:"required"`
	ReadTime     string    `json:"read_time" validate:"required"`
	PublishedAt  time.Time `json:"published_at" validate:"required"`
	AuthorName   string    `json:"author_name" validate:"required"`
	AuthorAvatar string    `json:"author_avatar"`
	Tags         []string  `json:"tags"`
}

// BlogUpdateRequest captures a partial blog post update.
type BlogUpdateRequest struct {
	Title        *string    `json:"title" validate:"omitempty,min=1"`
	Slug         *string    `json:"slug" validate:"omitempty,min=1"`
	Description  *string    `json:"description" validate:"omitempty,min=1"`
	Content      *string    `json:"content" validate:"omitempty,min=1"`
	ReadTime     *string    `json:"read_time" validate:"omitempty,min=1"`
	PublishedAt  *time.Time `json:"published_at"`
	AuthorName   *string    `json:"author_name" validate:"omitempty,min=1"`
	AuthorAvatar *string    `json:"author_avatar"`
	Tags         *[]string  `json:"tags"`
}

// BlogResponse serialises a blog post.
type BlogResponse struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description"`
	Content      string    `json:"content"`
	ReadTime     string    `json:"read_time"`
	PublishedAt  time.Time `json:"published_at"`
	AuthorName   string    `json:"author_name"`
	AuthorAvatar string    `json:"author_avatar"`
	Tags         []string  `json:"tags"`
	Order        int       `json:"order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// FeedbackRequest creates a testimonial. ProjectName is mandatory when the
// feedback refers to a specific project.
type FeedbackRequest struct {
	Name        string `json:"name" validate:"required"`
	Role        string `json:"role" validate:"required"`
	Feedback    string `json:"feedback" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=project general"`
	ProjectName string `json:"project_name" validate:"required_if=Type project"`
	Rating      int    `json:"rating" validate:"omitempty,min=1,max=5"`
	IsApproved  *bool  `json:"is_approved"`
	IsVisible   *bool  `json:"is_visible"`
	Avatar      string `json:"avatar"`
}

// FeedbackUpdateRequest captures a partial testimonial update, including the
// moderation flags.
type FeedbackUpdateRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Role        *string `json:"role" validate:"omitempty,min=1"`
	Feedback    *string `json:"feedback" validate:"omitempty,min=1"`
	Type        *string `json:"type" validate:"omitempty,oneof=project general"`
	ProjectName *string `json:"project_name"`
	Rating      *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	IsApproved  *bool   `json:"is_approved"`
	IsVisible   *bool   `json:"is_visible"`
	Avatar      *string `json:"avatar"`
}

// FeedbackResponse serialises a testimonial.
type FeedbackResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	Feedback    string    `json:"feedback"`
	Type        string    `json:"type"`
	ProjectName string    `json:"project_name,omitempty"`
	Rating      int       `json:"rating"`
	IsApproved  bool      `json:"is_approved"`
	IsVisible   bool      `json:"is_visible"`
	Avatar      string    `json:"avatar,omitempty"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
