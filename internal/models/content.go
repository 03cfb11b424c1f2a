package models

import (
	"time"

	"gorm.io/gorm"
)

// Skill groups free-text technology tags under a named category.
type Skill struct {
	Ordered
	Category string   `gorm:"size:128;not null" json:"category"`
	ItemsRaw string   `gorm:"column:items;type:text" json:"-"`
	Items    []string `gorm:"-" json:"items"`
}

// BeforeSave normalises the item list before persisting.
func (s *Skill) BeforeSave(tx *gorm.DB) error {
	s.ItemsRaw = encodeTags(s.Items)
	return nil
}

// AfterFind hydrates the item list after retrieval.
func (s *Skill) AfterFind(tx *gorm.DB) error {
	s.Items = decodeTags(s.ItemsRaw)
	return nil
}

// Project is a showcased piece of work with source and live links.
type Project struct {
	Ordered
	Title       string   `gorm:"size:255;not null" json:"title"`
	Description string   `gorm:"type:text;not null" json:"description"`
	ImageURL    string   `gorm:"size:512;not null" json:"image_url"`
	GithubURL   string   `gorm:"size:512;not null" json:"github_url"`
	LiveURL     string   `gorm:"size:512;not null" json:"live_url"`
	TagsRaw     string   `gorm:"column:tags;type:text" json:"-"`
	Tags        []string `gorm:"-" json:"tags"`
	Featured    bool     `gorm:"not null;default:true" json:"featured"`
}

// BeforeSave normalises tag data before persisting.
func (p *Project) BeforeSave(tx *gorm.DB) error {
	p.TagsRaw = encodeTags(p.Tags)
	return nil
}

// AfterFind hydrates the tag list after retrieval.
func (p *Project) AfterFind(tx *gorm.DB) error {
	p.Tags = decodeTags(p.TagsRaw)
	return nil
}

// Experience records a professional position.
type Experience struct {
	Ordered
	Company             string   `gorm:"size:255;not null" json:"company"`
	Position            string   `gorm:"size:255;not null" json:"position"`
	Period              string   `gorm:"size:128;not null" json:"period"`
	Description         string   `gorm:"type:text;not null" json:"description"`
	AchievementsRaw     string   `gorm:"column:achievements;type:text" json:"-"`
	Achievements        []string `gorm:"-" json:"achievements"`
	TechnologiesRaw     string   `gorm:"column:technologies;type:text" json:"-"`
	Technologies        []string `gorm:"-" json:"technologies"`
	ResponsibilitiesRaw string   `gorm:"column:responsibilities;type:text" json:"-"`
	Responsibilities    []string `gorm:"-" json:"responsibilities"`
}

func (e *Experience) BeforeSave(tx *gorm.DB) error {
	e.AchievementsRaw = encodeTags(e.Achievements)
	e.TechnologiesRaw = encodeTags(e.Technologies)
	e.ResponsibilitiesRaw = encodeTags(e.Responsibilities)
	return nil
}

func (e *Experience) AfterFind(tx *gorm.DB) error {
	e.Achievements = decodeTags(e.AchievementsRaw)
	e.Technologies = decodeTags(e.TechnologiesRaw)
	e.Responsibilities = decodeTags(e.ResponsibilitiesRaw)
	return nil
}

// Education records a degree, certification or course.
type Education struct {
	Ordered
	Institution string `gorm:"size:255;not null" json:"institution"`
	Degree      string `gorm:"size:255;not null" json:"degree"`
	Period      string `gorm:"size:128;not null" json:"period"`
	Description string `gorm:"type:text;not null" json:"description"`
	Type        string `gorm:"size:64;not null;default:'degree'" json:"type"`
}

// GalleryItem captures media published in the public gallery.
type GalleryItem struct {
	Ordered
	Title       string `gorm:"size:255;not null" json:"title"`
	ImageURL    string `gorm:"size:512;not null" json:"image_url"`
	Category    string `gorm:"size:128;not null;default:'general'" json:"category"`
	Description string `gorm:"type:text" json:"description"`
}

// BlogPost is a published article addressed by its unique slug.
type BlogPost struct {
	Ordered
	Title        string    `gorm:"size:255;not null" json:"title"`
	Slug         string    `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Description  string    `gorm:"type:text;not null" json:"description"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	ReadTime     string    `gorm:"size:64;not null" json:"read_time"`
	PublishedAt  time.Time `gorm:"not null" json:"published_at"`
	AuthorName   string    `gorm:"size:128;not null" json:"author_name"`
	AuthorAvatar string    `gorm:"size:512" json:"author_avatar"`
	TagsRaw      string    `gorm:"column:tags;type:text" json:"-"`
	Tags         []string  `gorm:"-" json:"tags"`
}

func (b *BlogPost) BeforeSave(tx *gorm.DB) error {
	b.TagsRaw = encodeTags(b.Tags)
	return nil
}

func (b *BlogPost) AfterFind(tx *gorm.DB) error {
	b.Tags = decodeTags(b.TagsRaw)
	return nil
}

// Feedback types.
const (
	FeedbackTypeProject = "project"
	FeedbackTypeGeneral = "general"
)

// Feedback is a testimonial; only approved and visible entries reach the
// public surface (moderation gate, not a delete).
type Feedback struct {
	Ordered
	Name        string `gorm:"size:128;not null" json:"name"`
	Role        string `gorm:"size:128;not null" json:"role"`
	Feedback    string `gorm:"type:text;not null" json:"feedback"`
	Type        string `gorm:"size:32;not null" json:"type"`
	ProjectName string `gorm:"size:255" json:"project_name"`
	Rating      int    `gorm:"not null;default:5" json:"rating"`
	IsApproved  bool   `gorm:"not null;default:false" json:"is_approved"`
	IsVisible   bool   `gorm:"not null;default:true" json:"is_visible"`
	Avatar      string `gorm:"size:512" json:"avatar"`
}
