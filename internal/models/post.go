package models

import "time"

// Post is a blog article addressed publicly by slug.
type Post struct {
	BaseModel

	Title      string    `gorm:"uniqueIndex;not null" json:"title"`
	Slug       string    `gorm:"uniqueIndex;not null" json:"slug"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	Excerpt    string    `gorm:"size:300" json:"excerpt"`
	Author     string    `json:"author"`
	DatePosted time.Time `gorm:"index;not null" json:"date_posted"`
	ImageURL   string    `json:"image_url"`
	IsFeatured bool      `gorm:"default:false;not null" json:"is_featured"`
	ViewCount  int       `gorm:"default:0;not null" json:"view_count"`

	CategoryID *string   `gorm:"type:uuid;index" json:"category_id"`
	Category   *Category `json:"category,omitempty"`

	ReadlistEntries []ReadlistEntry `gorm:"foreignKey:PostID" json:"-"`
}
