package models

// Readlist is an ordered, curated series of posts.
type Readlist struct {
	BaseModel

	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Slug        string `gorm:"uniqueIndex;not null" json:"slug"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`

	DisplayOrder int `gorm:"default:0;not null" json:"display_order"`

	Entries []ReadlistEntry `gorm:"foreignKey:ReadlistID;constraint:OnDelete:CASCADE" json:"-"`
}

// ReadlistEntry links a post into a readlist at a given position.
type ReadlistEntry struct {
	PostID     string `gorm:"primaryKey;type:uuid" json:"post_id"`
	ReadlistID string `gorm:"primaryKey;type:uuid" json:"readlist_id"`
	Position   int    `gorm:"default:0;not null" json:"position"`

	Post     *Post     `json:"-"`
	Readlist *Readlist `json:"-"`
}

// TableName keeps the join table name explicit.
func (ReadlistEntry) TableName() string { return "readlist_entries" }
