package models

// Category groups blog posts and carries a display colour for the frontend.
type Category struct {
	BaseModel

	Name  string `gorm:"uniqueIndex;not null" json:"name"`
	Slug  string `gorm:"uniqueIndex;not null" json:"slug"`
	Color string `gorm:"size:7;not null;default:#ffffff" json:"color"`

	Posts []Post `gorm:"foreignKey:CategoryID" json:"-"`
}
