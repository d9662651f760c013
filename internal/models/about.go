package models

// AboutProfile holds the single about-page biography row. It is created with
// a default bio on first read.
type AboutProfile struct {
	BaseModel

	Bio        string `gorm:"type:text;not null" json:"bio"`
	SpotifyURL string `json:"spotify_url"`
}

// Skill is a named skill with a frontend icon identifier.
type Skill struct {
	BaseModel

	Name     string `gorm:"size:50;not null" json:"name"`
	IconName string `gorm:"size:50;not null" json:"icon_name"`
}

// Tool is a named tool with a frontend icon identifier.
type Tool struct {
	BaseModel

	Name     string `gorm:"size:50;not null" json:"name"`
	IconName string `gorm:"size:50;not null" json:"icon_name"`
}

// WorkExperience is a single CV entry, ordered by DisplayOrder.
type WorkExperience struct {
	BaseModel

	Role        string `gorm:"size:100;not null" json:"role"`
	Company     string `gorm:"size:100;not null" json:"company"`
	Duration    string `gorm:"size:100;not null" json:"duration"`
	Description string `gorm:"type:text" json:"description"`

	DisplayOrder int `gorm:"default:0;not null" json:"display_order"`
}
