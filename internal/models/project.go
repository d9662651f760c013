package models

// Project is a portfolio case study entry. TechStack and Tools are stored as
// comma separated text and split at the API boundary.
type Project struct {
	BaseModel

	Title        string   `gorm:"not null" json:"title"`
	Description  string   `gorm:"type:text;not null" json:"description"`
	Role         string   `json:"role"`
	TechStack    string   `json:"-"`
	Tools        string   `json:"-"`
	LiveURL      string   `json:"live_url"`
	GithubURL    string   `json:"github_url"`
	CaseStudyURL string   `json:"case_study_url"`
	ImageURL     string   `json:"image_url"`
	Duration     string   `json:"duration"`
	Cost         *float64 `json:"cost"`
	Collaborators string  `json:"collaborators"`

	DisplayOrder int `gorm:"default:0;not null" json:"display_order"`
}
