package models

// ProductCategory groups marketplace products.
type ProductCategory struct {
	BaseModel

	Name string `gorm:"uniqueIndex;not null" json:"name"`
	Slug string `gorm:"uniqueIndex;not null" json:"slug"`

	Products []Product `gorm:"foreignKey:CategoryID" json:"-"`
}

// Product is a marketplace listing. Features are newline separated text;
// GalleryImages and Tags are comma separated. All three are split at the API
// boundary.
type Product struct {
	BaseModel

	Name          string  `gorm:"not null" json:"name"`
	Slug          string  `gorm:"uniqueIndex;not null" json:"slug"`
	Subtitle      string  `json:"subtitle"`
	Description   string  `gorm:"type:text;not null" json:"description"`
	Features      string  `gorm:"type:text" json:"-"`
	Price         float64 `gorm:"not null" json:"price"`
	ImageURL      string  `json:"image_url"`
	GalleryImages string  `gorm:"type:text" json:"-"`
	ProductURL    string  `gorm:"not null" json:"product_url"`
	DemoURL       string  `json:"demo_url"`
	Tags          string  `json:"-"`
	Rating        float64 `gorm:"default:0" json:"rating"`
	RatingCount   int     `gorm:"default:0" json:"rating_count"`
	IsSold        bool    `gorm:"default:false;not null" json:"is_sold"`

	CategoryID *string          `gorm:"type:uuid;index" json:"category_id"`
	Category   *ProductCategory `json:"category,omitempty"`
}
