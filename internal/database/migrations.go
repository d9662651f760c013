package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/bolajio/portfolio-api/internal/models"
)

const defaultBio = "Welcome to my page. Edit this bio in the admin panel."

// AutoMigrate creates or updates the database schema for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Admin{},
		&models.Project{},
		&models.Category{},
		&models.Post{},
		&models.Readlist{},
		&models.ReadlistEntry{},
		&models.ProductCategory{},
		&models.Product{},
		&models.ProductOrder{},
		&models.Availability{},
		&models.Booking{},
		&models.AboutProfile{},
		&models.Skill{},
		&models.Tool{},
		&models.WorkExperience{},
	)
}

// SeedData inserts the default about-page profile when none exists.
func SeedData(db *gorm.DB) error {
	var profile models.AboutProfile
	err := db.First(&profile).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return db.Create(&models.AboutProfile{Bio: defaultBio}).Error
}
