package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/bolajio/portfolio-api/internal/app"
	iauth "github.com/bolajio/portfolio-api/internal/auth"
	"github.com/bolajio/portfolio-api/internal/handlers"
	"github.com/bolajio/portfolio-api/internal/middleware"
	"github.com/bolajio/portfolio-api/internal/services"
	"github.com/bolajio/portfolio-api/pkg/mail"
)

// NewRouter builds the Gin engine, wires middleware, and registers all routes.
func NewRouter(db *gorm.DB, jwt *iauth.JWTService, mailer mail.Mailer, cfg *app.Config) (*gin.Engine, error) {
	if db == nil {
		return nil, fmt.Errorf("database handle must be provided")
	}
	if jwt == nil {
		return nil, fmt.Errorf("jwt service must be provided")
	}
	if cfg == nil {
		return nil, fmt.Errorf("config must be provided")
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS())
	// Basic rate limiting: 100 requests/minute per IP+path
	r.Use(middleware.RateLimit(100, time.Minute))

	r.NoRoute(middleware.NotFoundHandler)

	// Operational endpoints
	r.GET("/health", handlers.Health(db))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Uploaded files are served from local disk
	r.Static(cfg.Uploads.BaseURL, cfg.Uploads.Dir)

	// Services
	recipient := cfg.Email.ContactRecipient

	adminService, err := services.NewAdminService(db, mailer, jwt,
		services.WithOTPExpiry(cfg.Auth.OTP.Expiry))
	if err != nil {
		return nil, err
	}
	projectService, err := services.NewProjectService(db)
	if err != nil {
		return nil, err
	}
	blogService, err := services.NewBlogService(db, services.WithBlogAuthor(cfg.Site.Author))
	if err != nil {
		return nil, err
	}
	marketplaceService, err := services.NewMarketplaceService(db, mailer,
		services.WithOrderRecipient(recipient))
	if err != nil {
		return nil, err
	}
	bookingService, err := services.NewBookingService(db, mailer,
		services.WithBookingRecipient(recipient))
	if err != nil {
		return nil, err
	}
	aboutService, err := services.NewAboutService(db)
	if err != nil {
		return nil, err
	}
	contactService, err := services.NewContactService(mailer, recipient)
	if err != nil {
		return nil, err
	}
	uploadService, err := services.NewUploadService(cfg.Uploads.Dir, cfg.Uploads.BaseURL, cfg.Uploads.MaxSizeMB)
	if err != nil {
		return nil, err
	}

	// Public routes live under /api; mutations require a bearer token and
	// mount under /api/admin.
	public := r.Group("/api")
	admin := r.Group("/api/admin")
	admin.Use(middleware.Auth(jwt))

	registerAuthRoutes(public, handlers.NewAuthHandler(adminService))
	registerProjectRoutes(public, admin, handlers.NewProjectHandler(projectService))
	registerBlogRoutes(public, admin, handlers.NewBlogHandler(blogService))
	registerMarketplaceRoutes(public, admin, handlers.NewMarketplaceHandler(marketplaceService))
	registerBookingRoutes(public, admin, handlers.NewBookingHandler(bookingService))
	registerAboutRoutes(public, admin, handlers.NewAboutHandler(aboutService))
	registerContactRoutes(public, handlers.NewContactHandler(contactService))
	registerUploadRoutes(admin, handlers.NewUploadHandler(uploadService))

	return r, nil
}
