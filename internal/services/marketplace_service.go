package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/bolajio/portfolio-api/internal/models"
	appErrors "github.com/bolajio/portfolio-api/pkg/errors"
	"github.com/bolajio/portfolio-api/pkg/logger"
	"github.com/bolajio/portfolio-api/pkg/mail"
	"github.com/bolajio/portfolio-api/pkg/metrics"
)

// MarketplaceOption customises the MarketplaceService.
type MarketplaceOption func(*MarketplaceService)

// WithOrderRecipient sets the inbox notified of new orders.
func WithOrderRecipient(email string) MarketplaceOption {
	return func(s *MarketplaceService) {
		s.recipient = email
	}
}

// WithMarketplaceClock injects a custom time source.
func WithMarketplaceClock(clock func() time.Time) MarketplaceOption {
	return func(s *MarketplaceService) {
		if clock != nil {
			s.now = clock
		}
	}
}

// MarketplaceService manages products, categories, and order inquiries.
type MarketplaceService struct {
	db        *gorm.DB
	mailer    mail.Mailer
	recipient string
	now       func() time.Time
}

// NewMarketplaceService constructs a MarketplaceService.
func NewMarketplaceService(db *gorm.DB, mailer mail.Mailer, opts ...MarketplaceOption) (*MarketplaceService, error) {
	if db == nil {
		return nil, errors.New("marketplace service: db is required")
	}

	service := &MarketplaceService{
		db:     db,
		mailer: mailer,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service, nil
}

// Storefront bundles the marketplace landing payload.
type Storefront struct {
	Products   []ProductView         `json:"products"`
	Categories []ProductCategoryView `json:"categories"`
}

// ListProducts returns every product together with the category filter list.
func (s *MarketplaceService) ListProducts(ctx context.Context) (*Storefront, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).Preload("Category").
		Order("created_at DESC").
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("marketplace service: list products: %w", err)
	}

	categories, err := s.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	storefront := &Storefront{
		Products:   make([]ProductView, 0, len(products)),
		Categories: categories,
	}
	for _, product := range products {
		storefront.Products = append(storefront.Products, newProductView(product))
	}
	return storefront, nil
}

// GetProductBySlug fetches one product for its detail page.
func (s *MarketplaceService) GetProductBySlug(ctx context.Context, slug string) (*ProductView, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).Preload("Category").
		Where("slug = ?", slug).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.NewNotFound("Product not found")
		}
		return nil, fmt.Errorf("marketplace service: find product: %w", err)
	}

	view := newProductView(product)
	return &view, nil
}

// CreateOrderInput captures a customer's order inquiry.
type CreateOrderInput struct {
	CustomerName  string `json:"customer_name" validate:"required"`
	CustomerEmail string `json:"customer_email" validate:"required,email"`
	CustomerPhone string `json:"customer_phone"`
	ProductID     string `json:"product_id" validate:"required"`
}

// CreateOrder records an inquiry and notifies both sides by email. The
// order stands even when a notification fails; delivery problems are only
// logged.
func (s *MarketplaceService) CreateOrder(ctx context.Context, input CreateOrderInput) (*OrderView, error) {
	name := strings.TrimSpace(input.CustomerName)
	email := strings.TrimSpace(strings.ToLower(input.CustomerEmail))
	if name == "" || email == "" || strings.TrimSpace(input.ProductID) == "" {
		return nil, appErrors.NewBadRequest("customer name, email and product are required")
	}

	var product models.Product
	if err := s.db.WithContext(ctx).Where("id = ?", input.ProductID).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.NewNotFound("Product not found")
		}
		return nil, fmt.Errorf("marketplace service: find product: %w", err)
	}

	order := models.ProductOrder{
		CustomerName:  name,
		CustomerEmail: email,
		CustomerPhone: strings.TrimSpace(input.CustomerPhone),
		ProductID:     product.ID,
		OrderDate:     s.now().UTC(),
		Status:        models.OrderStatusPending,
	}
	if err := s.db.WithContext(ctx).Create(&order).Error; err != nil {
		return nil, fmt.Errorf("marketplace service: create order: %w", err)
	}

	metrics.OrdersReceived.Inc()
	s.sendOrderMail(ctx, order, product)

	order.Product = &product
	view := newOrderView(order)
	return &view, nil
}

func (s *MarketplaceService) sendOrderMail(ctx context.Context, order models.ProductOrder, product models.Product) {
	if s.mailer == nil {
		return
	}
	log := logger.WithModule("marketplace")

	if s.recipient != "" {
		notice := mail.Message{
			To:      []string{s.recipient},
			Subject: fmt.Sprintf("New Order: %s", product.Name),
			Body: fmt.Sprintf(
				"New order received.\n\nProduct: %s\nCustomer: %s\nEmail: %s\nPhone: %s\n",
				product.Name, order.CustomerName, order.CustomerEmail, order.CustomerPhone,
			),
		}
		if err := s.mailer.Send(ctx, notice); err != nil {
			log.Warn("order notification to owner failed", zap.Error(err))
		}
	}

	receipt := mail.Message{
		To:      []string{order.CustomerEmail},
		Subject: fmt.Sprintf("Order Received: %s", product.Name),
		Body: fmt.Sprintf(
			"Hi %s,\n\nThanks for your interest in %s. I'll be in touch shortly to complete your order.\n",
			order.CustomerName, product.Name,
		),
	}
	if err := s.mailer.Send(ctx, receipt); err != nil {
		log.Warn("order confirmation to customer failed", zap.Error(err))
	}
}

// ListOrders returns all orders for the admin panel, newest first.
func (s *MarketplaceService) ListOrders(ctx context.Context) ([]OrderView, error) {
	var orders []models.ProductOrder
	if err := s.db.WithContext(ctx).Preload("Product").
		Order("order_date DESC").
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("marketplace service: list orders: %w", err)
	}

	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, newOrderView(order))
	}
	return views, nil
}

// MarketplaceStats summarises sales for the admin dashboard.
type MarketplaceStats struct {
	TotalRevenue float64 `json:"total_revenue"`
	AppsSold     int64   `json:"apps_sold"`
}

// Stats sums the list price of sold products.
func (s *MarketplaceService) Stats(ctx context.Context) (*MarketplaceStats, error) {
	var stats MarketplaceStats
	row := s.db.WithContext(ctx).Model(&models.Product{}).
		Where("is_sold = ?", true).
		Select("COALESCE(SUM(price), 0) AS total_revenue, COUNT(*) AS apps_sold")
	if err := row.Scan(&stats).Error; err != nil {
		return nil, fmt.Errorf("marketplace service: stats: %w", err)
	}
	return &stats, nil
}

// CreateProductInput captures the fields accepted when listing a product.
type CreateProductInput struct {
	Name          string   `json:"name" validate:"required"`
	Subtitle      string   `json:"subtitle"`
	Description   string   `json:"description" validate:"required"`
	Features      []string `json:"features"`
	Price         float64  `json:"price"`
	ImageURL      string   `json:"image_url"`
	GalleryImages []string `json:"gallery_images"`
	Tags          []string `json:"tags"`
	ProductURL    string   `json:"product_url" validate:"required"`
	DemoURL       string   `json:"demo_url"`
	Rating        float64  `json:"rating"`
	RatingCount   int      `json:"rating_count"`
	IsSold        bool     `json:"is_sold"`
	CategoryID    *string  `json:"category_id"`
}

// CreateProduct stores a new product, deriving its slug from the name.
func (s *MarketplaceService) CreateProduct(ctx context.Context, input CreateProductInput) (*ProductView, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, appErrors.NewBadRequest("name is required")
	}

	product := models.Product{
		Name:          name,
		Slug:          generateSlug(name),
		Subtitle:      input.Subtitle,
		Description:   input.Description,
		Features:      strings.Join(input.Features, "\n"),
		Price:         input.Price,
		ImageURL:      input.ImageURL,
		GalleryImages: strings.Join(input.GalleryImages, ","),
		Tags:          strings.Join(input.Tags, ","),
		ProductURL:    input.ProductURL,
		DemoURL:       input.DemoURL,
		Rating:        input.Rating,
		RatingCount:   input.RatingCount,
		IsSold:        input.IsSold,
		CategoryID:    normalizeID(input.CategoryID),
	}

	if err := s.db.WithContext(ctx).Create(&product).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, appErrors.New("DUPLICATE_PRODUCT", "A product with that name already exists", 409).WithInternal(err)
		}
		return nil, fmt.Errorf("marketplace service: create product: %w", err)
	}

	view := newProductView(product)
	return &view, nil
}

// UpdateProductInput captures the optional fields of a product update.
type UpdateProductInput struct {
	Name          *string   `json:"name"`
	Subtitle      *string   `json:"subtitle"`
	Description   *string   `json:"description"`
	Features      *[]string `json:"features"`
	Price         *float64  `json:"price"`
	ImageURL      *string   `json:"image_url"`
	GalleryImages *[]string `json:"gallery_images"`
	Tags          *[]string `json:"tags"`
	ProductURL    *string   `json:"product_url"`
	DemoURL       *string   `json:"demo_url"`
	Rating        *float64  `json:"rating"`
	RatingCount   *int      `json:"rating_count"`
	IsSold        *bool     `json:"is_sold"`
	CategoryID    *string   `json:"category_id"`
}

// UpdateProduct applies the provided fields; renaming regenerates the slug.
func (s *MarketplaceService) UpdateProduct(ctx context.Context, id string, input UpdateProductInput) (*ProductView, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.NewNotFound("Product not found")
		}
		return nil, fmt.Errorf("marketplace service: find product: %w", err)
	}

	if input.Name != nil {
		product.Name = strings.TrimSpace(*input.Name)
		product.Slug = generateSlug(product.Name)
	}
	if input.Subtitle != nil {
		product.Subtitle = *input.Subtitle
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Features != nil {
		product.Features = strings.Join(*input.Features, "\n")
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.ImageURL != nil {
		product.ImageURL = *input.ImageURL
	}
	if input.GalleryImages != nil {
		product.GalleryImages = strings.Join(*input.GalleryImages, ",")
	}
	if input.Tags != nil {
		product.Tags = strings.Join(*input.Tags, ",")
	}
	if input.ProductURL != nil {
		product.ProductURL = *input.ProductURL
	}
	if input.DemoURL != nil {
		product.DemoURL = *input.DemoURL
	}
	if input.Rating != nil {
		product.Rating = *input.Rating
	}
	if input.RatingCount != nil {
		product.RatingCount = *input.RatingCount
	}
	if input.IsSold != nil {
		product.IsSold = *input.IsSold
	}
	if input.CategoryID != nil {
		product.CategoryID = normalizeID(input.CategoryID)
	}

	if err := s.db.WithContext(ctx).Save(&product).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, appErrors.New("DUPLICATE_PRODUCT", "A product with that name already exists", 409).WithInternal(err)
		}
		return nil, fmt.Errorf("marketplace service: update product: %w", err)
	}

	view := newProductView(product)
	return &view, nil
}

// DeleteProduct removes a product listing.
func (s *MarketplaceService) DeleteProduct(ctx context.Context, id string) error {
	var product models.Product
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErrors.NewNotFound("Product not found")
		}
		return fmt.Errorf("marketplace service: find product: %w", err)
	}

	if err := s.db.WithContext(ctx).Delete(&product).Error; err != nil {
		return fmt.Errorf("marketplace service: delete product: %w", err)
	}
	return nil
}

// ListCategories returns all product categories ordered by name.
func (s *MarketplaceService) ListCategories(ctx context.Context) ([]ProductCategoryView, error) {
	var categories []models.ProductCategory
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("marketplace service: list categories: %w", err)
	}

	views := make([]ProductCategoryView, 0, len(categories))
	for _, category := range categories {
		views = append(views, newProductCategoryView(category))
	}
	return views, nil
}

// CreateCategory stores a new product category.
func (s *MarketplaceService) CreateCategory(ctx context.Context, name string) (*ProductCategoryView, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, appErrors.NewBadRequest("name is required")
	}

	category := models.ProductCategory{
		Name: name,
		Slug: generateSlug(name),
	}
	if err := s.db.WithContext(ctx).Create(&category).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, appErrors.New("DUPLICATE_CATEGORY", "A category with that name already exists", 409).WithInternal(err)
		}
		return nil, fmt.Errorf("marketplace service: create category: %w", err)
	}

	view := newProductCategoryView(category)
	return &view, nil
}

// DeleteCategory removes a product category and detaches its products.
func (s *MarketplaceService) DeleteCategory(ctx context.Context, id string) error {
	var category models.ProductCategory
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErrors.NewNotFound("Category not found")
		}
		return fmt.Errorf("marketplace service: find category: %w", err)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Product{}).
			Where("category_id = ?", category.ID).
			Update("category_id", nil).Error; err != nil {
			return fmt.Errorf("detach products: %w", err)
		}
		if err := tx.Delete(&category).Error; err != nil {
			return fmt.Errorf("delete category: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("marketplace service: delete category: %w", err)
	}
	return nil
}
