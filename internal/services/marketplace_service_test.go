package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bolajio/portfolio-api/internal/database/testutil"
	"github.com/bolajio/portfolio-api/internal/models"
)

func newMarketplaceFixture(t *testing.T, opts ...MarketplaceOption) (*MarketplaceService, *stubMailer, *gorm.DB) {
	t.Helper()
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	mailer := &stubMailer{}
	svc, err := NewMarketplaceService(db, mailer, opts...)
	require.NoError(t, err)
	return svc, mailer, db
}

func TestMarketplaceProductLifecycle(t *testing.T) {
	svc, _, _ := newMarketplaceFixture(t)
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, CreateProductInput{
		Name:        "Budget Tracker App",
		Description: "Track spending",
		Features:    []string{"Charts", "Export"},
		Tags:        []string{"finance", "mobile"},
		Price:       49.99,
		ProductURL:  "https://example.com/budget",
	})
	require.NoError(t, err)
	require.Equal(t, "budget-tracker-app", created.Slug)
	require.Equal(t, []string{"Charts", "Export"}, created.Features)
	require.Equal(t, []string{"finance", "mobile"}, created.Tags)

	_, err = svc.CreateProduct(ctx, CreateProductInput{
		Name: "Budget Tracker App", Description: "dup", ProductURL: "https://example.com",
	})
	requireAppCode(t, err, "DUPLICATE_PRODUCT")

	fetched, err := svc.GetProductBySlug(ctx, "budget-tracker-app")
	require.NoError(t, err)
	require.Equal(t, created.ID, fetched.ID)

	newName := "Expense Tracker"
	updated, err := svc.UpdateProduct(ctx, created.ID, UpdateProductInput{Name: &newName})
	require.NoError(t, err)
	require.Equal(t, "expense-tracker", updated.Slug)

	require.NoError(t, svc.DeleteProduct(ctx, created.ID))
	_, err = svc.GetProductBySlug(ctx, "expense-tracker")
	requireAppCode(t, err, "NOT_FOUND")
}

func TestMarketplaceCreateOrderNotifiesBothSides(t *testing.T) {
	svc, mailer, db := newMarketplaceFixture(t, WithOrderRecipient("owner@example.com"))
	ctx := context.Background()

	product, err := svc.CreateProduct(ctx, CreateProductInput{
		Name: "App", Description: "d", ProductURL: "https://example.com",
	})
	require.NoError(t, err)

	order, err := svc.CreateOrder(ctx, CreateOrderInput{
		CustomerName:  "Ada",
		CustomerEmail: "Ada@Example.com",
		ProductID:     product.ID,
	})
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusPending, order.Status)
	require.Equal(t, "ada@example.com", order.CustomerEmail)
	require.Equal(t, "App", order.ProductName)

	messages := mailer.sent()
	require.Len(t, messages, 2)
	require.Equal(t, []string{"owner@example.com"}, messages[0].To)
	require.Equal(t, []string{"ada@example.com"}, messages[1].To)

	var count int64
	require.NoError(t, db.Model(&models.ProductOrder{}).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestMarketplaceOrderSurvivesMailFailure(t *testing.T) {
	svc, mailer, db := newMarketplaceFixture(t, WithOrderRecipient("owner@example.com"))
	mailer.err = errors.New("smtp down")
	ctx := context.Background()

	product, err := svc.CreateProduct(ctx, CreateProductInput{
		Name: "App", Description: "d", ProductURL: "https://example.com",
	})
	require.NoError(t, err)

	_, err = svc.CreateOrder(ctx, CreateOrderInput{
		CustomerName:  "Ada",
		CustomerEmail: "ada@example.com",
		ProductID:     product.ID,
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.ProductOrder{}).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestMarketplaceOrderUnknownProduct(t *testing.T) {
	svc, _, _ := newMarketplaceFixture(t)

	_, err := svc.CreateOrder(context.Background(), CreateOrderInput{
		CustomerName:  "Ada",
		CustomerEmail: "ada@example.com",
		ProductID:     "missing",
	})
	requireAppCode(t, err, "NOT_FOUND")
}

func TestMarketplaceStatsSumsSoldProducts(t *testing.T) {
	svc, _, _ := newMarketplaceFixture(t)
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, CreateProductInput{
		Name: "Sold One", Description: "d", ProductURL: "https://example.com", Price: 100, IsSold: true,
	})
	require.NoError(t, err)
	_, err = svc.CreateProduct(ctx, CreateProductInput{
		Name: "Sold Two", Description: "d", ProductURL: "https://example.com", Price: 50.5, IsSold: true,
	})
	require.NoError(t, err)
	_, err = svc.CreateProduct(ctx, CreateProductInput{
		Name: "Unsold", Description: "d", ProductURL: "https://example.com", Price: 999,
	})
	require.NoError(t, err)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	require.InDelta(t, 150.5, stats.TotalRevenue, 0.001)
	require.Equal(t, int64(2), stats.AppsSold)
}

func TestMarketplaceCategoryDetachesProducts(t *testing.T) {
	svc, _, db := newMarketplaceFixture(t)
	ctx := context.Background()

	category, err := svc.CreateCategory(ctx, "Mobile Apps")
	require.NoError(t, err)
	require.Equal(t, "mobile-apps", category.Slug)

	product, err := svc.CreateProduct(ctx, CreateProductInput{
		Name: "App", Description: "d", ProductURL: "https://example.com", CategoryID: &category.ID,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCategory(ctx, category.ID))

	var stored models.Product
	require.NoError(t, db.Where("id = ?", product.ID).First(&stored).Error)
	require.Nil(t, stored.CategoryID)
}

func TestMarketplaceListOrdersNewestFirst(t *testing.T) {
	now := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	svc, _, _ := newMarketplaceFixture(t, WithMarketplaceClock(clock))
	ctx := context.Background()

	product, err := svc.CreateProduct(ctx, CreateProductInput{
		Name: "App", Description: "d", ProductURL: "https://example.com",
	})
	require.NoError(t, err)

	_, err = svc.CreateOrder(ctx, CreateOrderInput{CustomerName: "First", CustomerEmail: "f@example.com", ProductID: product.ID})
	require.NoError(t, err)

	now = now.Add(time.Hour)
	_, err = svc.CreateOrder(ctx, CreateOrderInput{CustomerName: "Second", CustomerEmail: "s@example.com", ProductID: product.ID})
	require.NoError(t, err)

	orders, err := svc.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	require.Equal(t, "Second", orders[0].CustomerName)
	require.Equal(t, "App", orders[0].ProductName)
}
