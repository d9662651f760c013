package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bolajio/portfolio-api/internal/services"
	"github.com/bolajio/portfolio-api/pkg/response"
)

// MarketplaceHandler exposes the product, order, and stats endpoints.
type MarketplaceHandler struct {
	svc *services.MarketplaceService
}

// NewMarketplaceHandler constructs a MarketplaceHandler.
func NewMarketplaceHandler(svc *services.MarketplaceService) *MarketplaceHandler {
	return &MarketplaceHandler{svc: svc}
}

// GET /api/marketplace/products
func (h *MarketplaceHandler) ListProducts(c *gin.Context) {
	storefront, err := h.svc.ListProducts(requestContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, storefront)
}

// GET /api/marketplace/products/:slug
func (h *MarketplaceHandler) GetProduct(c *gin.Context) {
	product, err := h.svc.GetProductBySlug(requestContext(c), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, product)
}

// POST /api/marketplace/orders
func (h *MarketplaceHandler) CreateOrder(c *gin.Context) {
	var req services.CreateOrderInput
	if !bindAndValidate(c, &req) {
		return
	}

	order, err := h.svc.CreateOrder(requestContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, order)
}

// GET /api/admin/orders
func (h *MarketplaceHandler) ListOrders(c *gin.Context) {
	orders, err := h.svc.ListOrders(requestContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, orders)
}

// GET /api/admin/marketplace/stats
func (h *MarketplaceHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(requestContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}

// POST /api/admin/products
func (h *MarketplaceHandler) CreateProduct(c *gin.Context) {
	var req services.CreateProductInput
	if !bindAndValidate(c, &req) {
		return
	}

	product, err := h.svc.CreateProduct(requestContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, product)
}

// PUT /api/admin/products/:id
func (h *MarketplaceHandler) UpdateProduct(c *gin.Context) {
	var req services.UpdateProductInput
	if !bindAndValidate(c, &req) {
		return
	}

	product, err := h.svc.UpdateProduct(requestContext(c), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, product)
}

// DELETE /api/admin/products/:id
func (h *MarketplaceHandler) DeleteProduct(c *gin.Context) {
	if err := h.svc.DeleteProduct(requestContext(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Product deleted"})
}

type productCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// POST /api/admin/product-categories
func (h *MarketplaceHandler) CreateCategory(c *gin.Context) {
	var req productCategoryRequest
	if !bindAndValidate(c, &req) {
		return
	}

	category, err := h.svc.CreateCategory(requestContext(c), req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, category)
}

// DELETE /api/admin/product-categories/:id
func (h *MarketplaceHandler) DeleteCategory(c *gin.Context) {
	if err := h.svc.DeleteCategory(requestContext(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Category deleted"})
}
