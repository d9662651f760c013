package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bolajio/portfolio-api/internal/services"
	"github.com/bolajio/portfolio-api/pkg/response"
)

// BlogHandler exposes the blog endpoints: posts, categories, and readlists.
type BlogHandler struct {
	svc *services.BlogService
}

// NewBlogHandler constructs a BlogHandler.
func NewBlogHandler(svc *services.BlogService) *BlogHandler {
	return &BlogHandler{svc: svc}
}

// GET /api/blog/home-data
func (h *BlogHandler) HomeData(c *gin.Context) {
	page := parseIntQuery(c, "page", 1)

	data, err := h.svc.HomeData(requestContext(c), page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, data)
}

// GET /api/blog/search?q=
func (h *BlogHandler) Search(c *gin.Context) {
	posts, err := h.svc.Search(requestContext(c), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, posts)
}

// GET /api/blog/posts/:slug
func (h *BlogHandler) GetPost(c *gin.Context) {
	post, err := h.svc.GetPostBySlug(requestContext(c), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, post)
}

// POST /api/blog/posts/:slug/view
func (h *BlogHandler) RecordView(c *gin.Context) {
	if err := h.svc.IncrementViewCount(requestContext(c), c.Param("slug")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "View recorded"})
}

// GET /api/blog/posts/:slug/related
func (h *BlogHandler) RelatedContent(c *gin.Context) {
	related, err := h.svc.RelatedContent(requestContext(c), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, related)
}

// GET /api/blog/readlists/:slug
func (h *BlogHandler) GetReadlist(c *gin.Context) {
	readlist, err := h.svc.GetReadlistBySlug(requestContext(c), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, readlist)
}

// GET /api/blog/categories
func (h *BlogHandler) ListCategories(c *gin.Context) {
	categories, err := h.svc.ListCategories(requestContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, categories)
}

// GET /api/blog/categories/:slug
func (h *BlogHandler) GetCategory(c *gin.Context) {
	page, err := h.svc.GetCategoryBySlug(requestContext(c), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, page)
}

// GET /api/admin/posts
func (h *BlogHandler) ListPosts(c *gin.Context) {
	posts, err := h.svc.ListPosts(requestContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, posts)
}

// GET /api/admin/posts/:id
func (h *BlogHandler) GetPostAdmin(c *gin.Context) {
	post, err := h.svc.GetPost(requestContext(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, post)
}

// POST /api/admin/posts
func (h *BlogHandler) CreatePost(c *gin.Context) {
	var req services.CreatePostInput
	if !bindAndValidate(c, &req) {
		return
	}

	post, err := h.svc.CreatePost(requestContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, post)
}

// PUT /api/admin/posts/:id
func (h *BlogHandler) UpdatePost(c *gin.Context) {
	var req services.UpdatePostInput
	if !bindAndValidate(c, &req) {
		return
	}

	post, err := h.svc.UpdatePost(requestContext(c), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, post)
}

// DELETE /api/admin/posts/:id
func (h *BlogHandler) DeletePost(c *gin.Context) {
	if err := h.svc.DeletePost(requestContext(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Post deleted"})
}

// GET /api/admin/readlists
func (h *BlogHandler) ListReadlists(c *gin.Context) {
	readlists, err := h.svc.ListReadlists(requestContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, readlists)
}

// POST /api/admin/readlists
func (h *BlogHandler) CreateReadlist(c *gin.Context) {
	var req services.CreateReadlistInput
	if !bindAndValidate(c, &req) {
		return
	}

	readlist, err := h.svc.CreateReadlist(requestContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, readlist)
}

// PUT /api/admin/readlists/:id
func (h *BlogHandler) UpdateReadlist(c *gin.Context) {
	var req services.UpdateReadlistInput
	if !bindAndValidate(c, &req) {
		return
	}

	readlist, err := h.svc.UpdateReadlist(requestContext(c), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, readlist)
}

// DELETE /api/admin/readlists/:id
func (h *BlogHandler) DeleteReadlist(c *gin.Context) {
	if err := h.svc.DeleteReadlist(requestContext(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Readlist deleted"})
}

// POST /api/admin/categories
func (h *BlogHandler) CreateCategory(c *gin.Context) {
	var req services.CreateCategoryInput
	if !bindAndValidate(c, &req) {
		return
	}

	category, err := h.svc.CreateCategory(requestContext(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, category)
}

// DELETE /api/admin/categories/:id
func (h *BlogHandler) DeleteCategory(c *gin.Context) {
	if err := h.svc.DeleteCategory(requestContext(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Category deleted"})
}
