package api

import (
	"github.com/gin-gonic/gin"

	"github.com/bolajio/portfolio-api/internal/handlers"
)

func registerBlogRoutes(public, admin *gin.RouterGroup, h *handlers.BlogHandler) {
	blog := public.Group("/blog")
	{
		blog.GET("/home-data", h.HomeData)
		blog.GET("/search", h.Search)
		blog.GET("/posts/:slug", h.GetPost)
		blog.POST("/posts/:slug/view", h.RecordView)
		blog.GET("/posts/:slug/related", h.RelatedContent)
		blog.GET("/readlists/:slug", h.GetReadlist)
		blog.GET("/categories", h.ListCategories)
		blog.GET("/categories/:slug", h.GetCategory)
	}

	posts := admin.Group("/posts")
	{
		posts.GET("", h.ListPosts)
		posts.POST("", h.CreatePost)
		posts.GET("/:id", h.GetPostAdmin)
		posts.PUT("/:id", h.UpdatePost)
		posts.DELETE("/:id", h.DeletePost)
	}

	readlists := admin.Group("/readlists")
	{
		readlists.GET("", h.ListReadlists)
		readlists.POST("", h.CreateReadlist)
		readlists.PUT("/:id", h.UpdateReadlist)
		readlists.DELETE("/:id", h.DeleteReadlist)
	}

	categories := admin.Group("/categories")
	{
		categories.POST("", h.CreateCategory)
		categories.DELETE("/:id", h.DeleteCategory)
	}
}
