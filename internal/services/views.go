package services

import (
	"time"

	"github.com/bolajio/portfolio-api/internal/models"
)

// ProjectView is the API representation of a project with its
// separator-encoded columns expanded into lists.
type ProjectView struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Role          string   `json:"role"`
	TechStack     []string `json:"tech_stack"`
	Tools         []string `json:"tools"`
	LiveURL       string   `json:"live_url"`
	GithubURL     string   `json:"github_url"`
	CaseStudyURL  string   `json:"case_study_url"`
	ImageURL      string   `json:"image_url"`
	Duration      string   `json:"duration"`
	Cost          *float64 `json:"cost"`
	Collaborators string   `json:"collaborators"`
	DisplayOrder  int      `json:"display_order"`
}

func newProjectView(project models.Project) ProjectView {
	return ProjectView{
		ID:            project.ID,
		Title:         project.Title,
		Description:   project.Description,
		Role:          project.Role,
		TechStack:     splitList(project.TechStack, ","),
		Tools:         splitList(project.Tools, ","),
		LiveURL:       project.LiveURL,
		GithubURL:     project.GithubURL,
		CaseStudyURL:  project.CaseStudyURL,
		ImageURL:      project.ImageURL,
		Duration:      project.Duration,
		Cost:          project.Cost,
		Collaborators: project.Collaborators,
		DisplayOrder:  project.DisplayOrder,
	}
}

// CategoryView is the API representation of a blog category.
type CategoryView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Color string `json:"color"`
}

func newCategoryView(category models.Category) CategoryView {
	return CategoryView{
		ID:    category.ID,
		Name:  category.Name,
		Slug:  category.Slug,
		Color: category.Color,
	}
}

// PostView is the API representation of a blog post.
type PostView struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Slug        string        `json:"slug"`
	Content     string        `json:"content,omitempty"`
	Excerpt     string        `json:"excerpt"`
	Author      string        `json:"author"`
	DatePosted  time.Time     `json:"date_posted"`
	ImageURL    string        `json:"image_url"`
	IsFeatured  bool          `json:"is_featured"`
	ViewCount   int           `json:"view_count"`
	Category    *CategoryView `json:"category,omitempty"`
	CategoryID  *string       `json:"category_id,omitempty"`
	ReadlistIDs []string      `json:"readlist_ids,omitempty"`
}

func newPostSummary(post models.Post) PostView {
	view := PostView{
		ID:         post.ID,
		Title:      post.Title,
		Slug:       post.Slug,
		Excerpt:    post.Excerpt,
		Author:     post.Author,
		DatePosted: post.DatePosted,
		ImageURL:   post.ImageURL,
		IsFeatured: post.IsFeatured,
		ViewCount:  post.ViewCount,
	}
	if post.Category != nil {
		category := newCategoryView(*post.Category)
		view.Category = &category
	}
	return view
}

func newPostView(post models.Post) PostView {
	view := newPostSummary(post)
	view.Content = post.Content
	return view
}

// ReadlistView is the API representation of a reading series. Posts are
// ordered by their position within the series.
type ReadlistView struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Slug         string     `json:"slug"`
	Description  string     `json:"description"`
	ImageURL     string     `json:"image_url"`
	DisplayOrder int        `json:"display_order"`
	Posts        []PostView `json:"posts,omitempty"`
}

func newReadlistView(readlist models.Readlist) ReadlistView {
	return ReadlistView{
		ID:           readlist.ID,
		Name:         readlist.Name,
		Slug:         readlist.Slug,
		Description:  readlist.Description,
		ImageURL:     readlist.ImageURL,
		DisplayOrder: readlist.DisplayOrder,
	}
}

// ProductCategoryView is the API representation of a product category.
type ProductCategoryView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func newProductCategoryView(category models.ProductCategory) ProductCategoryView {
	return ProductCategoryView{ID: category.ID, Name: category.Name, Slug: category.Slug}
}

// ProductView is the API representation of a marketplace product.
type ProductView struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	Slug          string               `json:"slug"`
	Subtitle      string               `json:"subtitle"`
	Description   string               `json:"description"`
	Features      []string             `json:"features"`
	Price         float64              `json:"price"`
	ImageURL      string               `json:"image_url"`
	GalleryImages []string             `json:"gallery_images"`
	Tags          []string             `json:"tags"`
	ProductURL    string               `json:"product_url"`
	DemoURL       string               `json:"demo_url"`
	Rating        float64              `json:"rating"`
	RatingCount   int                  `json:"rating_count"`
	IsSold        bool                 `json:"is_sold"`
	Category      *ProductCategoryView `json:"category,omitempty"`
	CategoryID    *string              `json:"category_id,omitempty"`
}

func newProductView(product models.Product) ProductView {
	view := ProductView{
		ID:            product.ID,
		Name:          product.Name,
		Slug:          product.Slug,
		Subtitle:      product.Subtitle,
		Description:   product.Description,
		Features:      splitList(product.Features, "\n"),
		Price:         product.Price,
		ImageURL:      product.ImageURL,
		GalleryImages: splitList(product.GalleryImages, ","),
		Tags:          splitList(product.Tags, ","),
		ProductURL:    product.ProductURL,
		DemoURL:       product.DemoURL,
		Rating:        product.Rating,
		RatingCount:   product.RatingCount,
		IsSold:        product.IsSold,
		CategoryID:    product.CategoryID,
	}
	if product.Category != nil {
		category := newProductCategoryView(*product.Category)
		view.Category = &category
	}
	return view
}

// OrderView is the API representation of a product order.
type OrderView struct {
	ID            string    `json:"id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	CustomerPhone string    `json:"customer_phone"`
	ProductID     string    `json:"product_id"`
	ProductName   string    `json:"product_name,omitempty"`
	OrderDate     time.Time `json:"order_date"`
	Status        string    `json:"status"`
}

func newOrderView(order models.ProductOrder) OrderView {
	view := OrderView{
		ID:            order.ID,
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		CustomerPhone: order.CustomerPhone,
		ProductID:     order.ProductID,
		OrderDate:     order.OrderDate,
		Status:        order.Status,
	}
	if order.Product != nil {
		view.ProductName = order.Product.Name
	}
	return view
}
