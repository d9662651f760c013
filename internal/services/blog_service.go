package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	rand "math/rand"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/bolajio/portfolio-api/internal/models"
	appErrors "github.com/bolajio/portfolio-api/pkg/errors"
)

const (
	homePageSize    = 10
	searchLimit     = 20
	relatedPageSize = 2
)

// BlogOption customises the BlogService.
type BlogOption func(*BlogService)

// WithBlogAuthor sets the byline stamped onto newly created posts.
func WithBlogAuthor(author string) BlogOption {
	return func(s *BlogService) {
		if author != "" {
			s.author = author
		}
	}
}

// WithBlogClock injects a custom time source.
func WithBlogClock(clock func() time.Time) BlogOption {
	return func(s *BlogService) {
		if clock != nil {
			s.now = clock
		}
	}
}

// BlogService manages posts, categories, and readlists.
type BlogService struct {
	db     *gorm.DB
	author string
	now    func() time.Time
}

// NewBlogService constructs a BlogService.
func NewBlogService(db *gorm.DB, opts ...BlogOption) (*BlogService, error) {
	if db == nil {
		return nil, errors.New("blog service: db is required")
	}

	service := &BlogService{
		db:     db,
		author: "Bolaji",
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service, nil
}

// Pagination describes the page window of a listing.
type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// HomeData bundles everything the blog landing page needs in one payload.
type HomeData struct {
	FeaturedPost *PostView      `json:"featured_post"`
	Posts        []PostView     `json:"posts"`
	Readlists    []ReadlistView `json:"readlists"`
	Categories   []CategoryView `json:"categories"`
	Pagination   Pagination     `json:"pagination"`
}

// HomeData returns the featured post, a page of recent posts, and the
// sidebar collections.
func (s *BlogService) HomeData(ctx context.Context, page int) (*HomeData, error) {
	if page < 1 {
		page = 1
	}

	var featured models.Post
	var featuredView *PostView
	err := s.db.WithContext(ctx).Preload("Category").
		Where("is_featured = ?", true).
		Order("date_posted DESC").
		First(&featured).Error
	if err == nil {
		view := newPostSummary(featured)
		featuredView = &view
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("blog service: featured post: %w", err)
	}

	// The featured post lives in its own slot; the list and its pagination
	// cover the remaining posts only.
	var total int64
	if err := s.db.WithContext(ctx).Model(&models.Post{}).
		Where("is_featured = ?", false).
		Count(&total).Error; err != nil {
		return nil, fmt.Errorf("blog service: count posts: %w", err)
	}

	var posts []models.Post
	if err := s.db.WithContext(ctx).Preload("Category").
		Where("is_featured = ?", false).
		Order("date_posted DESC").
		Limit(homePageSize).
		Offset((page - 1) * homePageSize).
		Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("blog service: list posts: %w", err)
	}

	var readlists []models.Readlist
	if err := s.db.WithContext(ctx).
		Order("display_order ASC, created_at DESC").
		Find(&readlists).Error; err != nil {
		return nil, fmt.Errorf("blog service: list readlists: %w", err)
	}

	categories, err := s.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(homePageSize)))

	data := &HomeData{
		FeaturedPost: featuredView,
		Posts:        make([]PostView, 0, len(posts)),
		Readlists:    make([]ReadlistView, 0, len(readlists)),
		Categories:   categories,
		Pagination: Pagination{
			Page:       page,
			PerPage:    homePageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
			HasPrev:    page > 1,
		},
	}
	for _, post := range posts {
		data.Posts = append(data.Posts, newPostSummary(post))
	}
	for _, readlist := range readlists {
		data.Readlists = append(data.Readlists, newReadlistView(readlist))
	}
	return data, nil
}

// Search matches post titles and excerpts against a query string.
func (s *BlogService) Search(ctx context.Context, query string) ([]PostView, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []PostView{}, nil
	}

	pattern := "%" + query + "%"
	var posts []models.Post
	if err := s.db.WithContext(ctx).Preload("Category").
		Where("title LIKE ? OR excerpt LIKE ?", pattern, pattern).
		Order("date_posted DESC").
		Limit(searchLimit).
		Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("blog service: search: %w", err)
	}

	views := make([]PostView, 0, len(posts))
	for _, post := range posts {
		views = append(views, newPostSummary(post))
	}
	return views, nil
}

// GetPostBySlug fetches one post, including its full content.
func (s *BlogService) GetPostBySlug(ctx context.Context, slug string) (*PostView, error) {
	var post models.Post
	if err := s.db.WithContext(ctx).Preload("Category").
		Where("slug = ?", slug).
		First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.NewNotFound("Post not found")
		}
		return nil, fmt.Errorf("blog service: find post: %w", err)
	}

	view := newPostView(post)
	return &view, nil
}

// IncrementViewCount bumps the read counter for a post. The update runs in
// the database so concurrent reads never lose increments.
func (s *BlogService) IncrementViewCount(ctx context.Context, slug string) error {
	result := s.db.WithContext(ctx).Model(&models.Post{}).
		Where("slug = ?", slug).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
	if result.Error != nil {
		return fmt.Errorf("blog service: increment views: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.NewNotFound("Post not found")
	}
	return nil
}

// RelatedContent groups the navigation aids shown under a post.
type RelatedContent struct {
	PreviousPost   *PostView  `json:"previous_post"`
	NextPost       *PostView  `json:"next_post"`
	MoreInCategory []PostView `json:"more_in_category"`
	InThisSeries   []PostView `json:"in_this_series"`
}

// RelatedContent returns the chronological neighbours of a post plus a
// random sample from its category and readlists.
func (s *BlogService) RelatedContent(ctx context.Context, slug string) (*RelatedContent, error) {
	var post models.Post
	if err := s.db.WithContext(ctx).Preload("ReadlistEntries").
		Where("slug = ?", slug).
		First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.NewNotFound("Post not found")
		}
		return nil, fmt.Errorf("blog service: find post: %w", err)
	}

	related := &RelatedContent{
		MoreInCategory: []PostView{},
		InThisSeries:   []PostView{},
	}

	var previous models.Post
	err := s.db.WithContext(ctx).
		Where("date_posted < ?", post.DatePosted).
		Order("date_posted DESC").
		First(&previous).Error
	if err == nil {
		view := newPostSummary(previous)
		related.PreviousPost = &view
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("blog service: previous post: %w", err)
	}

	var next models.Post
	err = s.db.WithContext(ctx).
		Where("date_posted > ?", post.DatePosted).
		Order("date_posted ASC").
		First(&next).Error
	if err == nil {
		view := newPostSummary(next)
		related.NextPost = &view
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("blog service: next post: %w", err)
	}

	if post.CategoryID != nil {
		var candidates []models.Post
		if err := s.db.WithContext(ctx).
			Where("category_id = ? AND id <> ?", *post.CategoryID, post.ID).
			Find(&candidates).Error; err != nil {
			return nil, fmt.Errorf("blog service: category siblings: %w", err)
		}
		related.MoreInCategory = sampleSummaries(candidates, relatedPageSize)
	}

	if len(post.ReadlistEntries) > 0 {
		readlistIDs := make([]string, 0, len(post.ReadlistEntries))
		for _, entry := range post.ReadlistEntries {
			readlistIDs = append(readlistIDs, entry.ReadlistID)
		}

		var candidates []models.Post
		if err := s.db.WithContext(ctx).
			Joins("JOIN readlist_entries ON readlist_entries.post_id = posts.id").
			Where("readlist_entries.readlist_id IN ? AND posts.id <> ?", readlistIDs, post.ID).
			Distinct("posts.*").
			Find(&candidates).Error; err != nil {
			return nil, fmt.Errorf("blog service: series siblings: %w", err)
		}
		related.InThisSeries = sampleSummaries(candidates, relatedPageSize)
	}

	return related, nil
}

// sampleSummaries shuffles the candidates in process so the pick stays
// portable across database drivers.
func sampleSummaries(posts []models.Post, limit int) []PostView {
	rand.Shuffle(len(posts), func(i, j int) {
		posts[i], posts[j] = posts[j], posts[i]
	})
	if len(posts) > limit {
		posts = posts[:limit]
	}
	views := make([]PostView, 0, len(posts))
	for _, post := range posts {
		views = append(views, newPostSummary(post))
	}
	return views
}

// GetReadlistBySlug returns a readlist with its posts in series order.
func (s *BlogService) GetReadlistBySlug(ctx context.Context, slug string) (*ReadlistView, error) {
	var readlist models.Readlist
	if err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&readlist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.NewNotFound("Readlist not found")
		}
		return nil, fmt.Errorf("blog service: find readlist: %w", err)
	}

	view, err := s.readlistWithPosts(ctx, readlist)
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (s *BlogService) readlistWithPosts(ctx context.Context, readlist models.Readlist) (*ReadlistView, error) {
	var posts []models.Post
	if err := s.db.WithContext(ctx).Preload("Category").
		Joins("JOIN readlist_entries ON readlist_entries.post_id = posts.id").
		Where("readlist_entries.readlist_id = ?", readlist.ID).
		Order("readlist_entries.position ASC").
		Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("blog service: readlist posts: %w", err)
	}

	view := newReadlistView(readlist)
	view.Posts = make([]PostView, 0, len(posts))
	for _, post := range posts {
		view.Posts = append(view.Posts, newPostSummary(post))
	}
	return &view, nil
}

// ListCategories returns all categories ordered by name.
func (s *BlogService) ListCategories(ctx context.Context) ([]CategoryView, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("blog service: list categories: %w", err)
	}

	views := make([]CategoryView, 0, len(categories))
	for _, category := range categories {
		views = append(views, newCategoryView(category))
	}
	return views, nil
}

// CategoryPage bundles a category with its posts.
type CategoryPage struct {
	Category CategoryView `json:"category"`
	Posts    []PostView   `json:"posts"`
}

// GetCategoryBySlug returns a category and its posts, newest first.
func (s *BlogService) GetCategoryBySlug(ctx context.Context, slug string) (*CategoryPage, error) {
	var category models.Category
	if err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.NewNotFound("Category not found")
		}
		return nil, fmt.Errorf("blog service: find category: %w", err)
	}

	var posts []models.Post
	if err := s.db.WithContext(ctx).
		Where("category_id = ?", category.ID).
		Order("date_posted DESC").
		Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("blog service: category posts: %w", err)
	}

	page := &CategoryPage{
		Category: newCategoryView(category),
		Posts:    make([]PostView, 0, len(posts)),
	}
	for _, post := range posts {
		page.Posts = append(page.Posts, newPostSummary(post))
	}
	return page, nil
}

// ListPosts returns every post for the admin panel, including readlist
// membership.
func (s *BlogService) ListPosts(ctx context.Context) ([]PostView, error) {
	var posts []models.Post
	if err := s.db.WithContext(ctx).Preload("Category").Preload("ReadlistEntries").
		Order("date_posted DESC").
		Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("blog service: list posts: %w", err)
	}

	views := make([]PostView, 0, len(posts))
	for _, post := range posts {
		view := newPostView(post)
		view.CategoryID = post.CategoryID
		view.ReadlistIDs = entryReadlistIDs(post.ReadlistEntries)
		views = append(views, view)
	}
	return views, nil
}

// GetPost fetches one post by id for editing.
func (s *BlogService) GetPost(ctx context.Context, id string) (*PostView, error) {
	var post models.Post
	if err := s.db.WithContext(ctx).Preload("Category").Preload("ReadlistEntries").
		Where("id = ?", id).
		First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.NewNotFound("Post not found")
		}
		return nil, fmt.Errorf("blog service: find post: %w", err)
	}

	view := newPostView(post)
	view.CategoryID = post.CategoryID
	view.ReadlistIDs = entryReadlistIDs(post.ReadlistEntries)
	return &view, nil
}

func entryReadlistIDs(entries []models.ReadlistEntry) []string {
	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entry.ReadlistID)
	}
	return ids
}

// CreatePostInput captures the fields accepted when creating a post.
type CreatePostInput struct {
	Title       string   `json:"title" validate:"required"`
	Slug        string   `json:"slug"`
	Content     string   `json:"content" validate:"required"`
	Excerpt     string   `json:"excerpt"`
	ImageURL    string   `json:"image_url"`
	IsFeatured  bool     `json:"is_featured"`
	CategoryID  *string  `json:"category_id"`
	ReadlistIDs []string `json:"readlist_ids"`
}

// CreatePost stores a new post and links it into the requested readlists.
func (s *BlogService) CreatePost(ctx context.Context, input CreatePostInput) (*PostView, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" || strings.TrimSpace(input.Content) == "" {
		return nil, appErrors.NewBadRequest("title and content are required")
	}

	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = generateSlug(title)
	}

	post := models.Post{
		Title:      title,
		Slug:       slug,
		Content:    input.Content,
		Excerpt:    input.Excerpt,
		Author:     s.author,
		DatePosted: s.now().UTC(),
		ImageURL:   input.ImageURL,
		IsFeatured: input.IsFeatured,
		CategoryID: normalizeID(input.CategoryID),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&post).Error; err != nil {
			if isUniqueConstraintError(err) {
				return appErrors.New("DUPLICATE_POST", "A post with that title or slug already exists", 409).WithInternal(err)
			}
			return fmt.Errorf("create post: %w", err)
		}
		return replaceReadlistEntries(tx, post.ID, input.ReadlistIDs)
	})
	if err != nil {
		var appErr *appErrors.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, fmt.Errorf("blog service: create post: %w", err)
	}

	return s.GetPost(ctx, post.ID)
}

// UpdatePostInput captures the optional fields of a partial post update.
type UpdatePostInput struct {
	Title       *string   `json:"title"`
	Slug        *string   `json:"slug"`
	Content     *string   `json:"content"`
	Excerpt     *string   `json:"excerpt"`
	ImageURL    *string   `json:"image_url"`
	IsFeatured  *bool     `json:"is_featured"`
	CategoryID  *string   `json:"category_id"`
	ReadlistIDs *[]string `json:"readlist_ids"`
}

// UpdatePost applies the provided fields and, when given, replaces the
// post's readlist membership.
func (s *BlogService) UpdatePost(ctx context.Context, id string, input UpdatePostInput) (*PostView, error) {
	var post models.Post
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.NewNotFound("Post not found")
		}
		return nil, fmt.Errorf("blog service: find post: %w", err)
	}

	if input.Title != nil {
		post.Title = strings.TrimSpace(*input.Title)
	}
	if input.Slug != nil {
		post.Slug = strings.TrimSpace(*input.Slug)
	}
	if input.Content != nil {
		post.Content = *input.Content
	}
	if input.Excerpt != nil {
		post.Excerpt = *input.Excerpt
	}
	if input.ImageURL != nil {
		post.ImageURL = *input.ImageURL
	}
	if input.IsFeatured != nil {
		post.IsFeatured = *input.IsFeatured
	}
	if input.CategoryID != nil {
		post.CategoryID = normalizeID(input.CategoryID)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&post).Error; err != nil {
			if isUniqueConstraintError(err) {
				return appErrors.New("DUPLICATE_POST", "A post with that title or slug already exists", 409).WithInternal(err)
			}
			return fmt.Errorf("save post: %w", err)
		}
		if input.ReadlistIDs != nil {
			return replaceReadlistEntries(tx, post.ID, *input.ReadlistIDs)
		}
		return nil
	})
	if err != nil {
		var appErr *appErrors.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, fmt.Errorf("blog service: update post: %w", err)
	}

	return s.GetPost(ctx, post.ID)
}

// DeletePost removes a post together with its readlist entries.
func (s *BlogService) DeletePost(ctx context.Context, id string) error {
	var post models.Post
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErrors.NewNotFound("Post not found")
		}
		return fmt.Errorf("blog service: find post: %w", err)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.ReadlistEntry{}).Error; err != nil {
			return fmt.Errorf("delete readlist entries: %w", err)
		}
		if err := tx.Delete(&post).Error; err != nil {
			return fmt.Errorf("delete post: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("blog service: delete post: %w", err)
	}
	return nil
}

// replaceReadlistEntries rewrites a post's series membership, appending the
// post at the end of each new series.
func replaceReadlistEntries(tx *gorm.DB, postID string, readlistIDs []string) error {
	if err := tx.Where("post_id = ?", postID).Delete(&models.ReadlistEntry{}).Error; err != nil {
		return fmt.Errorf("clear readlist entries: %w", err)
	}

	for _, readlistID := range readlistIDs {
		readlistID = strings.TrimSpace(readlistID)
		if readlistID == "" {
			continue
		}

		var maxPosition *int
		if err := tx.Model(&models.ReadlistEntry{}).
			Where("readlist_id = ?", readlistID).
			Select("MAX(position)").
			Scan(&maxPosition).Error; err != nil {
			return fmt.Errorf("next position: %w", err)
		}

		position := 0
		if maxPosition != nil {
			position = *maxPosition + 1
		}

		entry := models.ReadlistEntry{
			PostID:     postID,
			ReadlistID: readlistID,
			Position:   position,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("create readlist entry: %w", err)
		}
	}
	return nil
}

// ListReadlists returns every readlist with its ordered posts.
func (s *BlogService) ListReadlists(ctx context.Context) ([]ReadlistView, error) {
	var readlists []models.Readlist
	if err := s.db.WithContext(ctx).
		Order("display_order ASC, created_at DESC").
		Find(&readlists).Error; err != nil {
		return nil, fmt.Errorf("blog service: list readlists: %w", err)
	}

	views := make([]ReadlistView, 0, len(readlists))
	for _, readlist := range readlists {
		view, err := s.readlistWithPosts(ctx, readlist)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

// CreateReadlistInput captures the fields accepted when creating a readlist.
type CreateReadlistInput struct {
	Name         string   `json:"name" validate:"required"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"image_url"`
	DisplayOrder int      `json:"display_order"`
	PostIDs      []string `json:"post_ids"`
}

// CreateReadlist stores a new readlist with its posts in the given order.
func (s *BlogService) CreateReadlist(ctx context.Context, input CreateReadlistInput) (*ReadlistView, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, appErrors.NewBadRequest("name is required")
	}

	readlist := models.Readlist{
		Name:         name,
		Slug:         generateSlug(name),
		Description:  input.Description,
		ImageURL:     input.ImageURL,
		DisplayOrder: input.DisplayOrder,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&readlist).Error; err != nil {
			if isUniqueConstraintError(err) {
				return appErrors.New("DUPLICATE_READLIST", "A readlist with that name already exists", 409).WithInternal(err)
			}
			return fmt.Errorf("create readlist: %w", err)
		}
		return setReadlistPosts(tx, readlist.ID, input.PostIDs)
	})
	if err != nil {
		var appErr *appErrors.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, fmt.Errorf("blog service: create readlist: %w", err)
	}

	return s.readlistWithPosts(ctx, readlist)
}

// UpdateReadlistInput captures the optional fields of a readlist update.
type UpdateReadlistInput struct {
	Name         *string   `json:"name"`
	Description  *string   `json:"description"`
	ImageURL     *string   `json:"image_url"`
	DisplayOrder *int      `json:"display_order"`
	PostIDs      *[]string `json:"post_ids"`
}

// UpdateReadlist applies the provided fields and, when given, replaces the
// ordered post membership.
func (s *BlogService) UpdateReadlist(ctx context.Context, id string, input UpdateReadlistInput) (*ReadlistView, error) {
	var readlist models.Readlist
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&readlist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.NewNotFound("Readlist not found")
		}
		return nil, fmt.Errorf("blog service: find readlist: %w", err)
	}

	if input.Name != nil {
		readlist.Name = strings.TrimSpace(*input.Name)
		readlist.Slug = generateSlug(readlist.Name)
	}
	if input.Description != nil {
		readlist.Description = *input.Description
	}
	if input.ImageURL != nil {
		readlist.ImageURL = *input.ImageURL
	}
	if input.DisplayOrder != nil {
		readlist.DisplayOrder = *input.DisplayOrder
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&readlist).Error; err != nil {
			if isUniqueConstraintError(err) {
				return appErrors.New("DUPLICATE_READLIST", "A readlist with that name already exists", 409).WithInternal(err)
			}
			return fmt.Errorf("save readlist: %w", err)
		}
		if input.PostIDs != nil {
			if err := tx.Where("readlist_id = ?", readlist.ID).Delete(&models.ReadlistEntry{}).Error; err != nil {
				return fmt.Errorf("clear entries: %w", err)
			}
			return setReadlistPosts(tx, readlist.ID, *input.PostIDs)
		}
		return nil
	})
	if err != nil {
		var appErr *appErrors.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, fmt.Errorf("blog service: update readlist: %w", err)
	}

	return s.readlistWithPosts(ctx, readlist)
}

// DeleteReadlist removes a readlist and its entries; posts survive.
func (s *BlogService) DeleteReadlist(ctx context.Context, id string) error {
	var readlist models.Readlist
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&readlist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErrors.NewNotFound("Readlist not found")
		}
		return fmt.Errorf("blog service: find readlist: %w", err)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("readlist_id = ?", readlist.ID).Delete(&models.ReadlistEntry{}).Error; err != nil {
			return fmt.Errorf("delete entries: %w", err)
		}
		if err := tx.Delete(&readlist).Error; err != nil {
			return fmt.Errorf("delete readlist: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("blog service: delete readlist: %w", err)
	}
	return nil
}

func setReadlistPosts(tx *gorm.DB, readlistID string, postIDs []string) error {
	for position, postID := range postIDs {
		postID = strings.TrimSpace(postID)
		if postID == "" {
			continue
		}
		entry := models.ReadlistEntry{
			PostID:     postID,
			ReadlistID: readlistID,
			Position:   position,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("create readlist entry: %w", err)
		}
	}
	return nil
}

// CreateCategoryInput captures the fields accepted when creating a category.
type CreateCategoryInput struct {
	Name  string `json:"name" validate:"required"`
	Color string `json:"color"`
}

// CreateCategory stores a new blog category.
func (s *BlogService) CreateCategory(ctx context.Context, input CreateCategoryInput) (*CategoryView, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, appErrors.NewBadRequest("name is required")
	}

	category := models.Category{
		Name: name,
		Slug: generateSlug(name),
	}
	if color := strings.TrimSpace(input.Color); color != "" {
		category.Color = color
	}

	if err := s.db.WithContext(ctx).Create(&category).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, appErrors.New("DUPLICATE_CATEGORY", "A category with that name already exists", 409).WithInternal(err)
		}
		return nil, fmt.Errorf("blog service: create category: %w", err)
	}

	view := newCategoryView(category)
	return &view, nil
}

// DeleteCategory removes a category and detaches its posts.
func (s *BlogService) DeleteCategory(ctx context.Context, id string) error {
	var category models.Category
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErrors.NewNotFound("Category not found")
		}
		return fmt.Errorf("blog service: find category: %w", err)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Post{}).
			Where("category_id = ?", category.ID).
			Update("category_id", nil).Error; err != nil {
			return fmt.Errorf("detach posts: %w", err)
		}
		if err := tx.Delete(&category).Error; err != nil {
			return fmt.Errorf("delete category: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("blog service: delete category: %w", err)
	}
	return nil
}

func normalizeID(id *string) *string {
	if id == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*id)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
