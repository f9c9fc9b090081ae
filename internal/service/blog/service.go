package blog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/reboot-ai/crm-backend-go/internal/domain/blog"
)

type blogServiceImpl struct {
	blogRepo blog.BlogRepository
}

func NewBlogService(blogRepo blog.BlogRepository) blog.BlogService {
	return &blogServiceImpl{blogRepo: blogRepo}
}

// ListBlogs implements blog.BlogService.
func (s *blogServiceImpl) ListBlogs(ctx context.Context, publishedOnly bool) ([]blog.BlogResponse, error) {
	blogs, err := s.blogRepo.List(ctx, publishedOnly)
	if err != nil {
		return nil, err
	}

	items := make([]blog.BlogResponse, 0, len(blogs))
	for _, b := range blogs {
		items = append(items, toBlogResponse(b))
	}
	return items, nil
}

// GetBlog implements blog.BlogService.
func (s *blogServiceImpl) GetBlog(ctx context.Context, id string) (blog.BlogResponse, error) {
	found, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		return blog.BlogResponse{}, err
	}
	return toBlogResponse(found), nil
}

// CreateBlog implements blog.BlogService. A slug collision gets a numeric
// suffix rather than an error; authors should not have to invent titles
// around old posts.
func (s *blogServiceImpl) CreateBlog(ctx context.Context, req blog.CreateBlogRequest) (blog.BlogResponse, error) {
	if err := req.Validate(); err != nil {
		return blog.BlogResponse{}, err
	}

	slug := req.Slug()
	for i := 2; ; i++ {
		exists, err := s.blogRepo.ExistsBySlug(ctx, slug)
		if err != nil {
			return blog.BlogResponse{}, err
		}
		if !exists {
			break
		}
		slug = fmt.Sprintf("%s-%d", req.Slug(), i)
	}

	created, err := s.blogRepo.Create(ctx, blog.Blog{
		Title:     req.Title,
		Slug:      slug,
		Content:   req.Content,
		Author:    req.Author,
		ImageURL:  req.ImageURL,
		Published: req.Published,
	})
	if err != nil {
		return blog.BlogResponse{}, err
	}

	slog.Info("blog created", "blog_id", created.ID, "slug", created.Slug)

	return toBlogResponse(created), nil
}

// UpdateBlog implements blog.BlogService.
func (s *blogServiceImpl) UpdateBlog(ctx context.Context, req blog.UpdateBlogRequest) (blog.BlogResponse, error) {
	if err := req.Validate(); err != nil {
		return blog.BlogResponse{}, err
	}

	if err := s.blogRepo.Update(ctx, req.ID, req); err != nil {
		return blog.BlogResponse{}, err
	}

	return s.GetBlog(ctx, req.ID)
}

// DeleteBlog implements blog.BlogService.
func (s *blogServiceImpl) DeleteBlog(ctx context.Context, id string) error {
	return s.blogRepo.SoftDelete(ctx, id)
}

func toBlogResponse(b blog.Blog) blog.BlogResponse {
	return blog.BlogResponse{
		ID:        b.ID,
		Title:     b.Title,
		Slug:      b.Slug,
		Content:   b.Content,
		Author:    b.Author,
		ImageURL:  b.ImageURL,
		Published: b.Published,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
		UpdatedAt: b.UpdatedAt.Format(time.RFC3339),
	}
}
