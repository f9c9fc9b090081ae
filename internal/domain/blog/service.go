package blog

import "context"

type BlogService interface {
	ListBlogs(ctx context.Context, publishedOnly bool) ([]BlogResponse, error)
	GetBlog(ctx context.Context, id string) (BlogResponse, error)
	CreateBlog(ctx context.Context, req CreateBlogRequest) (BlogResponse, error)
	UpdateBlog(ctx context.Context, req UpdateBlogRequest) (BlogResponse, error)
	DeleteBlog(ctx context.Context, id string) error
}
