package blog

import "context"

type BlogRepository interface {
	GetByID(ctx context.Context, id string) (Blog, error)
	List(ctx context.Context, publishedOnly bool) ([]Blog, error)
	Create(ctx context.Context, newBlog Blog) (Blog, error)
	Update(ctx context.Context, id string, req UpdateBlogRequest) error
	SoftDelete(ctx context.Context, id string) error
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}
