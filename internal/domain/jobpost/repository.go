package jobpost

import "context"

type JobPostRepository interface {
	GetByID(ctx context.Context, id string) (JobPost, error)
	List(ctx context.Context, activeOnly bool) ([]JobPost, error)
	Create(ctx context.Context, newPost JobPost) (JobPost, error)
	Update(ctx context.Context, id string, req UpdateJobPostRequest) error
	SoftDelete(ctx context.Context, id string) error
}
