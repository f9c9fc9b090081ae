package jobpost

import "context"

type JobPostService interface {
	ListJobPosts(ctx context.Context, activeOnly bool) ([]JobPostResponse, error)
	GetJobPost(ctx context.Context, id string) (JobPostResponse, error)
	CreateJobPost(ctx context.Context, req CreateJobPostRequest) (JobPostResponse, error)
	UpdateJobPost(ctx context.Context, req UpdateJobPostRequest) (JobPostResponse, error)
	DeleteJobPost(ctx context.Context, id string) error
}
