package jobpost

import (
	"context"
	"log/slog"
	"time"

	"github.com/reboot-ai/crm-backend-go/internal/domain/jobpost"
)

type jobPostServiceImpl struct {
	jobPostRepo jobpost.JobPostRepository
}

func NewJobPostService(jobPostRepo jobpost.JobPostRepository) jobpost.JobPostService {
	return &jobPostServiceImpl{jobPostRepo: jobPostRepo}
}

// ListJobPosts implements jobpost.JobPostService.
func (s *jobPostServiceImpl) ListJobPosts(ctx context.Context, activeOnly bool) ([]jobpost.JobPostResponse, error) {
	posts, err := s.jobPostRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	items := make([]jobpost.JobPostResponse, 0, len(posts))
	for _, p := range posts {
		items = append(items, toJobPostResponse(p))
	}
	return items, nil
}

// GetJobPost implements jobpost.JobPostService.
func (s *jobPostServiceImpl) GetJobPost(ctx context.Context, id string) (jobpost.JobPostResponse, error) {
	found, err := s.jobPostRepo.GetByID(ctx, id)
	if err != nil {
		return jobpost.JobPostResponse{}, err
	}
	return toJobPostResponse(found), nil
}

// CreateJobPost implements jobpost.JobPostService. New openings are listed
// immediately.
func (s *jobPostServiceImpl) CreateJobPost(ctx context.Context, req jobpost.CreateJobPostRequest) (jobpost.JobPostResponse, error) {
	if err := req.Validate(); err != nil {
		return jobpost.JobPostResponse{}, err
	}

	created, err := s.jobPostRepo.Create(ctx, jobpost.JobPost{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Experience:  req.Experience,
		Openings:    req.Openings,
		Active:      true,
	})
	if err != nil {
		return jobpost.JobPostResponse{}, err
	}

	slog.Info("job post created", "jobpost_id", created.ID)

	return toJobPostResponse(created), nil
}

// UpdateJobPost implements jobpost.JobPostService.
func (s *jobPostServiceImpl) UpdateJobPost(ctx context.Context, req jobpost.UpdateJobPostRequest) (jobpost.JobPostResponse, error) {
	if err := req.Validate(); err != nil {
		return jobpost.JobPostResponse{}, err
	}

	if err := s.jobPostRepo.Update(ctx, req.ID, req); err != nil {
		return jobpost.JobPostResponse{}, err
	}

	return s.GetJobPost(ctx, req.ID)
}

// DeleteJobPost implements jobpost.JobPostService.
func (s *jobPostServiceImpl) DeleteJobPost(ctx context.Context, id string) error {
	return s.jobPostRepo.SoftDelete(ctx, id)
}

func toJobPostResponse(p jobpost.JobPost) jobpost.JobPostResponse {
	return jobpost.JobPostResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Location:    p.Location,
		Experience:  p.Experience,
		Openings:    p.Openings,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339),
	}
}
