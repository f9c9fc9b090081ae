package postgresql

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/reboot-ai/crm-backend-go/internal/domain/jobpost"
	"github.com/reboot-ai/crm-backend-go/internal/pkg/database"
)

type jobPostRepositoryImpl struct {
	db *database.DB
}

func NewJobPostRepository(db *database.DB) jobpost.JobPostRepository {
	return &jobPostRepositoryImpl{db: db}
}

const jobPostColumns = `id, title, description, location, experience, openings, active,
	   created_at, updated_at, deleted_at`

func scanJobPost(row pgx.Row) (jobpost.JobPost, error) {
	var found jobpost.JobPost
	err := row.Scan(
		&found.ID,
		&found.Title,
		&found.Description,
		&found.Location,
		&found.Experience,
		&found.Openings,
		&found.Active,
		&found.CreatedAt,
		&found.UpdatedAt,
		&found.DeletedAt,
	)
	return found, err
}

// GetByID implements jobpost.JobPostRepository.
func (r *jobPostRepositoryImpl) GetByID(ctx context.Context, id string) (jobpost.JobPost, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + jobPostColumns + ` FROM job_posts WHERE id = $1 AND deleted_at IS NULL`

	found, err := scanJobPost(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return jobpost.JobPost{}, jobpost.ErrJobPostNotFound
	}
	if err != nil {
		return jobpost.JobPost{}, err
	}
	return found, nil
}

// List implements jobpost.JobPostRepository.
func (r *jobPostRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]jobpost.JobPost, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + jobPostColumns + ` FROM job_posts WHERE deleted_at IS NULL`
	if activeOnly {
		query += ` AND active = TRUE`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []jobpost.JobPost
	for rows.Next() {
		found, err := scanJobPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, found)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return posts, nil
}

// Create implements jobpost.JobPostRepository.
func (r *jobPostRepositoryImpl) Create(ctx context.Context, newPost jobpost.JobPost) (jobpost.JobPost, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO job_posts (title, description, location, experience, openings, active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + jobPostColumns

	created, err := scanJobPost(q.QueryRow(ctx, query,
		newPost.Title,
		newPost.Description,
		newPost.Location,
		newPost.Experience,
		newPost.Openings,
		newPost.Active,
	))
	if err != nil {
		return jobpost.JobPost{}, err
	}
	return created, nil
}

// Update implements jobpost.JobPostRepository.
func (r *jobPostRepositoryImpl) Update(ctx context.Context, id string, req jobpost.UpdateJobPostRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	argPos := 1

	appendSet := func(column string, value interface{}) {
		setClauses = append(setClauses, column+" = $"+strconv.Itoa(argPos))
		args = append(args, value)
		argPos++
	}

	if req.Title != nil {
		appendSet("title", *req.Title)
	}
	if req.Description != nil {
		appendSet("description", *req.Description)
	}
	if req.Location != nil {
		appendSet("location", *req.Location)
	}
	if req.Experience != nil {
		appendSet("experience", *req.Experience)
	}
	if req.Openings != nil {
		appendSet("openings", *req.Openings)
	}
	if req.Active != nil {
		appendSet("active", *req.Active)
	}

	query := `UPDATE job_posts SET ` + strings.Join(setClauses, ", ") +
		` WHERE id = $` + strconv.Itoa(argPos) + ` AND deleted_at IS NULL`
	args = append(args, id)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return jobpost.ErrJobPostNotFound
	}
	return nil
}

// SoftDelete implements jobpost.JobPostRepository.
func (r *jobPostRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE job_posts SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return jobpost.ErrJobPostNotFound
	}
	return nil
}
