package postgresql

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/reboot-ai/crm-backend-go/internal/domain/blog"
	"github.com/reboot-ai/crm-backend-go/internal/pkg/database"
)

type blogRepositoryImpl struct {
	db *database.DB
}

func NewBlogRepository(db *database.DB) blog.BlogRepository {
	return &blogRepositoryImpl{db: db}
}

const blogColumns = `id, title, slug, content, author, image_url, published, created_at, updated_at, deleted_at`

func scanBlog(row pgx.Row) (blog.Blog, error) {
	var found blog.Blog
	err := row.Scan(
		&found.ID,
		&found.Title,
		&found.Slug,
		&found.Content,
		&found.Author,
		&found.ImageURL,
		&found.Published,
		&found.CreatedAt,
		&found.UpdatedAt,
		&found.DeletedAt,
	)
	return found, err
}

// GetByID implements blog.BlogRepository.
func (r *blogRepositoryImpl) GetByID(ctx context.Context, id string) (blog.Blog, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + blogColumns + ` FROM blogs WHERE id = $1 AND deleted_at IS NULL`

	found, err := scanBlog(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return blog.Blog{}, blog.ErrBlogNotFound
	}
	if err != nil {
		return blog.Blog{}, err
	}
	return found, nil
}

// List implements blog.BlogRepository.
func (r *blogRepositoryImpl) List(ctx context.Context, publishedOnly bool) ([]blog.Blog, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + blogColumns + ` FROM blogs WHERE deleted_at IS NULL`
	if publishedOnly {
		query += ` AND published = TRUE`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blogs []blog.Blog
	for rows.Next() {
		found, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, found)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return blogs, nil
}

// Create implements blog.BlogRepository.
func (r *blogRepositoryImpl) Create(ctx context.Context, newBlog blog.Blog) (blog.Blog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO blogs (title, slug, content, author, image_url, published)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + blogColumns

	created, err := scanBlog(q.QueryRow(ctx, query,
		newBlog.Title,
		newBlog.Slug,
		newBlog.Content,
		newBlog.Author,
		newBlog.ImageURL,
		newBlog.Published,
	))
	if err != nil {
		return blog.Blog{}, err
	}
	return created, nil
}

// Update implements blog.BlogRepository.
func (r *blogRepositoryImpl) Update(ctx context.Context, id string, req blog.UpdateBlogRequest) error {
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
	if req.Content != nil {
		appendSet("content", *req.Content)
	}
	if req.ImageURL != nil {
		appendSet("image_url", *req.ImageURL)
	}
	if req.Published != nil {
		appendSet("published", *req.Published)
	}

	query := `UPDATE blogs SET ` + strings.Join(setClauses, ", ") +
		` WHERE id = $` + strconv.Itoa(argPos) + ` AND deleted_at IS NULL`
	args = append(args, id)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return blog.ErrBlogNotFound
	}
	return nil
}

// SoftDelete implements blog.BlogRepository.
func (r *blogRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE blogs SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return blog.ErrBlogNotFound
	}
	return nil
}

// ExistsBySlug implements blog.BlogRepository.
func (r *blogRepositoryImpl) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM blogs WHERE slug = $1 AND deleted_at IS NULL)`,
		slug,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
