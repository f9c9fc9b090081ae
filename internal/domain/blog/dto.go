package blog

import (
	"strings"

	"github.com/reboot-ai/crm-backend-go/internal/pkg/validator"
)

type CreateBlogRequest struct {
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	Author    string  `json:"author"`
	ImageURL  *string `json:"image,omitempty"`
	Published bool    `json:"published"`
}

func (r *CreateBlogRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}
	if validator.IsEmpty(r.Content) {
		errs = append(errs, validator.ValidationError{
			Field:   "content",
			Message: "content is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Slug derives a URL slug from the title.
func (r *CreateBlogRequest) Slug() string {
	slug := strings.ToLower(strings.TrimSpace(r.Title))
	slug = strings.Join(strings.Fields(slug), "-")
	var b strings.Builder
	for _, c := range slug {
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-' {
			b.WriteRune(c)
		}
	}
	return b.String()
}

type UpdateBlogRequest struct {
	ID        string  `json:"-"`
	Title     *string `json:"title,omitempty"`
	Content   *string `json:"content,omitempty"`
	ImageURL  *string `json:"image,omitempty"`
	Published *bool   `json:"published,omitempty"`
}

func (r *UpdateBlogRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BlogResponse struct {
	ID        string  `json:"_id"`
	Title     string  `json:"title"`
	Slug      string  `json:"slug"`
	Content   string  `json:"content"`
	Author    string  `json:"author,omitempty"`
	ImageURL  *string `json:"image,omitempty"`
	Published bool    `json:"published"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}
