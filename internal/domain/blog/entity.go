package blog

import "time"

// Blog is one post on the public website, authored from the dashboard.
type Blog struct {
	ID        string
	Title     string
	Slug      string
	Content   string
	Author    string
	ImageURL  *string
	Published bool
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
