package jobpost

import "time"

// JobPost is one opening listed on the public careers page.
type JobPost struct {
	ID          string
	Title       string
	Description string
	Location    string
	Experience  string
	Openings    int
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}
