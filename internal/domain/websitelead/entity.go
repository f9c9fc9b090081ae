package websitelead

import "time"

// WebsiteLead is an enquiry submitted through the public website contact
// form, triaged from the dashboard before becoming a business lead.
type WebsiteLead struct {
	ID           string
	Name         string
	Email        string
	MobileNumber string
	Message      string
	Source       string
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Status string

const (
	StatusNew       Status = "new"
	StatusContacted Status = "contacted"
	StatusConverted Status = "converted"
	StatusDiscarded Status = "discarded"
)

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusContacted, StatusConverted, StatusDiscarded:
		return true
	}
	return false
}
