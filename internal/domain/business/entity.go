package business

import "time"

// Business is one sales lead: a prospect business worked by a telecaller,
// digital marketer or BDE through the follow-up/appointment/visit pipeline.
type Business struct {
	ID              string
	Name            string
	ContactPerson   string
	MobileNumber    string
	Category        string
	City            string
	Status          string
	Remarks         *string
	TelecallerID    *string
	DigitalMarkerID *string
	BdeID           *string
	AssignedTo      *string
	LeadBy          *string
	CreatedBy       *string
	FollowUpDate    *time.Time
	AppointmentDate *time.Time
	VisitDate       *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
