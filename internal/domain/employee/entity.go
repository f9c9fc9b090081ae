package employee

import (
	"time"

	"github.com/reboot-ai/crm-backend-go/internal/domain/report"
)

// Employee is the unified shape behind the three historical role
// collections (telecallers, digital marketers, BDEs). The role discriminant
// replaces the per-role object shapes the old dashboard threaded through
// every screen; role-specific field names survive only at the JSON
// boundary.
type Employee struct {
	ID          string
	UserID      *string
	Name        string
	Email       string
	PhoneNumber string
	Role        Role
	Status      Status
	Targets     []report.Target
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

type Role string

const (
	RoleTelecaller      Role = "telecaller"
	RoleDigitalMarketer Role = "digitalmarketer"
	RoleBDE             Role = "bde"
)

func (r Role) Valid() bool {
	switch r {
	case RoleTelecaller, RoleDigitalMarketer, RoleBDE:
		return true
	}
	return false
}

// Designation is the display label the dashboard shows for a role.
func (r Role) Designation() string {
	switch r {
	case RoleTelecaller:
		return "Telecaller"
	case RoleDigitalMarketer:
		return "Digital Marketer"
	case RoleBDE:
		return "BDE"
	}
	return ""
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)
