package user

import "time"

type Role string

const (
	RoleAdmin Role = "admin" // Dashboard administrator - full access
	RoleStaff Role = "staff" // Telecaller / digital marketer / BDE account
)

type User struct {
	ID              string
	Email           string
	PasswordHash    *string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	EmployeeID      *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsAdmin checks if user may manage employees, targets and content
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
