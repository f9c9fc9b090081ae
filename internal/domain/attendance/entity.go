package attendance

import (
	"time"
)

// Attendance is one employee's record for one civil day (IST).
type Attendance struct {
	ID             string
	EmployeeID     string
	Date           time.Time
	EntryTime      *time.Time
	ExitTime       *time.Time
	EntryLatitude  *float64
	EntryLongitude *float64
	ExitLatitude   *float64
	ExitLongitude  *float64
	DayCount       float64
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// DTO
	EmployeeName *string
}

type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
