package attendance

import (
	"time"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
)

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusPresent, StatusAbsent, StatusLate:
		return true
	}
	return false
}

// Attendance is one check-in record. At most one row exists per
// (user, date); the repository enforces this with a unique index.
type Attendance struct {
	ID          string
	UserID      string
	Date        time.Time
	Status      Status
	CheckInTime *time.Time
	CreatedAt   time.Time

	// Joined fields
	UserFullName *string
	UserRole     *string
}

// DayCounts is the per-status aggregate for one user over a date range.
// Late entries are counted separately and feed neither present nor absent
// day totals during salary reconciliation.
type DayCounts struct {
	PresentDays int
	AbsentDays  int
	LateDays    int
}
