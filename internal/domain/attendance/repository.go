package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create inserts a new attendance record. Returns ErrAlreadyCheckedIn
	// when a record for (user, date) already exists.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// Upsert inserts a record for (user, date) or overwrites the status of
	// an existing one. Used by admins to correct a day after the fact.
	Upsert(ctx context.Context, att Attendance) (Attendance, error)

	// GetByUserAndDate retrieves attendance for a user on a specific date.
	// Used to prevent double check-in. Returns nil when none exists.
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*Attendance, error)

	// ListByUser retrieves a user's own records, newest first.
	ListByUser(ctx context.Context, userID string, limit int) ([]Attendance, error)

	// ListByDate retrieves all records on a date joined with user info,
	// optionally restricted to one user.
	ListByDate(ctx context.Context, date time.Time, userID *string) ([]Attendance, error)

	// ListByDateRange retrieves records with date in [start, end],
	// inclusive on both ends, joined with user info.
	ListByDateRange(ctx context.Context, start, end time.Time, userID *string) ([]Attendance, error)

	// CountByDateRange aggregates one user's per-status day counts over
	// [start, end], inclusive on both ends. Late entries are reported
	// separately and never folded into present or absent.
	CountByDateRange(ctx context.Context, userID string, start, end time.Time) (DayCounts, error)
}
