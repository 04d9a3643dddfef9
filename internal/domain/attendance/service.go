package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CheckIn records today's attendance for the authenticated employee.
	// A second check-in on the same day is rejected.
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)

	// GetMyAttendance retrieves recent records for the authenticated employee.
	GetMyAttendance(ctx context.Context, userID string, limit int) ([]AttendanceResponse, error)

	// RecordAbsence records or corrects a day for an employee (admin).
	RecordAbsence(ctx context.Context, req RecordAbsenceRequest) (AttendanceResponse, error)

	// DailyReport lists all attendance on a date (admin).
	DailyReport(ctx context.Context, filter ReportFilter) ([]AttendanceResponse, error)

	// RangeReport lists attendance over an inclusive date range (admin).
	RangeReport(ctx context.Context, filter RangeFilter) ([]AttendanceResponse, error)

	// MonthlySummary aggregates per-employee day counts over an inclusive
	// date range (admin).
	MonthlySummary(ctx context.Context, filter RangeFilter) ([]MonthlySummaryRow, error)
}
