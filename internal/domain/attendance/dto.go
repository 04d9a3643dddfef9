package attendance

import (
	"github.com/brickmart/console-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	UserID string `json:"-"`
}

// RecordAbsenceRequest lets an admin record an absence (or correct a day)
// for an employee.
type RecordAbsenceRequest struct {
	UserID string `json:"user_id"`
	Date   string `json:"date"`
	Status string `json:"status"`
}

func (r *RecordAbsenceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if !IsValidStatus(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be present, absent or late"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReportFilter struct {
	Date   string  `json:"date"`
	UserID *string `json:"user_id,omitempty"`
}

func (f *ReportFilter) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(f.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RangeFilter struct {
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	UserID    *string `json:"user_id,omitempty"`
}

func (f *RangeFilter) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(f.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}
	end, okEnd := validator.IsValidDate(f.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Date        string  `json:"date"`
	Status      string  `json:"status"`
	CheckInTime *string `json:"check_in_time,omitempty"`
	FullName    *string `json:"full_name,omitempty"`
	Role        *string `json:"role,omitempty"`
}

// MonthlySummaryRow is one employee's per-status day totals for a range.
type MonthlySummaryRow struct {
	UserID      string `json:"user_id"`
	FullName    string `json:"full_name"`
	Role        string `json:"role"`
	PresentDays int    `json:"present_days"`
	AbsentDays  int    `json:"absent_days"`
	LateDays    int    `json:"late_days"`
}
