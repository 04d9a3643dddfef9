package salary

import (
	"github.com/brickmart/console-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ReconcileRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *ReconcileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if r.Year < 1 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be a positive calendar year"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PeriodFilter struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (f *PeriodFilter) Validate() error {
	r := ReconcileRequest{Month: f.Month, Year: f.Year}
	return r.Validate()
}

type SalaryRecordResponse struct {
	ID           string           `json:"id"`
	UserID       string           `json:"user_id"`
	EmployeeName string           `json:"employee_name"`
	EmployeeRole string           `json:"employee_role"`
	Month        int              `json:"month"`
	Year         int              `json:"year"`
	PresentDays  int              `json:"present_days"`
	AbsentDays   int              `json:"absent_days"`
	SalaryPerDay *decimal.Decimal `json:"salary_per_day,omitempty"`
	Amount       decimal.Decimal  `json:"amount"`
	Status       string           `json:"status"`
	PaidAt       *string          `json:"paid_at,omitempty"`
}
