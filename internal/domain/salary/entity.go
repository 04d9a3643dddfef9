package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

// SalaryRecord is one employee's payroll computation for one (month, year)
// period. The ledger holds at most one record per (user, month, year),
// enforced by a database constraint.
//
// Status moves pending -> paid exactly once, via MarkPaid. Reconciliation
// recomputes present/absent day counts and the amount but never touches
// status or paid_at.
type SalaryRecord struct {
	ID          string
	UserID      string
	Month       int
	Year        int
	PresentDays int
	AbsentDays  int
	Amount      decimal.Decimal
	Status      Status
	PaidAt      *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	EmployeeName *string
	EmployeeRole *string
	SalaryPerDay *decimal.Decimal
}
