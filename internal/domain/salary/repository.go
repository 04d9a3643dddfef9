package salary

import "context"

// SalaryRepository defines data access methods for the salary ledger.
type SalaryRepository interface {
	// Upsert writes the computed figures for (record.UserID, record.Month,
	// record.Year) in a single atomic statement. On first write it creates
	// the record with status pending; on subsequent writes it updates
	// present_days, absent_days and amount only. Status and paid_at are
	// never modified by Upsert, so a paid record keeps its paid marker
	// across recomputation.
	Upsert(ctx context.Context, record SalaryRecord) (SalaryRecord, error)

	// GetByID retrieves a record by id.
	GetByID(ctx context.Context, id string) (SalaryRecord, error)

	// GetByUserPeriod retrieves the record for (user, month, year).
	GetByUserPeriod(ctx context.Context, userID string, month, year int) (SalaryRecord, error)

	// ListByPeriod retrieves all records for a period joined with
	// employee name, role and day-rate, ordered by employee name.
	ListByPeriod(ctx context.Context, month, year int) ([]SalaryRecord, error)

	// MarkPaid transitions a pending record to paid and stamps paid_at.
	// Returns ErrSalaryAlreadyPaid when the record is already paid and
	// ErrSalaryRecordNotFound when it does not exist. The paid timestamp
	// is written exactly once.
	MarkPaid(ctx context.Context, id string) (SalaryRecord, error)
}
