package salary

import "context"

// SalaryService is the salary reconciliation engine.
type SalaryService interface {
	// Reconcile recomputes the ledger for a period from the attendance
	// log: for every staff account (admin excluded) it counts present and
	// absent days between the first and last calendar day of the month,
	// inclusive, computes amount = day-rate x present days, and merges the
	// result into the ledger without touching payment state.
	//
	// Employees are processed sequentially; re-running with unchanged
	// attendance yields identical records. On a collaborator failure the
	// returned error names the employee that was mid-update; upserts
	// completed before the failure stand and are safe to re-run.
	Reconcile(ctx context.Context, req ReconcileRequest) ([]SalaryRecordResponse, error)

	// ListByPeriod returns the ledger rows for a period.
	ListByPeriod(ctx context.Context, filter PeriodFilter) ([]SalaryRecordResponse, error)

	// MarkPaid transitions a pending record to paid. Calling it on an
	// already-paid record is rejected with ErrSalaryAlreadyPaid; the
	// original paid timestamp is never overwritten.
	MarkPaid(ctx context.Context, recordID string) (SalaryRecordResponse, error)
}
