package postgresql

import (
	"context"
	"fmt"

	"github.com/brickmart/console-backend-go/internal/domain/salary"
	"github.com/brickmart/console-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type salaryRepositoryImpl struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) salary.SalaryRepository {
	return &salaryRepositoryImpl{db: db}
}

// Upsert merges the computed figures into the ledger in one statement.
// The (user_id, month, year) unique constraint carries the at-most-one-
// record-per-period invariant, so concurrent reconciliation passes cannot
// race a lookup against an insert. The conflict branch updates only the
// computed columns; status and paid_at keep whatever the row already has.
func (r *salaryRepositoryImpl) Upsert(ctx context.Context, record salary.SalaryRecord) (salary.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_records (user_id, month, year, present_days, absent_days, amount, status)
		VALUES ($1, $2, $3, $4, $5, $6, 'pending')
		ON CONFLICT (user_id, month, year) DO UPDATE SET
			present_days = EXCLUDED.present_days,
			absent_days = EXCLUDED.absent_days,
			amount = EXCLUDED.amount,
			updated_at = NOW()
		RETURNING id, user_id, month, year, present_days, absent_days, amount, status, paid_at, created_at, updated_at
	`

	var s salary.SalaryRecord
	err := q.QueryRow(ctx, query,
		record.UserID, record.Month, record.Year,
		record.PresentDays, record.AbsentDays, record.Amount,
	).Scan(
		&s.ID, &s.UserID, &s.Month, &s.Year, &s.PresentDays, &s.AbsentDays,
		&s.Amount, &s.Status, &s.PaidAt, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return salary.SalaryRecord{}, fmt.Errorf("failed to upsert salary record for user %s: %w", record.UserID, err)
	}

	return s, nil
}

func (r *salaryRepositoryImpl) GetByID(ctx context.Context, id string) (salary.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, month, year, present_days, absent_days, amount, status, paid_at, created_at, updated_at
		FROM salary_records
		WHERE id = $1
	`

	var s salary.SalaryRecord
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.UserID, &s.Month, &s.Year, &s.PresentDays, &s.AbsentDays,
		&s.Amount, &s.Status, &s.PaidAt, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return salary.SalaryRecord{}, salary.ErrSalaryRecordNotFound
		}
		return salary.SalaryRecord{}, fmt.Errorf("failed to get salary record: %w", err)
	}

	return s, nil
}

func (r *salaryRepositoryImpl) GetByUserPeriod(ctx context.Context, userID string, month, year int) (salary.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, month, year, present_days, absent_days, amount, status, paid_at, created_at, updated_at
		FROM salary_records
		WHERE user_id = $1 AND month = $2 AND year = $3
	`

	var s salary.SalaryRecord
	err := q.QueryRow(ctx, query, userID, month, year).Scan(
		&s.ID, &s.UserID, &s.Month, &s.Year, &s.PresentDays, &s.AbsentDays,
		&s.Amount, &s.Status, &s.PaidAt, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return salary.SalaryRecord{}, salary.ErrSalaryRecordNotFound
		}
		return salary.SalaryRecord{}, fmt.Errorf("failed to get salary record for period: %w", err)
	}

	return s, nil
}

func (r *salaryRepositoryImpl) ListByPeriod(ctx context.Context, month, year int) ([]salary.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.user_id, s.month, s.year, s.present_days, s.absent_days, s.amount,
			   s.status, s.paid_at, s.created_at, s.updated_at,
			   u.full_name, u.role, u.salary_per_day
		FROM salary_records s
		JOIN users u ON u.id = s.user_id
		WHERE s.month = $1 AND s.year = $2
		ORDER BY u.full_name
	`

	rows, err := q.Query(ctx, query, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary records: %w", err)
	}
	defer rows.Close()

	var records []salary.SalaryRecord
	for rows.Next() {
		var s salary.SalaryRecord
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.Month, &s.Year, &s.PresentDays, &s.AbsentDays, &s.Amount,
			&s.Status, &s.PaidAt, &s.CreatedAt, &s.UpdatedAt,
			&s.EmployeeName, &s.EmployeeRole, &s.SalaryPerDay,
		); err != nil {
			return nil, fmt.Errorf("failed to scan salary record: %w", err)
		}
		records = append(records, s)
	}

	return records, nil
}

// MarkPaid performs the pending -> paid transition. The status guard in the
// WHERE clause makes the call idempotent-safe: an already-paid record is
// never restamped, so the original paid_at survives repeated calls.
func (r *salaryRepositoryImpl) MarkPaid(ctx context.Context, id string) (salary.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salary_records
		SET status = 'paid', paid_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
		RETURNING id, user_id, month, year, present_days, absent_days, amount, status, paid_at, created_at, updated_at
	`

	var s salary.SalaryRecord
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.UserID, &s.Month, &s.Year, &s.PresentDays, &s.AbsentDays,
		&s.Amount, &s.Status, &s.PaidAt, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			// Distinguish a missing record from one already paid
			existing, getErr := r.GetByID(ctx, id)
			if getErr != nil {
				return salary.SalaryRecord{}, getErr
			}
			if existing.Status == salary.StatusPaid {
				return salary.SalaryRecord{}, salary.ErrSalaryAlreadyPaid
			}
			return salary.SalaryRecord{}, salary.ErrSalaryRecordNotFound
		}
		return salary.SalaryRecord{}, fmt.Errorf("failed to mark salary record paid: %w", err)
	}

	return s, nil
}
