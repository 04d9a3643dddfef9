package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/brickmart/console-backend-go/internal/domain/attendance"
	"github.com/brickmart/console-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

func (r *attendanceRepositoryImpl) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (user_id, date, status, check_in_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, date, status, check_in_time, created_at
	`

	var created attendance.Attendance
	err := q.QueryRow(ctx, query, att.UserID, att.Date, att.Status, att.CheckInTime).Scan(
		&created.ID, &created.UserID, &created.Date, &created.Status, &created.CheckInTime, &created.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_attendance_user_date") {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return created, nil
}

// Upsert writes the given status for (user, date), replacing whatever was
// recorded before. A corrected day loses its check-in time on purpose; the
// admin's word supersedes the original punch.
func (r *attendanceRepositoryImpl) Upsert(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (user_id, date, status, check_in_time)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, date) DO UPDATE SET
			status = EXCLUDED.status,
			check_in_time = EXCLUDED.check_in_time
		RETURNING id, user_id, date, status, check_in_time, created_at
	`

	var saved attendance.Attendance
	err := q.QueryRow(ctx, query, att.UserID, att.Date, att.Status, att.CheckInTime).Scan(
		&saved.ID, &saved.UserID, &saved.Date, &saved.Status, &saved.CheckInTime, &saved.CreatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to upsert attendance record: %w", err)
	}

	return saved, nil
}

func (r *attendanceRepositoryImpl) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date, status, check_in_time, created_at
		FROM attendance_records
		WHERE user_id = $1 AND date = $2
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, userID, date).Scan(
		&att.ID, &att.UserID, &att.Date, &att.Status, &att.CheckInTime, &att.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return &att, nil
}

func (r *attendanceRepositoryImpl) ListByUser(ctx context.Context, userID string, limit int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date, status, check_in_time, created_at
		FROM attendance_records
		WHERE user_id = $1
		ORDER BY date DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(
			&att.ID, &att.UserID, &att.Date, &att.Status, &att.CheckInTime, &att.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, att)
	}

	return records, nil
}

func (r *attendanceRepositoryImpl) ListByDate(ctx context.Context, date time.Time, userID *string) ([]attendance.Attendance, error) {
	return r.ListByDateRange(ctx, date, date, userID)
}

func (r *attendanceRepositoryImpl) ListByDateRange(ctx context.Context, start, end time.Time, userID *string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.user_id, a.date, a.status, a.check_in_time, a.created_at,
			   u.full_name, u.role
		FROM attendance_records a
		JOIN users u ON u.id = a.user_id
		WHERE a.date >= $1 AND a.date <= $2
	`
	args := []interface{}{start, end}
	if userID != nil {
		query += " AND a.user_id = $3"
		args = append(args, *userID)
	}
	query += " ORDER BY a.date DESC, u.full_name"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(
			&att.ID, &att.UserID, &att.Date, &att.Status, &att.CheckInTime, &att.CreatedAt,
			&att.UserFullName, &att.UserRole,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, att)
	}

	return records, nil
}

// CountByDateRange aggregates one user's day counts over an inclusive date
// range. Late rows are counted on their own; they feed neither the present
// nor the absent totals.
func (r *attendanceRepositoryImpl) CountByDateRange(ctx context.Context, userID string, start, end time.Time) (attendance.DayCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'present'),
			COUNT(*) FILTER (WHERE status = 'absent'),
			COUNT(*) FILTER (WHERE status = 'late')
		FROM attendance_records
		WHERE user_id = $1 AND date >= $2 AND date <= $3
	`

	var counts attendance.DayCounts
	err := q.QueryRow(ctx, query, userID, start, end).Scan(
		&counts.PresentDays, &counts.AbsentDays, &counts.LateDays,
	)
	if err != nil {
		return attendance.DayCounts{}, fmt.Errorf("failed to count attendance for user %s: %w", userID, err)
	}

	return counts, nil
}
