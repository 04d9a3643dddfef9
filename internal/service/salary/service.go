package salary

import (
	"context"
	"fmt"
	"time"

	"github.com/brickmart/console-backend-go/internal/domain/attendance"
	"github.com/brickmart/console-backend-go/internal/domain/salary"
	"github.com/brickmart/console-backend-go/internal/domain/user"
	"github.com/brickmart/console-backend-go/internal/pkg/database"
	"github.com/brickmart/console-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type SalaryServiceImpl struct {
	db             *database.DB
	salaryRepo     salary.SalaryRepository
	attendanceRepo attendance.AttendanceRepository
	userRepo       user.UserRepository
}

func NewSalaryService(
	db *database.DB,
	salaryRepo salary.SalaryRepository,
	attendanceRepo attendance.AttendanceRepository,
	userRepo user.UserRepository,
) salary.SalaryService {
	return &SalaryServiceImpl{
		db:             db,
		salaryRepo:     salaryRepo,
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
	}
}

// Reconcile implements salary.SalaryService.
func (s *SalaryServiceImpl) Reconcile(ctx context.Context, req salary.ReconcileRequest) ([]salary.SalaryRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start, end := validator.PeriodBounds(req.Month, req.Year)

	staff, err := s.userRepo.ListStaff(ctx, user.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff for reconciliation: %w", err)
	}

	responses := make([]salary.SalaryRecordResponse, 0, len(staff))
	for _, emp := range staff {
		counts, err := s.attendanceRepo.CountByDateRange(ctx, emp.ID, start, end)
		if err != nil {
			return nil, fmt.Errorf("failed to count attendance for employee %s: %w", emp.FullName, err)
		}

		// Late days carry their own count and contribute to neither side.
		amount := emp.SalaryPerDay.Mul(decimal.NewFromInt(int64(counts.PresentDays)))

		record, err := s.salaryRepo.Upsert(ctx, salary.SalaryRecord{
			UserID:      emp.ID,
			Month:       req.Month,
			Year:        req.Year,
			PresentDays: counts.PresentDays,
			AbsentDays:  counts.AbsentDays,
			Amount:      amount,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to reconcile salary for employee %s: %w", emp.FullName, err)
		}

		record.EmployeeName = &emp.FullName
		role := string(emp.Role)
		record.EmployeeRole = &role
		record.SalaryPerDay = &emp.SalaryPerDay

		responses = append(responses, toRecordResponse(record))
	}

	return responses, nil
}

// ListByPeriod implements salary.SalaryService.
func (s *SalaryServiceImpl) ListByPeriod(ctx context.Context, filter salary.PeriodFilter) ([]salary.SalaryRecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.salaryRepo.ListByPeriod(ctx, filter.Month, filter.Year)
	if err != nil {
		return nil, err
	}

	responses := make([]salary.SalaryRecordResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, toRecordResponse(record))
	}

	return responses, nil
}

// MarkPaid implements salary.SalaryService.
func (s *SalaryServiceImpl) MarkPaid(ctx context.Context, recordID string) (salary.SalaryRecordResponse, error) {
	record, err := s.salaryRepo.MarkPaid(ctx, recordID)
	if err != nil {
		return salary.SalaryRecordResponse{}, err
	}

	return toRecordResponse(record), nil
}

func toRecordResponse(record salary.SalaryRecord) salary.SalaryRecordResponse {
	resp := salary.SalaryRecordResponse{
		ID:           record.ID,
		UserID:       record.UserID,
		Month:        record.Month,
		Year:         record.Year,
		PresentDays:  record.PresentDays,
		AbsentDays:   record.AbsentDays,
		SalaryPerDay: record.SalaryPerDay,
		Amount:       record.Amount,
		Status:       string(record.Status),
	}
	if record.EmployeeName != nil {
		resp.EmployeeName = *record.EmployeeName
	}
	if record.EmployeeRole != nil {
		resp.EmployeeRole = *record.EmployeeRole
	}
	if record.PaidAt != nil {
		paidAt := record.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &paidAt
	}
	return resp
}
