package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/brickmart/console-backend-go/internal/domain/attendance"
	"github.com/brickmart/console-backend-go/internal/domain/user"
	"github.com/brickmart/console-backend-go/internal/pkg/database"
	"github.com/brickmart/console-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
	userRepo       user.UserRepository
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	userRepo user.UserRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
	}
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	existing, err := s.attendanceRepo.GetByUserAndDate(ctx, req.UserID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	att, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		UserID:      req.UserID,
		Date:        today,
		Status:      attendance.StatusPresent,
		CheckInTime: &now,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toAttendanceResponse(att), nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, userID string, limit int) ([]attendance.AttendanceResponse, error) {
	if limit < 1 || limit > 100 {
		limit = 30
	}

	records, err := s.attendanceRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	return toAttendanceResponses(records), nil
}

// RecordAbsence implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) RecordAbsence(ctx context.Context, req attendance.RecordAbsenceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	att, err := s.attendanceRepo.Upsert(ctx, attendance.Attendance{
		UserID: req.UserID,
		Date:   date,
		Status: attendance.Status(req.Status),
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toAttendanceResponse(att), nil
}

// DailyReport implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DailyReport(ctx context.Context, filter attendance.ReportFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	date, _ := validator.IsValidDate(filter.Date)

	records, err := s.attendanceRepo.ListByDate(ctx, date, filter.UserID)
	if err != nil {
		return nil, err
	}

	return toAttendanceResponses(records), nil
}

// RangeReport implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) RangeReport(ctx context.Context, filter attendance.RangeFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	start, _ := validator.IsValidDate(filter.StartDate)
	end, _ := validator.IsValidDate(filter.EndDate)

	records, err := s.attendanceRepo.ListByDateRange(ctx, start, end, filter.UserID)
	if err != nil {
		return nil, err
	}

	return toAttendanceResponses(records), nil
}

// MonthlySummary implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MonthlySummary(ctx context.Context, filter attendance.RangeFilter) ([]attendance.MonthlySummaryRow, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	start, _ := validator.IsValidDate(filter.StartDate)
	end, _ := validator.IsValidDate(filter.EndDate)

	staff, err := s.userRepo.ListStaff(ctx, user.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff for summary: %w", err)
	}

	rows := make([]attendance.MonthlySummaryRow, 0, len(staff))
	for _, emp := range staff {
		counts, err := s.attendanceRepo.CountByDateRange(ctx, emp.ID, start, end)
		if err != nil {
			return nil, fmt.Errorf("failed to count attendance for employee %s: %w", emp.FullName, err)
		}
		rows = append(rows, attendance.MonthlySummaryRow{
			UserID:      emp.ID,
			FullName:    emp.FullName,
			Role:        string(emp.Role),
			PresentDays: counts.PresentDays,
			AbsentDays:  counts.AbsentDays,
			LateDays:    counts.LateDays,
		})
	}

	return rows, nil
}

func toAttendanceResponse(att attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:       att.ID,
		UserID:   att.UserID,
		Date:     att.Date.Format("2006-01-02"),
		Status:   string(att.Status),
		FullName: att.UserFullName,
		Role:     att.UserRole,
	}
	if att.CheckInTime != nil {
		checkIn := att.CheckInTime.Format(time.RFC3339)
		resp.CheckInTime = &checkIn
	}
	return resp
}

func toAttendanceResponses(records []attendance.Attendance) []attendance.AttendanceResponse {
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, toAttendanceResponse(att))
	}
	return responses
}
