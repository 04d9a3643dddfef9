package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/brickmart/console-backend-go/internal/domain/attendance"
	"github.com/brickmart/console-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	GetMyAttendance(w http.ResponseWriter, r *http.Request)
	RecordAbsence(w http.ResponseWriter, r *http.Request)
	DailyReport(w http.ResponseWriter, r *http.Request)
	RangeReport(w http.ResponseWriter, r *http.Request)
	MonthlySummary(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.CheckIn(r.Context(), attendance.CheckInRequest{UserID: userID})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked in successfully", result)
}

func (h *attendanceHandlerImpl) GetMyAttendance(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.attendanceService.GetMyAttendance(r.Context(), userID, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *attendanceHandlerImpl) RecordAbsence(w http.ResponseWriter, r *http.Request) {
	var req attendance.RecordAbsenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.attendanceService.RecordAbsence(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance recorded successfully", result)
}

func (h *attendanceHandlerImpl) DailyReport(w http.ResponseWriter, r *http.Request) {
	filter := attendance.ReportFilter{
		Date: r.URL.Query().Get("date"),
	}
	if userID := r.URL.Query().Get("user_id"); userID != "" {
		filter.UserID = &userID
	}

	result, err := h.attendanceService.DailyReport(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *attendanceHandlerImpl) RangeReport(w http.ResponseWriter, r *http.Request) {
	filter := rangeFilterFromQuery(r)

	result, err := h.attendanceService.RangeReport(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *attendanceHandlerImpl) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	filter := rangeFilterFromQuery(r)

	result, err := h.attendanceService.MonthlySummary(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func rangeFilterFromQuery(r *http.Request) attendance.RangeFilter {
	filter := attendance.RangeFilter{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}
	if userID := r.URL.Query().Get("user_id"); userID != "" {
		filter.UserID = &userID
	}
	return filter
}
