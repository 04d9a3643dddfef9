package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/brickmart/console-backend-go/internal/domain/salary"
	"github.com/brickmart/console-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type SalaryHandler interface {
	Reconcile(w http.ResponseWriter, r *http.Request)
	ListByPeriod(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
}

type salaryHandlerImpl struct {
	salaryService salary.SalaryService
}

func NewSalaryHandler(salaryService salary.SalaryService) SalaryHandler {
	return &salaryHandlerImpl{salaryService: salaryService}
}

func (h *salaryHandlerImpl) Reconcile(w http.ResponseWriter, r *http.Request) {
	var req salary.ReconcileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.salaryService.Reconcile(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll reconciled successfully", result)
}

func (h *salaryHandlerImpl) ListByPeriod(w http.ResponseWriter, r *http.Request) {
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))

	result, err := h.salaryService.ListByPeriod(r.Context(), salary.PeriodFilter{Month: month, Year: year})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *salaryHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	result, err := h.salaryService.MarkPaid(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary marked as paid", result)
}
