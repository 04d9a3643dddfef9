package http

import (
	"encoding/json"
	"net/http"

	"github.com/brickmart/console-backend-go/internal/domain/customer"
	"github.com/brickmart/console-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type CustomerHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type customerHandlerImpl struct {
	customerService customer.CustomerService
}

func NewCustomerHandler(customerService customer.CustomerService) CustomerHandler {
	return &customerHandlerImpl{customerService: customerService}
}

func (h *customerHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req customer.CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.customerService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Customer created successfully", result)
}

func (h *customerHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	result, err := h.customerService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *customerHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter customer.CustomerFilter
	if search := r.URL.Query().Get("search"); search != "" {
		filter.Search = &search
	}
	if segment := r.URL.Query().Get("segment"); segment != "" {
		filter.Segment = &segment
	}

	result, err := h.customerService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *customerHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req customer.UpdateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.customerService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *customerHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.customerService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Customer deleted successfully", nil)
}
