package http

import (
	"encoding/json"
	"net/http"

	"github.com/brickmart/console-backend-go/internal/domain/order"
	"github.com/brickmart/console-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type OrderHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	UpdatePaymentStatus(w http.ResponseWriter, r *http.Request)
}

type orderHandlerImpl struct {
	orderService order.OrderService
}

func NewOrderHandler(orderService order.OrderService) OrderHandler {
	return &orderHandlerImpl{orderService: orderService}
}

func (h *orderHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req order.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.orderService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Order created successfully", result)
}

func (h *orderHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	result, err := h.orderService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *orderHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter order.OrderFilter
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}

	result, err := h.orderService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *orderHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req order.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.orderService.UpdateStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *orderHandlerImpl) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	var req order.UpdatePaymentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.orderService.UpdatePaymentStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
