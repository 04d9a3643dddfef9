package http

import (
	"encoding/json"
	"net/http"

	"github.com/brickmart/console-backend-go/internal/domain/ticket"
	"github.com/brickmart/console-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TicketHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type ticketHandlerImpl struct {
	ticketService ticket.TicketService
}

func NewTicketHandler(ticketService ticket.TicketService) TicketHandler {
	return &ticketHandlerImpl{ticketService: ticketService}
}

func (h *ticketHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req ticket.CreateTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.ticketService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Support ticket created successfully", result)
}

func (h *ticketHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	result, err := h.ticketService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *ticketHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.ticketService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *ticketHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req ticket.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.ticketService.UpdateStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
