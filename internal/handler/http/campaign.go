package http

import (
	"encoding/json"
	"net/http"

	"github.com/brickmart/console-backend-go/internal/domain/campaign"
	"github.com/brickmart/console-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type CampaignHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type campaignHandlerImpl struct {
	campaignService campaign.CampaignService
}

func NewCampaignHandler(campaignService campaign.CampaignService) CampaignHandler {
	return &campaignHandlerImpl{campaignService: campaignService}
}

func (h *campaignHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req campaign.CreateCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.campaignService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Campaign created successfully", result)
}

func (h *campaignHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	result, err := h.campaignService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *campaignHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.campaignService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *campaignHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req campaign.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.campaignService.UpdateStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
