package http

import (
	"net/http"

	"github.com/brickmart/console-backend-go/internal/domain/dashboard"
	"github.com/brickmart/console-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetOverview(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

func (h *dashboardHandlerImpl) GetOverview(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetOverview(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
