package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/notionflow-backend/internal/models"
	"github.com/GregMSThompson/notionflow-backend/internal/response"
)

type dashboardService interface {
	GetDashboard(ctx context.Context, uid string) (models.DashboardView, error)
}

type dashboardHandlers struct {
	ResponseHandler response.ResponseHandler
	DashboardSvc    dashboardService
}

func NewDashboardHandlers(deps *Deps) *dashboardHandlers {
	return &dashboardHandlers{
		ResponseHandler: deps.ResponseHandler,
		DashboardSvc:    deps.DashboardSvc,
	}
}

func (h *dashboardHandlers) DashboardRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/{id}", h.GetDashboard)
	return r
}

func (h *dashboardHandlers) GetDashboard(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "id")
	view, err := h.DashboardSvc.GetDashboard(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, view)
}
