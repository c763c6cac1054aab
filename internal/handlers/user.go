package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/notionflow-backend/internal/dto"
	"github.com/GregMSThompson/notionflow-backend/internal/errs"
	"github.com/GregMSThompson/notionflow-backend/internal/models"
	"github.com/GregMSThompson/notionflow-backend/internal/response"
)

type UserService interface {
	GetUser(ctx context.Context, uid string) (*models.User, error)
	SwitchMode(ctx context.Context, uid, mode string) (dto.SwitchModeResult, error)
}

type userHandlers struct {
	ResponseHandler response.ResponseHandler
	UserSvc         UserService
	QuestSvc        questService
}

func NewUserHandlers(deps *Deps) *userHandlers {
	return &userHandlers{
		ResponseHandler: deps.ResponseHandler,
		UserSvc:         deps.UserSvc,
		QuestSvc:        deps.QuestSvc,
	}
}

func (h *userHandlers) UserRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/{id}", h.GetUser)
	r.Post("/{id}/mode", h.SwitchMode)
	r.Get("/{id}/quests", h.ListQuests)
	return r
}

func (h *userHandlers) GetUser(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "id")
	user, err := h.UserSvc.GetUser(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, user)
}

// SwitchMode answers 400 for an unknown user as well as for a bad mode.
func (h *userHandlers) SwitchMode(w http.ResponseWriter, r *http.Request) {
	var req dto.SwitchModeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.WriteError(w, r, http.StatusBadRequest, response.MessageInvalidRequest)
		return
	}

	uid := chi.URLParam(r, "id")
	result, err := h.UserSvc.SwitchMode(r.Context(), uid, req.Mode)
	if err != nil {
		var nf *errs.NotFoundError
		if errors.As(err, &nf) {
			h.ResponseHandler.WriteError(w, r, http.StatusBadRequest, response.MessageInvalidRequest)
			return
		}
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, result)
}

func (h *userHandlers) ListQuests(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "id")
	quests, err := h.QuestSvc.ListQuests(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, quests)
}
