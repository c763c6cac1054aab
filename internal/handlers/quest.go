package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/notionflow-backend/internal/dto"
	"github.com/GregMSThompson/notionflow-backend/internal/models"
	"github.com/GregMSThompson/notionflow-backend/internal/response"
)

type questService interface {
	CompleteQuest(ctx context.Context, uid, questID string) (dto.RewardResult, error)
	ListQuests(ctx context.Context, uid string) ([]models.Quest, error)
}

type questHandlers struct {
	ResponseHandler response.ResponseHandler
	QuestSvc        questService
}

func NewQuestHandlers(deps *Deps) *questHandlers {
	return &questHandlers{
		ResponseHandler: deps.ResponseHandler,
		QuestSvc:        deps.QuestSvc,
	}
}

func (h *questHandlers) QuestRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/{id}/complete", h.CompleteQuest)
	return r
}

func (h *questHandlers) CompleteQuest(w http.ResponseWriter, r *http.Request) {
	var req dto.CompleteQuestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) { // empty body falls through to user not found
		h.ResponseHandler.WriteError(w, r, http.StatusBadRequest, response.MessageInvalidRequest)
		return
	}

	questID := chi.URLParam(r, "id")
	result, err := h.QuestSvc.CompleteQuest(r.Context(), req.UserID, questID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, result)
}
