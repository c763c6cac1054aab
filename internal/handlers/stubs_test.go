package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/notionflow-backend/internal/dto"
	"github.com/GregMSThompson/notionflow-backend/internal/models"
)

// --- Stub services ---

type stubUserService struct {
	user         *models.User
	getErr       error
	switchResult dto.SwitchModeResult
	switchErr    error
	switchCalled bool
	lastUID      string
	lastMode     string
}

func (s *stubUserService) GetUser(_ context.Context, uid string) (*models.User, error) {
	s.lastUID = uid
	return s.user, s.getErr
}

func (s *stubUserService) SwitchMode(_ context.Context, uid, mode string) (dto.SwitchModeResult, error) {
	s.switchCalled = true
	s.lastUID = uid
	s.lastMode = mode
	return s.switchResult, s.switchErr
}

type stubDashboardService struct {
	view    models.DashboardView
	err     error
	lastUID string
}

func (s *stubDashboardService) GetDashboard(_ context.Context, uid string) (models.DashboardView, error) {
	s.lastUID = uid
	return s.view, s.err
}

type stubQuestService struct {
	result      dto.RewardResult
	completeErr error
	quests      []models.Quest
	listErr     error
	called      bool
	lastUID     string
	lastQuestID string
}

func (s *stubQuestService) CompleteQuest(_ context.Context, uid, questID string) (dto.RewardResult, error) {
	s.called = true
	s.lastUID = uid
	s.lastQuestID = questID
	return s.result, s.completeErr
}

func (s *stubQuestService) ListQuests(_ context.Context, uid string) ([]models.Quest, error) {
	s.lastUID = uid
	return s.quests, s.listErr
}

// --- Stub response handler ---

type stubResponseHandler struct {
	writeSuccessCalled bool
	writeSuccessStatus int
	writeSuccessData   any

	handleErrorCalled bool
	handleError       error

	writeErrorCalled bool
	writeErrorStatus int
	writeErrorMsg    string
}

func (s *stubResponseHandler) WriteSuccess(w http.ResponseWriter, _ *http.Request, status int, data any) {
	s.writeSuccessCalled = true
	s.writeSuccessStatus = status
	s.writeSuccessData = data
	w.WriteHeader(status)
}

func (s *stubResponseHandler) WriteError(w http.ResponseWriter, _ *http.Request, status int, message string) {
	s.writeErrorCalled = true
	s.writeErrorStatus = status
	s.writeErrorMsg = message
	w.WriteHeader(status)
}

func (s *stubResponseHandler) HandleError(w http.ResponseWriter, _ *http.Request, err error) {
	s.handleErrorCalled = true
	s.handleError = err
	w.WriteHeader(http.StatusInternalServerError)
}

// withChiParam injects a chi URL parameter into the request context.
func withChiParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
	return r.WithContext(ctx)
}
