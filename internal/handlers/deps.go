package handlers

import (
	"log/slog"

	"github.com/GregMSThompson/notionflow-backend/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	UserSvc         UserService
	DashboardSvc    dashboardService
	QuestSvc        questService
}
