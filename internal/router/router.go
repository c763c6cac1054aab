package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/GregMSThompson/notionflow-backend/internal/handlers"
	"github.com/GregMSThompson/notionflow-backend/internal/metrics"
	"github.com/GregMSThompson/notionflow-backend/internal/middleware"
)

func NewRouter(deps *handlers.Deps, m *metrics.Metrics, allowedOrigins []string) chi.Router {
	r := chi.NewRouter()

	lm := middleware.NewLoggerMiddleware(deps.Log)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(lm.LoggerMiddleware)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(allowedOrigins))
	r.Use(m.Instrument)

	ush := handlers.NewUserHandlers(deps)
	dsh := handlers.NewDashboardHandlers(deps)
	qsh := handlers.NewQuestHandlers(deps)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/user", ush.UserRoutes())
		r.Mount("/dashboard", dsh.DashboardRoutes())
		r.Mount("/quest", qsh.QuestRoutes())
	})
	r.Handle("/metrics", m.Handler())
	return r
}
