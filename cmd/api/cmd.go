package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/GregMSThompson/notionflow-backend/internal/bootstrap"
	"github.com/GregMSThompson/notionflow-backend/internal/config"
	"github.com/GregMSThompson/notionflow-backend/internal/handlers"
	"github.com/GregMSThompson/notionflow-backend/internal/response"
	"github.com/GregMSThompson/notionflow-backend/internal/router"
	"github.com/GregMSThompson/notionflow-backend/internal/services"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// optional local overrides; real environment wins
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		exitOnError("failed to load .env", err, slog.Default())
	}

	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)

	// services
	userv := services.NewUserService(bs.Users, bs.Metrics)
	dserv := services.NewDashboardService(bs.Users, bs.Transactions)
	qserv := services.NewQuestService(bs.Users, bs.Quests, bs.Metrics)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.UserSvc = userv
	deps.DashboardSvc = dserv
	deps.QuestSvc = qserv

	// router
	r := router.NewRouter(deps, bs.Metrics, cfg.AllowedOrigins)
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	bs.Log.Info("NotionFlow server running", "port", cfg.Port)
	err = srv.ListenAndServe()
	exitOnError("server start failed", err, bs.Log)
}
