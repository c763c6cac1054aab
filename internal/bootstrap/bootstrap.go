package bootstrap

import (
	"context"
	"log/slog"

	"github.com/GregMSThompson/notionflow-backend/internal/config"
	"github.com/GregMSThompson/notionflow-backend/internal/metrics"
	"github.com/GregMSThompson/notionflow-backend/internal/models"
	"github.com/GregMSThompson/notionflow-backend/internal/store"
	"github.com/GregMSThompson/notionflow-backend/pkg/logger"
)

type userStore interface {
	Upsert(ctx context.Context, user *models.User) error
	Get(ctx context.Context, uid string) (*models.User, error)
	SetMode(ctx context.Context, uid string, mode models.Mode) (*models.User, error)
	AddXP(ctx context.Context, uid string, amount int) (*models.User, error)
}

type transactionStore interface {
	Append(ctx context.Context, tx models.Transaction) models.Transaction
	RecentForUser(ctx context.Context, uid string, limit int) []models.Transaction
}

type questStore interface {
	QuestsFor(ctx context.Context, mode models.Mode) []models.Quest
}

// Bootstrap holds the process-lifetime collaborators. All state lives in
// memory and is rebuilt from seed data on every start.
type Bootstrap struct {
	Log          *slog.Logger
	Metrics      *metrics.Metrics
	Users        userStore
	Transactions transactionStore
	Quests       questStore
}

func Run(cfg *config.Config) (*Bootstrap, error) {
	return run(cfg, logger.NewCloudRunHandler)
}

func run(cfg *config.Config, handler func(level slog.Level) slog.Handler) (*Bootstrap, error) {
	applicationCtx := context.Background()
	bs := new(Bootstrap)

	bs.Log = logger.New(cfg.LogLevel, handler)
	bs.Metrics = metrics.New()
	bs.Users = store.NewUserStore()
	bs.Transactions = store.NewTransactionStore()
	bs.Quests = store.NewQuestStore(SeedQuests())

	if err := Seed(applicationCtx, bs.Users, bs.Transactions); err != nil {
		return bs, err
	}
	bs.Log.Info("in-memory stores seeded", "users", len(SeedUsers()), "transactions", len(SeedTransactions()))

	return bs, nil
}
