package bootstrap

import (
	"context"

	"github.com/GregMSThompson/notionflow-backend/internal/models"
)

type userSeeder interface {
	Upsert(ctx context.Context, user *models.User) error
}

type transactionSeeder interface {
	Append(ctx context.Context, tx models.Transaction) models.Transaction
}

func SeedUsers() []models.User {
	return []models.User{
		{ID: "user1", Name: "John Doe", XP: 450, Streak: 12, Mode: models.ModeIndividual},
	}
}

// SeedTransactions is listed in ledger order; ids are assigned on append.
func SeedTransactions() []models.Transaction {
	return []models.Transaction{
		{UserID: "user1", Amount: -4.50, Merchant: "Starbucks", Category: "Food", Date: "2023-10-27"},
		{UserID: "user1", Amount: 2400.00, Merchant: "Employer", Category: "Income", Date: "2023-10-26"},
	}
}

func SeedQuests() map[models.Mode][]models.Quest {
	return map[models.Mode][]models.Quest{
		models.ModeIndividual: {
			{ID: "q1", Text: "Log 3 expenses", Reward: 50, Completed: false},
			{ID: "q2", Text: "Check budget status", Reward: 20, Completed: true},
		},
		models.ModeSME: {
			{ID: "sq1", Text: "Approve 5 invoices", Reward: 100, Completed: false},
			{ID: "sq2", Text: "Update Q4 forecast", Reward: 150, Completed: false},
		},
	}
}

func Seed(ctx context.Context, users userSeeder, txs transactionSeeder) error {
	for _, u := range SeedUsers() {
		if err := users.Upsert(ctx, &u); err != nil {
			return err
		}
	}
	for _, tx := range SeedTransactions() {
		txs.Append(ctx, tx)
	}
	return nil
}
