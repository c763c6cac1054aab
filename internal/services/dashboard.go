package services

import (
	"context"

	"github.com/GregMSThompson/notionflow-backend/internal/errs"
	"github.com/GregMSThompson/notionflow-backend/internal/models"
)

// Dashboard labels and fixed headline figures. The headline values are
// placeholders and are not derived from the ledger.
const (
	ContextPersonalFinance = "Personal Finance"
	ContextBusiness        = "Business"

	NetWorthPlaceholder      = 12450
	ProjectBudgetPlaceholder = 45000

	RecentTransactionsLimit = 5
)

type dashboardUserStore interface {
	Get(ctx context.Context, uid string) (*models.User, error)
}

type dashboardLedger interface {
	RecentForUser(ctx context.Context, uid string, limit int) []models.Transaction
}

type dashboardService struct {
	users  dashboardUserStore
	ledger dashboardLedger
}

func NewDashboardService(users dashboardUserStore, ledger dashboardLedger) *dashboardService {
	return &dashboardService{users: users, ledger: ledger}
}

func (s *dashboardService) GetDashboard(ctx context.Context, uid string) (models.DashboardView, error) {
	user, err := s.users.Get(ctx, uid)
	if err != nil {
		return models.DashboardView{}, err
	}
	return s.Compose(ctx, user)
}

// Compose builds the dashboard for the user's current mode. It only reads.
func (s *dashboardService) Compose(ctx context.Context, user *models.User) (models.DashboardView, error) {
	switch user.Mode {
	case models.ModeIndividual:
		return models.DashboardView{
			Context: ContextPersonalFinance,
			Blocks: []models.Block{
				models.StatsBlock{Title: "Net Worth", Value: NetWorthPlaceholder},
				models.ChartBlock{Title: "Spending Categories"},
				models.ListBlock{
					Title: "Recent Transactions",
					Data:  s.ledger.RecentForUser(ctx, user.ID, RecentTransactionsLimit),
				},
			},
		}, nil
	case models.ModeSME:
		return models.DashboardView{
			Context: ContextBusiness,
			Blocks: []models.Block{
				models.StatsBlock{Title: "Project Budget", Value: ProjectBudgetPlaceholder},
				models.ChartBlock{Title: "Cash Flow"},
				models.ListBlock{Title: "Pending Approvals", Data: []models.Transaction{}},
			},
		}, nil
	default:
		// a new mode must get its own layout here
		return models.DashboardView{}, errs.NewInvalidModeError(string(user.Mode))
	}
}
