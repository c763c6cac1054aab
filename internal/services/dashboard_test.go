package services

import (
	"errors"
	"reflect"
	"testing"

	"github.com/GregMSThompson/notionflow-backend/internal/errs"
	"github.com/GregMSThompson/notionflow-backend/internal/models"
	"github.com/GregMSThompson/notionflow-backend/pkg/helpers"
)

func seededLedger() *fakeLedger {
	return &fakeLedger{txs: []models.Transaction{
		{ID: 1, UserID: "user1", Amount: -4.50, Merchant: "Starbucks", Category: "Food", Date: "2023-10-27"},
		{ID: 2, UserID: "user1", Amount: 2400.00, Merchant: "Employer", Category: "Income", Date: "2023-10-26"},
	}}
}

func TestComposeIndividual(t *testing.T) {
	ledger := seededLedger()
	svc := NewDashboardService(newFakeUserStore(), ledger)
	user := seedUser()

	view, err := svc.Compose(helpers.TestCtx(), &user)
	if err != nil {
		t.Fatalf("Compose returned error: %v", err)
	}
	if view.Context != ContextPersonalFinance {
		t.Fatalf("context = %q", view.Context)
	}
	if len(view.Blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(view.Blocks))
	}

	wantTypes := []models.BlockType{models.BlockStats, models.BlockChart, models.BlockList}
	for i, b := range view.Blocks {
		if b.Type() != wantTypes[i] {
			t.Fatalf("block %d type = %s, want %s", i, b.Type(), wantTypes[i])
		}
	}

	stats := view.Blocks[0].(models.StatsBlock)
	if stats.Title != "Net Worth" || stats.Value != NetWorthPlaceholder {
		t.Fatalf("unexpected stats block: %+v", stats)
	}
	if chart := view.Blocks[1].(models.ChartBlock); chart.Title != "Spending Categories" {
		t.Fatalf("unexpected chart block: %+v", chart)
	}

	list := view.Blocks[2].(models.ListBlock)
	if list.Title != "Recent Transactions" {
		t.Fatalf("unexpected list title: %q", list.Title)
	}
	if len(list.Data) != 2 || list.Data[0].Merchant != "Starbucks" || list.Data[1].Merchant != "Employer" {
		t.Fatalf("unexpected list data: %+v", list.Data)
	}
	if ledger.lastUID != "user1" || ledger.lastLimit != RecentTransactionsLimit {
		t.Fatalf("ledger queried with uid=%q limit=%d", ledger.lastUID, ledger.lastLimit)
	}
}

func TestComposeIndividualCapsTransactions(t *testing.T) {
	ledger := &fakeLedger{}
	for i := 1; i <= 9; i++ {
		ledger.txs = append(ledger.txs, models.Transaction{ID: i, UserID: "user1"})
	}
	svc := NewDashboardService(newFakeUserStore(), ledger)
	user := seedUser()

	view, err := svc.Compose(helpers.TestCtx(), &user)
	if err != nil {
		t.Fatalf("Compose returned error: %v", err)
	}
	list := view.Blocks[2].(models.ListBlock)
	if len(list.Data) != RecentTransactionsLimit {
		t.Fatalf("list holds %d transactions, want %d", len(list.Data), RecentTransactionsLimit)
	}
	for i, tx := range list.Data {
		if tx.ID != i+1 {
			t.Fatalf("position %d has id %d", i, tx.ID)
		}
	}
}

func TestComposeSME(t *testing.T) {
	ledger := seededLedger()
	svc := NewDashboardService(newFakeUserStore(), ledger)
	user := seedUser()
	user.Mode = models.ModeSME

	view, err := svc.Compose(helpers.TestCtx(), &user)
	if err != nil {
		t.Fatalf("Compose returned error: %v", err)
	}
	if view.Context != ContextBusiness {
		t.Fatalf("context = %q", view.Context)
	}

	want := []models.Block{
		models.StatsBlock{Title: "Project Budget", Value: ProjectBudgetPlaceholder},
		models.ChartBlock{Title: "Cash Flow"},
		models.ListBlock{Title: "Pending Approvals", Data: []models.Transaction{}},
	}
	if !reflect.DeepEqual(view.Blocks, want) {
		t.Fatalf("blocks = %+v, want %+v", view.Blocks, want)
	}
	if ledger.lastUID != "" {
		t.Fatal("SME dashboard should not read the ledger")
	}
}

func TestComposeIsRepeatable(t *testing.T) {
	svc := NewDashboardService(newFakeUserStore(), seededLedger())
	user := seedUser()

	first, err := svc.Compose(helpers.TestCtx(), &user)
	if err != nil {
		t.Fatalf("Compose returned error: %v", err)
	}
	second, err := svc.Compose(helpers.TestCtx(), &user)
	if err != nil {
		t.Fatalf("Compose returned error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("compose not repeatable:\n%+v\n%+v", first, second)
	}
}

func TestComposeUnknownMode(t *testing.T) {
	svc := NewDashboardService(newFakeUserStore(), seededLedger())
	user := seedUser()
	user.Mode = models.Mode("enterprise")

	_, err := svc.Compose(helpers.TestCtx(), &user)
	var im *errs.InvalidModeError
	if !errors.As(err, &im) {
		t.Fatalf("expected InvalidModeError, got %v", err)
	}
}

func TestGetDashboard(t *testing.T) {
	svc := NewDashboardService(newFakeUserStore(seedUser()), seededLedger())

	view, err := svc.GetDashboard(helpers.TestCtx(), "user1")
	if err != nil {
		t.Fatalf("GetDashboard returned error: %v", err)
	}
	if view.Context != ContextPersonalFinance {
		t.Fatalf("context = %q", view.Context)
	}
}

func TestGetDashboardNotFound(t *testing.T) {
	svc := NewDashboardService(newFakeUserStore(), seededLedger())

	_, err := svc.GetDashboard(helpers.TestCtx(), "missing")
	var nf *errs.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
