package services

import (
	"context"

	"github.com/GregMSThompson/notionflow-backend/internal/errs"
	"github.com/GregMSThompson/notionflow-backend/internal/models"
)

// --- Fakes ---

type fakeUserStore struct {
	users      map[string]models.User
	setModeErr error
	addXPCalls int
}

func newFakeUserStore(users ...models.User) *fakeUserStore {
	f := &fakeUserStore{users: make(map[string]models.User)}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserStore) Get(_ context.Context, uid string) (*models.User, error) {
	u, ok := f.users[uid]
	if !ok {
		return nil, errs.NewUserNotFoundError()
	}
	return &u, nil
}

func (f *fakeUserStore) SetMode(_ context.Context, uid string, mode models.Mode) (*models.User, error) {
	if f.setModeErr != nil {
		return nil, f.setModeErr
	}
	u, ok := f.users[uid]
	if !ok {
		return nil, errs.NewUserNotFoundError()
	}
	u.Mode = mode
	f.users[uid] = u
	return &u, nil
}

func (f *fakeUserStore) AddXP(_ context.Context, uid string, amount int) (*models.User, error) {
	f.addXPCalls++
	u, ok := f.users[uid]
	if !ok {
		return nil, errs.NewUserNotFoundError()
	}
	u.XP += amount
	f.users[uid] = u
	return &u, nil
}

type fakeLedger struct {
	txs       []models.Transaction
	lastUID   string
	lastLimit int
}

func (f *fakeLedger) RecentForUser(_ context.Context, uid string, limit int) []models.Transaction {
	f.lastUID = uid
	f.lastLimit = limit
	out := make([]models.Transaction, 0)
	for _, tx := range f.txs {
		if tx.UserID == uid && len(out) < limit {
			out = append(out, tx)
		}
	}
	return out
}

type fakeCatalog struct {
	quests   map[models.Mode][]models.Quest
	lastMode models.Mode
}

func (f *fakeCatalog) QuestsFor(_ context.Context, mode models.Mode) []models.Quest {
	f.lastMode = mode
	return append([]models.Quest{}, f.quests[mode]...)
}

type fakeRecorder struct {
	questXP   []int
	modeNames []string
}

func (f *fakeRecorder) QuestCompleted(xp int)    { f.questXP = append(f.questXP, xp) }
func (f *fakeRecorder) ModeSwitched(mode string) { f.modeNames = append(f.modeNames, mode) }

func seedUser() models.User {
	return models.User{ID: "user1", Name: "John Doe", XP: 450, Streak: 12, Mode: models.ModeIndividual}
}
