package store

import (
	"context"
	"sync"

	"github.com/GregMSThompson/notionflow-backend/internal/errs"
	"github.com/GregMSThompson/notionflow-backend/internal/models"
)

// userStore keeps users in process memory. State is lost on restart.
type userStore struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewUserStore() *userStore {
	return &userStore{users: make(map[string]models.User)}
}

func (us *userStore) Upsert(_ context.Context, user *models.User) error {
	if !user.Mode.Valid() {
		return errs.NewInvalidModeError(string(user.Mode))
	}
	if user.XP < 0 || user.Streak < 0 {
		return errs.NewValidationError("xp and streak must be non-negative")
	}

	us.mu.Lock()
	defer us.mu.Unlock()
	us.users[user.ID] = *user
	return nil
}

func (us *userStore) Get(_ context.Context, uid string) (*models.User, error) {
	us.mu.RLock()
	defer us.mu.RUnlock()

	user, ok := us.users[uid]
	if !ok {
		return nil, errs.NewUserNotFoundError()
	}
	return &user, nil
}

func (us *userStore) SetMode(_ context.Context, uid string, mode models.Mode) (*models.User, error) {
	if !mode.Valid() {
		return nil, errs.NewInvalidModeError(string(mode))
	}
	return us.update(uid, func(u *models.User) {
		u.Mode = mode
	})
}

func (us *userStore) AddXP(_ context.Context, uid string, amount int) (*models.User, error) {
	if amount < 0 {
		return nil, errs.NewValidationError("xp amount must be non-negative")
	}
	return us.update(uid, func(u *models.User) {
		u.XP += amount
	})
}

// update applies fn to a copy of the stored user and writes it back while
// holding the write lock for the whole read-modify-write.
func (us *userStore) update(uid string, fn func(u *models.User)) (*models.User, error) {
	us.mu.Lock()
	defer us.mu.Unlock()

	user, ok := us.users[uid]
	if !ok {
		return nil, errs.NewUserNotFoundError()
	}
	fn(&user)
	us.users[uid] = user

	out := user
	return &out, nil
}
