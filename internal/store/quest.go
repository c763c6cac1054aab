package store

import (
	"context"

	"github.com/GregMSThompson/notionflow-backend/internal/models"
)

// questStore is a read-only catalog of quests per mode.
type questStore struct {
	quests map[models.Mode][]models.Quest
}

func NewQuestStore(quests map[models.Mode][]models.Quest) *questStore {
	catalog := make(map[models.Mode][]models.Quest, len(quests))
	for mode, qs := range quests {
		catalog[mode] = append([]models.Quest(nil), qs...)
	}
	return &questStore{quests: catalog}
}

// QuestsFor returns the quests for mode, or an empty slice when the mode has
// none.
func (s *questStore) QuestsFor(_ context.Context, mode models.Mode) []models.Quest {
	qs := s.quests[mode]
	out := make([]models.Quest, len(qs))
	copy(out, qs)
	return out
}
