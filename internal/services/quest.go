package services

import (
	"context"
	"fmt"

	"github.com/GregMSThompson/notionflow-backend/internal/dto"
	"github.com/GregMSThompson/notionflow-backend/internal/models"
	"github.com/GregMSThompson/notionflow-backend/pkg/logger"
)

// QuestReward is the XP granted for any completed quest.
const QuestReward = 50

type questUserStore interface {
	Get(ctx context.Context, uid string) (*models.User, error)
	AddXP(ctx context.Context, uid string, amount int) (*models.User, error)
}

type questCatalog interface {
	QuestsFor(ctx context.Context, mode models.Mode) []models.Quest
}

type rewardRecorder interface {
	QuestCompleted(xp int)
}

type questService struct {
	users   questUserStore
	catalog questCatalog
	metrics rewardRecorder
}

func NewQuestService(users questUserStore, catalog questCatalog, metrics rewardRecorder) *questService {
	return &questService{users: users, catalog: catalog, metrics: metrics}
}

// CompleteQuest grants QuestReward XP to the user. The quest id is not
// checked against the catalog and repeated completions are rewarded again.
// Streak is left untouched.
func (s *questService) CompleteQuest(ctx context.Context, uid, questID string) (dto.RewardResult, error) {
	log := logger.FromContext(ctx)

	user, err := s.users.AddXP(ctx, uid, QuestReward)
	if err != nil {
		log.Warn("quest completion rejected", "uid", uid, "quest_id", questID, "error", err)
		return dto.RewardResult{}, err
	}

	s.metrics.QuestCompleted(QuestReward)
	log.Info("quest completed", "uid", uid, "quest_id", questID, "new_xp", user.XP)

	return dto.RewardResult{
		Success: true,
		NewXP:   user.XP,
		Message: fmt.Sprintf("Quest Completed! +%d XP", QuestReward),
	}, nil
}

func (s *questService) ListQuests(ctx context.Context, uid string) ([]models.Quest, error) {
	user, err := s.users.Get(ctx, uid)
	if err != nil {
		return nil, err
	}
	return s.catalog.QuestsFor(ctx, user.Mode), nil
}
