package dto

type CompleteQuestRequest struct {
	UserID string `json:"userId"`
}

type RewardResult struct {
	Success bool   `json:"success"`
	NewXP   int    `json:"newXp"`
	Message string `json:"message"`
}
