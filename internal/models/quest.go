package models

type Quest struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Reward    int    `json:"reward"`
	Completed bool   `json:"completed"`
}
