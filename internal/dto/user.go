package dto

import "github.com/GregMSThompson/notionflow-backend/internal/models"

type SwitchModeRequest struct {
	Mode string `json:"mode"`
}

type SwitchModeResult struct {
	Success bool        `json:"success"`
	Mode    models.Mode `json:"mode"`
}
