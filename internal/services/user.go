package services

import (
	"context"

	"github.com/GregMSThompson/notionflow-backend/internal/dto"
	"github.com/GregMSThompson/notionflow-backend/internal/errs"
	"github.com/GregMSThompson/notionflow-backend/internal/models"
	"github.com/GregMSThompson/notionflow-backend/pkg/logger"
)

type userUSStore interface {
	Get(ctx context.Context, uid string) (*models.User, error)
	SetMode(ctx context.Context, uid string, mode models.Mode) (*models.User, error)
}

type modeRecorder interface {
	ModeSwitched(mode string)
}

type userService struct {
	Store   userUSStore
	Metrics modeRecorder
}

func NewUserService(store userUSStore, metrics modeRecorder) *userService {
	return &userService{
		Store:   store,
		Metrics: metrics,
	}
}

func (s *userService) GetUser(ctx context.Context, uid string) (*models.User, error) {
	user, err := s.Store.Get(ctx, uid)
	if err != nil {
		logger.FromContext(ctx).Warn("user lookup failed", "uid", uid, "error", err)
		return nil, err
	}
	return user, nil
}

func (s *userService) SwitchMode(ctx context.Context, uid, rawMode string) (dto.SwitchModeResult, error) {
	log := logger.FromContext(ctx)

	mode, ok := models.ParseMode(rawMode)
	if !ok {
		log.Warn("rejected mode switch", "uid", uid, "mode", rawMode)
		return dto.SwitchModeResult{}, errs.NewInvalidModeError(rawMode)
	}

	user, err := s.Store.SetMode(ctx, uid, mode)
	if err != nil {
		log.Warn("mode switch failed", "uid", uid, "mode", rawMode, "error", err)
		return dto.SwitchModeResult{}, err
	}

	s.Metrics.ModeSwitched(string(user.Mode))
	log.Info("mode switched", "uid", uid, "mode", user.Mode)
	return dto.SwitchModeResult{Success: true, Mode: user.Mode}, nil
}
