package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bizgrid/erp_backend/internal/apperrors"
	"github.com/bizgrid/erp_backend/internal/core/domain"
	portsrepo "github.com/bizgrid/erp_backend/internal/core/ports/repositories"
	"github.com/bizgrid/erp_backend/internal/dto"
	"github.com/bizgrid/erp_backend/internal/middleware"
)

type SettingService struct {
	settingRepo portsrepo.SettingRepositoryFacade
}

func NewSettingService(repo portsrepo.SettingRepositoryFacade) *SettingService {
	return &SettingService{settingRepo: repo}
}

func (s *SettingService) GetSetting(ctx context.Context, key string) (*domain.Setting, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	setting, err := s.settingRepo.FindSettingByKey(ctx, key)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find setting", slog.String("error", err.Error()), slog.String("key", key))
		}
		return nil, err
	}
	return setting, nil
}

func (s *SettingService) ListSettings(ctx context.Context) ([]domain.Setting, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	settings, err := s.settingRepo.ListSettings(ctx)
	if err != nil {
		logger.Error("Failed to list settings", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	if settings == nil {
		return []domain.Setting{}, nil
	}
	return settings, nil
}

// UpsertSetting is restricted to managers and admins; staff can read
// settings but not change company-wide configuration.
func (s *SettingService) UpsertSetting(ctx context.Context, actor domain.Actor, key string, req dto.SaveSettingRequest) (*domain.Setting, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if actor.Role != domain.RoleAdmin && actor.Role != domain.RoleManager {
		return nil, fmt.Errorf("%w: role %s cannot change settings", apperrors.ErrForbidden, actor.Role)
	}
	if key == "" {
		return nil, fmt.Errorf("%w: setting key must not be empty", apperrors.ErrValidation)
	}

	now := time.Now()
	setting := domain.Setting{
		Key:   key,
		Value: req.Value,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.settingRepo.UpsertSetting(ctx, setting); err != nil {
		logger.Error("Failed to upsert setting", slog.String("error", err.Error()), slog.String("key", key))
		return nil, err
	}

	logger.Info("Setting saved", slog.String("key", key))
	return &setting, nil
}
