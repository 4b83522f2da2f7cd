package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ronaldocristover/arisan-backend/internal/core/domain"
	portsrepo "github.com/ronaldocristover/arisan-backend/internal/core/ports/repositories"
	portssvc "github.com/ronaldocristover/arisan-backend/internal/core/ports/services"
	"github.com/ronaldocristover/arisan-backend/internal/dto"
)

// settingService manages the global key-value store.
type settingService struct {
	settingRepo portsrepo.SettingRepositoryFacade
}

// NewSettingService creates a new setting service.
func NewSettingService(settingRepo portsrepo.SettingRepositoryFacade) portssvc.SettingSvcFacade {
	return &settingService{settingRepo: settingRepo}
}

var _ portssvc.SettingSvcFacade = (*settingService)(nil)

func (s *settingService) GetSetting(ctx context.Context, key string) (*domain.Setting, error) {
	setting, err := s.settingRepo.FindSettingByKey(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get setting %s: %w", key, err)
	}
	return setting, nil
}

func (s *settingService) ListSettings(ctx context.Context) ([]domain.Setting, error) {
	settings, err := s.settingRepo.ListSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	if settings == nil {
		settings = []domain.Setting{}
	}
	return settings, nil
}

func (s *settingService) UpdateSetting(ctx context.Context, key string, req dto.UpdateSettingRequest, requestingUserID string) (*domain.Setting, error) {
	now := time.Now().UTC()
	setting := domain.Setting{
		Key:   key,
		Value: req.Value,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	if err := s.settingRepo.UpsertSetting(ctx, setting); err != nil {
		return nil, fmt.Errorf("failed to upsert setting %s: %w", key, err)
	}
	return &setting, nil
}

func (s *settingService) BulkUpdateSettings(ctx context.Context, req dto.BulkUpdateSettingsRequest, requestingUserID string) ([]domain.Setting, error) {
	now := time.Now().UTC()
	settings := make([]domain.Setting, 0, len(req.Settings))
	for key, value := range req.Settings {
		settings = append(settings, domain.Setting{
			Key:   key,
			Value: value,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     requestingUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: requestingUserID,
			},
		})
	}

	if err := s.settingRepo.UpsertSettings(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to bulk upsert settings: %w", err)
	}
	return settings, nil
}
