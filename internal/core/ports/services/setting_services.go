package services

import (
	"context"

	"github.com/ronaldocristover/arisan-backend/internal/core/domain"
	"github.com/ronaldocristover/arisan-backend/internal/dto"
)

// SettingSvcFacade defines all operations for the key-value settings store
type SettingSvcFacade interface {
	// GetSetting retrieves one setting by key.
	GetSetting(ctx context.Context, key string) (*domain.Setting, error)

	// ListSettings retrieves every setting.
	ListSettings(ctx context.Context) ([]domain.Setting, error)

	// UpdateSetting upserts one setting.
	UpdateSetting(ctx context.Context, key string, req dto.UpdateSettingRequest, requestingUserID string) (*domain.Setting, error)

	// BulkUpdateSettings upserts several settings in one transaction.
	BulkUpdateSettings(ctx context.Context, req dto.BulkUpdateSettingsRequest, requestingUserID string) ([]domain.Setting, error)
}
