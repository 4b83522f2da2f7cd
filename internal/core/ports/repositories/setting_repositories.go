package repositories

import (
	"context"

	"github.com/ronaldocristover/arisan-backend/internal/core/domain"
)

// SettingRepositoryFacade defines all operations for the key-value settings store
type SettingRepositoryFacade interface {
	// FindSettingByKey retrieves a single setting row.
	FindSettingByKey(ctx context.Context, key string) (*domain.Setting, error)

	// ListSettings retrieves every setting row.
	ListSettings(ctx context.Context) ([]domain.Setting, error)

	// UpsertSetting inserts or replaces one setting.
	UpsertSetting(ctx context.Context, setting domain.Setting) error

	// UpsertSettings inserts or replaces several settings in one transaction.
	UpsertSettings(ctx context.Context, settings []domain.Setting) error
}
