package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ronaldocristover/arisan-backend/internal/apperrors"
	"github.com/ronaldocristover/arisan-backend/internal/core/domain"
	portsrepo "github.com/ronaldocristover/arisan-backend/internal/core/ports/repositories"
	"github.com/ronaldocristover/arisan-backend/internal/models"
	"github.com/ronaldocristover/arisan-backend/internal/utils/mapping"
)

const settingColumns = `setting_key, setting_value, created_at, created_by, last_updated_at, last_updated_by`

const upsertSettingQuery = `
	INSERT INTO settings (` + settingColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (setting_key) DO UPDATE SET
		setting_value = EXCLUDED.setting_value,
		last_updated_at = EXCLUDED.last_updated_at,
		last_updated_by = EXCLUDED.last_updated_by;
`

type PgxSettingRepository struct {
	BaseRepository
}

// newPgxSettingRepository creates a new repository for the settings store.
func newPgxSettingRepository(pool *pgxpool.Pool) portsrepo.SettingRepositoryFacade {
	return &PgxSettingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SettingRepositoryFacade = (*PgxSettingRepository)(nil)

func scanSetting(row pgx.CollectableRow) (models.Setting, error) {
	var s models.Setting
	err := row.Scan(
		&s.Key,
		&s.Value,
		&s.CreatedAt,
		&s.CreatedBy,
		&s.LastUpdatedAt,
		&s.LastUpdatedBy,
	)
	return s, err
}

func (r *PgxSettingRepository) FindSettingByKey(ctx context.Context, key string) (*domain.Setting, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+settingColumns+` FROM settings WHERE setting_key = $1;`, key)
	if err != nil {
		return nil, fmt.Errorf("failed to query setting: %w", err)
	}

	modelSetting, err := pgx.CollectOneRow(rows, scanSetting)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan setting: %w", err)
	}

	domainSetting := mapping.ToDomainSetting(modelSetting)
	return &domainSetting, nil
}

func (r *PgxSettingRepository) ListSettings(ctx context.Context) ([]domain.Setting, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+settingColumns+` FROM settings ORDER BY setting_key;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}

	modelSettings, err := pgx.CollectRows(rows, scanSetting)
	if err != nil {
		return nil, fmt.Errorf("failed to scan settings: %w", err)
	}

	settings := make([]domain.Setting, 0, len(modelSettings))
	for _, m := range modelSettings {
		settings = append(settings, mapping.ToDomainSetting(m))
	}
	return settings, nil
}

func (r *PgxSettingRepository) UpsertSetting(ctx context.Context, setting domain.Setting) error {
	s := mapping.ToModelSetting(setting)

	_, err := r.Pool.Exec(ctx, upsertSettingQuery,
		s.Key, s.Value, s.CreatedAt, s.CreatedBy, s.LastUpdatedAt, s.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert setting %s: %w", s.Key, err)
	}
	return nil
}

func (r *PgxSettingRepository) UpsertSettings(ctx context.Context, settings []domain.Setting) error {
	if len(settings) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	for _, setting := range settings {
		s := mapping.ToModelSetting(setting)
		if _, err := tx.Exec(ctx, upsertSettingQuery,
			s.Key, s.Value, s.CreatedAt, s.CreatedBy, s.LastUpdatedAt, s.LastUpdatedBy,
		); err != nil {
			return fmt.Errorf("failed to upsert setting %s: %w", s.Key, err)
		}
	}

	return r.Commit(ctx, tx)
}
