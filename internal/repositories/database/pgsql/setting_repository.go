package pgsql

import (
	"context"
	"errors"

	"github.com/bizgrid/erp_backend/internal/apperrors"
	"github.com/bizgrid/erp_backend/internal/core/domain"
	portsrepo "github.com/bizgrid/erp_backend/internal/core/ports/repositories"
	"github.com/bizgrid/erp_backend/internal/models"
	"github.com/bizgrid/erp_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSettingRepository struct {
	BaseRepository
}

// newPgxSettingRepository creates a new repository for application settings.
func newPgxSettingRepository(pool *pgxpool.Pool) portsrepo.SettingRepositoryFacade {
	return &PgxSettingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxSettingRepository implements portsrepo.SettingRepositoryFacade
var _ portsrepo.SettingRepositoryFacade = (*PgxSettingRepository)(nil)

const settingColumns = `key, value, created_at, created_by, last_updated_at, last_updated_by`

func scanSetting(row pgx.Row) (models.Setting, error) {
	var m models.Setting
	err := row.Scan(
		&m.Key,
		&m.Value,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// UpsertSetting inserts or replaces a setting value by key.
func (r *PgxSettingRepository) UpsertSetting(ctx context.Context, setting domain.Setting) error {
	m := mapping.ToModelSetting(setting)
	query := `
		INSERT INTO settings (` + settingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, last_updated_at = EXCLUDED.last_updated_at, last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.Key, m.Value, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to upsert setting "+m.Key, err)
	}
	return nil
}

// FindSettingByKey retrieves a single setting by key.
func (r *PgxSettingRepository) FindSettingByKey(ctx context.Context, key string) (*domain.Setting, error) {
	query := `SELECT ` + settingColumns + ` FROM settings WHERE key = $1;`
	m, err := scanSetting(r.Pool.QueryRow(ctx, query, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to query setting "+key, err)
	}
	setting := mapping.ToDomainSetting(m)
	return &setting, nil
}

// ListSettings retrieves all settings ordered by key.
func (r *PgxSettingRepository) ListSettings(ctx context.Context) ([]domain.Setting, error) {
	query := `SELECT ` + settingColumns + ` FROM settings ORDER BY key ASC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query settings", err)
	}
	defer rows.Close()

	var settings []domain.Setting
	for rows.Next() {
		m, err := scanSetting(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan setting row", err)
		}
		settings = append(settings, mapping.ToDomainSetting(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating setting rows", err)
	}
	return settings, nil
}
