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

type PgxTaxRateRepository struct {
	BaseRepository
}

// newPgxTaxRateRepository creates a new repository for tax rate data.
func newPgxTaxRateRepository(pool *pgxpool.Pool) portsrepo.TaxRateRepositoryFacade {
	return &PgxTaxRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxTaxRateRepository implements portsrepo.TaxRateRepositoryFacade
var _ portsrepo.TaxRateRepositoryFacade = (*PgxTaxRateRepository)(nil)

const taxRateColumns = `tax_rate_id, name, value, enabled, is_default, created_at, created_by, last_updated_at, last_updated_by`

func scanTaxRate(row pgx.Row) (models.TaxRate, error) {
	var m models.TaxRate
	err := row.Scan(
		&m.TaxRateID,
		&m.Name,
		&m.Value,
		&m.Enabled,
		&m.IsDefault,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveTaxRate inserts a new tax rate row.
func (r *PgxTaxRateRepository) SaveTaxRate(ctx context.Context, taxRate domain.TaxRate) error {
	m := mapping.ToModelTaxRate(taxRate)
	query := `
		INSERT INTO tax_rates (` + taxRateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TaxRateID, m.Name, m.Value, m.Enabled, m.IsDefault,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert tax rate "+m.TaxRateID, err)
	}
	return nil
}

// FindTaxRateByID retrieves a single tax rate by ID.
func (r *PgxTaxRateRepository) FindTaxRateByID(ctx context.Context, taxRateID string) (*domain.TaxRate, error) {
	query := `SELECT ` + taxRateColumns + ` FROM tax_rates WHERE tax_rate_id = $1;`
	m, err := scanTaxRate(r.Pool.QueryRow(ctx, query, taxRateID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to query tax rate "+taxRateID, err)
	}
	taxRate := mapping.ToDomainTaxRate(m)
	return &taxRate, nil
}

// FindTaxRatesByIDs retrieves tax rates by IDs, keyed by ID.
func (r *PgxTaxRateRepository) FindTaxRatesByIDs(ctx context.Context, taxRateIDs []string) (map[string]domain.TaxRate, error) {
	if len(taxRateIDs) == 0 {
		return map[string]domain.TaxRate{}, nil
	}
	query := `SELECT ` + taxRateColumns + ` FROM tax_rates WHERE tax_rate_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, taxRateIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query tax rates by IDs", err)
	}
	defer rows.Close()

	result := make(map[string]domain.TaxRate, len(taxRateIDs))
	for rows.Next() {
		m, err := scanTaxRate(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan tax rate row", err)
		}
		result[m.TaxRateID] = mapping.ToDomainTaxRate(m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating tax rate rows", err)
	}
	return result, nil
}

// ListTaxRates retrieves all tax rates, or only enabled ones. Tax rate lists
// are small so no pagination is applied.
func (r *PgxTaxRateRepository) ListTaxRates(ctx context.Context, onlyEnabled bool) ([]domain.TaxRate, error) {
	query := `SELECT ` + taxRateColumns + ` FROM tax_rates`
	if onlyEnabled {
		query += ` WHERE enabled = TRUE`
	}
	query += ` ORDER BY name ASC;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query tax rates", err)
	}
	defer rows.Close()

	var taxRates []domain.TaxRate
	for rows.Next() {
		m, err := scanTaxRate(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan tax rate row", err)
		}
		taxRates = append(taxRates, mapping.ToDomainTaxRate(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating tax rate rows", err)
	}
	return taxRates, nil
}

// UpdateTaxRate updates an existing tax rate row. Documents keep their own
// snapshots, so editing a rate never touches historical documents.
func (r *PgxTaxRateRepository) UpdateTaxRate(ctx context.Context, taxRate domain.TaxRate) error {
	m := mapping.ToModelTaxRate(taxRate)
	query := `
		UPDATE tax_rates
		SET name = $2, value = $3, enabled = $4, is_default = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE tax_rate_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.TaxRateID, m.Name, m.Value, m.Enabled, m.IsDefault,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update tax rate "+m.TaxRateID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
