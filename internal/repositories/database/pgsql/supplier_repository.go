package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/bizgrid/erp_backend/internal/apperrors"
	"github.com/bizgrid/erp_backend/internal/core/domain"
	portsrepo "github.com/bizgrid/erp_backend/internal/core/ports/repositories"
	"github.com/bizgrid/erp_backend/internal/models"
	"github.com/bizgrid/erp_backend/internal/utils/mapping"
	"github.com/bizgrid/erp_backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSupplierRepository struct {
	BaseRepository
}

// newPgxSupplierRepository creates a new repository for supplier data.
func newPgxSupplierRepository(pool *pgxpool.Pool) portsrepo.SupplierRepositoryFacade {
	return &PgxSupplierRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxSupplierRepository implements portsrepo.SupplierRepositoryFacade
var _ portsrepo.SupplierRepositoryFacade = (*PgxSupplierRepository)(nil)

const supplierColumns = `supplier_id, name, email, phone, address, tax_number, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanSupplier(row pgx.Row) (models.Supplier, error) {
	var m models.Supplier
	err := row.Scan(
		&m.SupplierID,
		&m.Name,
		&m.Email,
		&m.Phone,
		&m.Address,
		&m.TaxNumber,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveSupplier inserts a new supplier row.
func (r *PgxSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	m := mapping.ToModelSupplier(supplier)
	query := `
		INSERT INTO suppliers (` + supplierColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.SupplierID, m.Name, m.Email, m.Phone, m.Address, m.TaxNumber, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert supplier "+m.SupplierID, err)
	}
	return nil
}

// FindSupplierByID retrieves a single supplier by ID.
func (r *PgxSupplierRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE supplier_id = $1;`
	m, err := scanSupplier(r.Pool.QueryRow(ctx, query, supplierID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to query supplier "+supplierID, err)
	}
	supplier := mapping.ToDomainSupplier(m)
	return &supplier, nil
}

// ListSuppliers retrieves active suppliers filtered by an optional name
// search, newest first, using keyset pagination on (created_at, supplier_id).
func (r *PgxSupplierRepository) ListSuppliers(ctx context.Context, search string, limit int, nextToken *string) ([]domain.Supplier, *string, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE is_active = TRUE`
	args := []any{}
	argIdx := 1

	if search != "" {
		query += ` AND name ILIKE '%' || $` + strconv.Itoa(argIdx) + ` || '%'`
		args = append(args, search)
		argIdx++
	}
	if nextToken != nil && *nextToken != "" {
		createdAt, id, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.ErrValidation
		}
		query += ` AND (created_at, supplier_id) < ($` + strconv.Itoa(argIdx) + `, $` + strconv.Itoa(argIdx+1) + `)`
		args = append(args, createdAt, id)
		argIdx += 2
	}
	query += ` ORDER BY created_at DESC, supplier_id DESC LIMIT $` + strconv.Itoa(argIdx) + `;`
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query suppliers", err)
	}
	defer rows.Close()

	var suppliers []domain.Supplier
	for rows.Next() {
		m, err := scanSupplier(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan supplier row", err)
		}
		suppliers = append(suppliers, mapping.ToDomainSupplier(m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating supplier rows", err)
	}

	var newNextToken *string
	if len(suppliers) > limit {
		suppliers = suppliers[:limit]
		last := suppliers[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.SupplierID)
		newNextToken = &token
	}
	return suppliers, newNextToken, nil
}

// UpdateSupplier updates an existing supplier row.
func (r *PgxSupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	m := mapping.ToModelSupplier(supplier)
	query := `
		UPDATE suppliers
		SET name = $2, email = $3, phone = $4, address = $5, tax_number = $6, is_active = $7,
			last_updated_at = $8, last_updated_by = $9
		WHERE supplier_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.SupplierID, m.Name, m.Email, m.Phone, m.Address, m.TaxNumber, m.IsActive,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update supplier "+m.SupplierID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateSupplier soft-deletes a supplier.
func (r *PgxSupplierRepository) DeactivateSupplier(ctx context.Context, supplierID string, userID string, now time.Time) error {
	query := `
		UPDATE suppliers
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE supplier_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, supplierID, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to deactivate supplier "+supplierID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
