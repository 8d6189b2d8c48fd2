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
	"github.com/shopspring/decimal"
)

type PgxStockRepository struct {
	BaseRepository
}

// newPgxStockRepository creates a new repository for stock level data.
func newPgxStockRepository(pool *pgxpool.Pool) portsrepo.StockRepositoryFacade {
	return &PgxStockRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxStockRepository implements portsrepo.StockRepositoryFacade
var _ portsrepo.StockRepositoryFacade = (*PgxStockRepository)(nil)

const stockLevelColumns = `product_id, location_id, quantity, created_at, created_by, last_updated_at, last_updated_by`

func scanStockLevel(row pgx.Row) (models.StockLevel, error) {
	var m models.StockLevel
	err := row.Scan(
		&m.ProductID,
		&m.LocationID,
		&m.Quantity,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindStockLevel retrieves the stock level of a product at a location.
func (r *PgxStockRepository) FindStockLevel(ctx context.Context, productID, locationID string) (*domain.StockLevel, error) {
	query := `SELECT ` + stockLevelColumns + ` FROM stock_levels WHERE product_id = $1 AND location_id = $2;`
	m, err := scanStockLevel(r.Pool.QueryRow(ctx, query, productID, locationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to query stock level for product "+productID, err)
	}
	level := mapping.ToDomainStockLevel(m)
	return &level, nil
}

// ListStockLevels retrieves stock levels filtered by an optional product,
// newest first, using keyset pagination on (created_at, product_id).
func (r *PgxStockRepository) ListStockLevels(ctx context.Context, productID string, limit int, nextToken *string) ([]domain.StockLevel, *string, error) {
	query := `SELECT ` + stockLevelColumns + ` FROM stock_levels WHERE 1=1`
	args := []any{}
	argIdx := 1

	if productID != "" {
		query += ` AND product_id = $` + strconv.Itoa(argIdx)
		args = append(args, productID)
		argIdx++
	}
	if nextToken != nil && *nextToken != "" {
		createdAt, id, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.ErrValidation
		}
		query += ` AND (created_at, product_id) < ($` + strconv.Itoa(argIdx) + `, $` + strconv.Itoa(argIdx+1) + `)`
		args = append(args, createdAt, id)
		argIdx += 2
	}
	query += ` ORDER BY created_at DESC, product_id DESC LIMIT $` + strconv.Itoa(argIdx) + `;`
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query stock levels", err)
	}
	defer rows.Close()

	var levels []domain.StockLevel
	for rows.Next() {
		m, err := scanStockLevel(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan stock level row", err)
		}
		levels = append(levels, mapping.ToDomainStockLevel(m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating stock level rows", err)
	}

	var newNextToken *string
	if len(levels) > limit {
		levels = levels[:limit]
		last := levels[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.ProductID)
		newNextToken = &token
	}
	return levels, newNextToken, nil
}

// AdjustStock applies a signed delta to the stock level of a product at a
// location, creating the row if it does not exist. The upsert takes a row
// lock so concurrent adjustments serialize.
func (r *PgxStockRepository) AdjustStock(ctx context.Context, productID, locationID string, delta decimal.Decimal, userID string, now time.Time) error {
	query := `
		INSERT INTO stock_levels (product_id, location_id, quantity, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $4, $5)
		ON CONFLICT (product_id, location_id)
		DO UPDATE SET quantity = stock_levels.quantity + EXCLUDED.quantity, last_updated_at = EXCLUDED.last_updated_at, last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query, productID, locationID, delta, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to adjust stock for product "+productID, err)
	}
	return nil
}
