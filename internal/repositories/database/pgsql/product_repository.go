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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolationCode is the PostgreSQL error code for unique constraint violations.
const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

type PgxProductRepository struct {
	BaseRepository
}

// newPgxProductRepository creates a new repository for product data.
func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxProductRepository implements portsrepo.ProductRepositoryFacade
var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

const productColumns = `product_id, sku, name, description, unit, unit_price, cost_price, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanProduct(row pgx.Row) (models.Product, error) {
	var m models.Product
	err := row.Scan(
		&m.ProductID,
		&m.SKU,
		&m.Name,
		&m.Description,
		&m.Unit,
		&m.UnitPrice,
		&m.CostPrice,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveProduct inserts a new product row. A duplicate SKU maps to ErrDuplicate.
func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ProductID, m.SKU, m.Name, m.Description, m.Unit, m.UnitPrice, m.CostPrice, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert product "+m.ProductID, err)
	}
	return nil
}

// FindProductByID retrieves a single product by ID.
func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1;`
	m, err := scanProduct(r.Pool.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to query product "+productID, err)
	}
	product := mapping.ToDomainProduct(m)
	return &product, nil
}

// FindProductsByIDs retrieves products by IDs, keyed by ID. Missing IDs are
// simply absent from the result.
func (r *PgxProductRepository) FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error) {
	if len(productIDs) == 0 {
		return map[string]domain.Product{}, nil
	}
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, productIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query products by IDs", err)
	}
	defer rows.Close()

	result := make(map[string]domain.Product, len(productIDs))
	for rows.Next() {
		m, err := scanProduct(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan product row", err)
		}
		result[m.ProductID] = mapping.ToDomainProduct(m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating product rows", err)
	}
	return result, nil
}

// ListProducts retrieves active products filtered by an optional name/SKU
// search, newest first, using keyset pagination.
func (r *PgxProductRepository) ListProducts(ctx context.Context, search string, limit int, nextToken *string) ([]domain.Product, *string, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE is_active = TRUE`
	args := []any{}
	argIdx := 1

	if search != "" {
		query += ` AND (name ILIKE '%' || $` + strconv.Itoa(argIdx) + ` || '%' OR sku ILIKE '%' || $` + strconv.Itoa(argIdx) + ` || '%')`
		args = append(args, search)
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
		return nil, nil, apperrors.NewAppError(500, "failed to query products", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		m, err := scanProduct(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan product row", err)
		}
		products = append(products, mapping.ToDomainProduct(m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating product rows", err)
	}

	var newNextToken *string
	if len(products) > limit {
		products = products[:limit]
		last := products[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.ProductID)
		newNextToken = &token
	}
	return products, newNextToken, nil
}

// UpdateProduct updates an existing product row.
func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	query := `
		UPDATE products
		SET sku = $2, name = $3, description = $4, unit = $5, unit_price = $6, cost_price = $7, is_active = $8,
			last_updated_at = $9, last_updated_by = $10
		WHERE product_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ProductID, m.SKU, m.Name, m.Description, m.Unit, m.UnitPrice, m.CostPrice, m.IsActive,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to update product "+m.ProductID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateProduct soft-deletes a product.
func (r *PgxProductRepository) DeactivateProduct(ctx context.Context, productID string, userID string, now time.Time) error {
	query := `
		UPDATE products
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE product_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, productID, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to deactivate product "+productID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
