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

type PgxCustomerRepository struct {
	BaseRepository
}

// newPgxCustomerRepository creates a new repository for customer data.
func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxCustomerRepository implements portsrepo.CustomerRepositoryFacade
var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

const customerColumns = `customer_id, name, email, phone, address, tax_number, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanCustomer(row pgx.Row) (models.Customer, error) {
	var m models.Customer
	err := row.Scan(
		&m.CustomerID,
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

// SaveCustomer inserts a new customer row.
func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CustomerID, m.Name, m.Email, m.Phone, m.Address, m.TaxNumber, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert customer "+m.CustomerID, err)
	}
	return nil
}

// FindCustomerByID retrieves a single customer by ID.
func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE customer_id = $1;`
	m, err := scanCustomer(r.Pool.QueryRow(ctx, query, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to query customer "+customerID, err)
	}
	customer := mapping.ToDomainCustomer(m)
	return &customer, nil
}

// ListCustomers retrieves active customers filtered by an optional name
// search, newest first, using keyset pagination on (created_at, customer_id).
func (r *PgxCustomerRepository) ListCustomers(ctx context.Context, search string, limit int, nextToken *string) ([]domain.Customer, *string, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE is_active = TRUE`
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
		query += ` AND (created_at, customer_id) < ($` + strconv.Itoa(argIdx) + `, $` + strconv.Itoa(argIdx+1) + `)`
		args = append(args, createdAt, id)
		argIdx += 2
	}
	query += ` ORDER BY created_at DESC, customer_id DESC LIMIT $` + strconv.Itoa(argIdx) + `;`
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query customers", err)
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		m, err := scanCustomer(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan customer row", err)
		}
		customers = append(customers, mapping.ToDomainCustomer(m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating customer rows", err)
	}

	var newNextToken *string
	if len(customers) > limit {
		customers = customers[:limit]
		last := customers[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.CustomerID)
		newNextToken = &token
	}
	return customers, newNextToken, nil
}

// UpdateCustomer updates an existing customer row.
func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)
	query := `
		UPDATE customers
		SET name = $2, email = $3, phone = $4, address = $5, tax_number = $6, is_active = $7,
			last_updated_at = $8, last_updated_by = $9
		WHERE customer_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.CustomerID, m.Name, m.Email, m.Phone, m.Address, m.TaxNumber, m.IsActive,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update customer "+m.CustomerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateCustomer soft-deletes a customer.
func (r *PgxCustomerRepository) DeactivateCustomer(ctx context.Context, customerID string, userID string, now time.Time) error {
	query := `
		UPDATE customers
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE customer_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, customerID, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to deactivate customer "+customerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
