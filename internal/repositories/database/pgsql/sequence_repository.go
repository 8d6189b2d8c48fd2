package pgsql

import (
	"context"

	"github.com/bizgrid/erp_backend/internal/apperrors"
	"github.com/bizgrid/erp_backend/internal/core/domain"
	portsrepo "github.com/bizgrid/erp_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSequenceRepository struct {
	BaseRepository
}

// newPgxSequenceRepository creates a new repository for document number counters.
func newPgxSequenceRepository(pool *pgxpool.Pool) portsrepo.SequenceRepositoryFacade {
	return &PgxSequenceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxSequenceRepository implements portsrepo.SequenceRepositoryFacade
var _ portsrepo.SequenceRepositoryFacade = (*PgxSequenceRepository)(nil)

// NextCounter increments and returns the counter for the document type. The
// upsert takes a row lock for the duration of the statement, so concurrent
// creates are serialized and can never be handed the same number.
func (r *PgxSequenceRepository) NextCounter(ctx context.Context, docType domain.DocumentType) (int64, error) {
	query := `
		INSERT INTO document_sequences (doc_type, counter)
		VALUES ($1, 1)
		ON CONFLICT (doc_type)
		DO UPDATE SET counter = document_sequences.counter + 1
		RETURNING counter;
	`
	var counter int64
	if err := r.Pool.QueryRow(ctx, query, string(docType)).Scan(&counter); err != nil {
		return 0, apperrors.NewAppError(500, "failed to allocate counter for "+string(docType), err)
	}
	return counter, nil
}
