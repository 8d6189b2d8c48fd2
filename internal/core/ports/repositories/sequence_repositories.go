package repositories

import (
	"context"

	"github.com/bizgrid/erp_backend/internal/core/domain"
)

// SequenceRepositoryFacade owns the per-document-type counters.
type SequenceRepositoryFacade interface {
	// NextCounter increments and returns the counter for the document type.
	// The row is locked for the duration of the allocation so concurrent
	// creates can never be handed the same number.
	NextCounter(ctx context.Context, docType domain.DocumentType) (int64, error)
}
