package services

import (
	"context"

	"github.com/bizgrid/erp_backend/internal/core/domain"
)

// NumberingSvc issues sequential document numbers such as SQ-0001 and
// SI-0042. Numbers are unique per document type and never reused, even
// when the document they were issued for is later cancelled.
type NumberingSvc interface {
	// NextNumber reserves and formats the next number for a document type.
	NextNumber(ctx context.Context, docType domain.DocumentType) (string, error)
}
