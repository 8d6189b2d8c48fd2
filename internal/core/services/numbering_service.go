package services

import (
	"context"
	"fmt"

	"github.com/bizgrid/erp_backend/internal/apperrors"
	"github.com/bizgrid/erp_backend/internal/core/domain"
	portsrepo "github.com/bizgrid/erp_backend/internal/core/ports/repositories"
	"github.com/bizgrid/erp_backend/internal/utils/sequences"
)

// NumberingService hands out formatted document numbers backed by the
// per-type counters. Counters only ever move forward, so a number consumed by
// a later-cancelled document leaves a visible gap rather than being reissued.
type NumberingService struct {
	sequenceRepo portsrepo.SequenceRepositoryFacade
}

func NewNumberingService(repo portsrepo.SequenceRepositoryFacade) *NumberingService {
	return &NumberingService{sequenceRepo: repo}
}

func (s *NumberingService) NextNumber(ctx context.Context, docType domain.DocumentType) (string, error) {
	if !docType.IsValid() {
		return "", fmt.Errorf("%w: unknown document type %s", apperrors.ErrValidation, docType)
	}
	counter, err := s.sequenceRepo.NextCounter(ctx, docType)
	if err != nil {
		return "", fmt.Errorf("failed to allocate %s number: %w", docType, err)
	}
	return sequences.Format(docType, counter), nil
}
