package sequences

import (
	"fmt"

	"github.com/bizgrid/erp_backend/internal/core/domain"
)

// Format renders a document number from its type prefix and counter value,
// e.g. (QUOTATION, 1) -> "SQ-0001". Counters beyond four digits widen
// naturally rather than wrapping.
func Format(docType domain.DocumentType, counter int64) string {
	return fmt.Sprintf("%s-%04d", docType.Prefix(), counter)
}
