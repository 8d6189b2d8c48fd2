package sequences

import (
	"testing"

	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "SQ-0001", Format(domain.DocTypeQuotation, 1))
	assert.Equal(t, "SI-0042", Format(domain.DocTypeInvoice, 42))
	assert.Equal(t, "PO-0999", Format(domain.DocTypePurchaseOrder, 999))
	assert.Equal(t, "GRN-0007", Format(domain.DocTypeGoodsReceipt, 7))
	assert.Equal(t, "PAY-0003", Format(domain.DocTypePayment, 3))
}

func TestFormatWidensBeyondFourDigits(t *testing.T) {
	assert.Equal(t, "SI-10001", Format(domain.DocTypeInvoice, 10001))
}
