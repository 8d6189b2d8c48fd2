package workflow

import (
	"testing"

	"github.com/bizgrid/erp_backend/internal/apperrors"
	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuotationHappyPath(t *testing.T) {
	status := string(domain.QuotationDraft)

	status, err := Quotation.Next(status, QuotationSend, domain.RoleStaff)
	require.NoError(t, err)
	assert.Equal(t, string(domain.QuotationSent), status)

	status, err = Quotation.Next(status, QuotationApprove, domain.RoleManager)
	require.NoError(t, err)
	assert.Equal(t, string(domain.QuotationApproved), status)

	status, err = Quotation.Next(status, QuotationConvert, domain.RoleManager)
	require.NoError(t, err)
	assert.Equal(t, string(domain.QuotationConverted), status)
}

func TestQuotationApprovedOutcomes(t *testing.T) {
	// An approved quotation can still be rejected or expired by a manager,
	// not just converted.
	status, err := Quotation.Next(string(domain.QuotationApproved), QuotationReject, domain.RoleManager)
	require.NoError(t, err)
	assert.Equal(t, string(domain.QuotationRejected), status)

	status, err = Quotation.Next(string(domain.QuotationApproved), QuotationExpire, domain.RoleManager)
	require.NoError(t, err)
	assert.Equal(t, string(domain.QuotationExpired), status)
}

func TestQuotationIllegalTransitions(t *testing.T) {
	// Cannot approve a draft; it must be sent first.
	_, err := Quotation.Next(string(domain.QuotationDraft), QuotationApprove, domain.RoleAdmin)
	assert.ErrorIs(t, err, ErrTransitionNotAllowed)
	assert.ErrorIs(t, err, apperrors.ErrPrecondition)

	// Converted is terminal.
	for _, action := range []Action{QuotationSend, QuotationApprove, QuotationReject, QuotationExpire, QuotationConvert} {
		_, err := Quotation.Next(string(domain.QuotationConverted), action, domain.RoleAdmin)
		assert.ErrorIs(t, err, ErrTransitionNotAllowed, "converted quotation must not allow %s", action)
	}
}

func TestQuotationRoleWhitelist(t *testing.T) {
	// Staff may send but not approve.
	_, err := Quotation.Next(string(domain.QuotationDraft), QuotationSend, domain.RoleStaff)
	assert.NoError(t, err)

	_, err = Quotation.Next(string(domain.QuotationSent), QuotationApprove, domain.RoleStaff)
	assert.ErrorIs(t, err, ErrRoleNotAllowed)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	// Read-only users get nothing.
	_, err = Quotation.Next(string(domain.QuotationDraft), QuotationSend, domain.RoleReadOnly)
	assert.ErrorIs(t, err, ErrRoleNotAllowed)
}

func TestInvoiceCancellation(t *testing.T) {
	for _, from := range []domain.InvoiceStatus{domain.InvoiceDraft, domain.InvoiceSent, domain.InvoicePartial} {
		status, err := Invoice.Next(string(from), InvoiceCancel, domain.RoleManager)
		require.NoError(t, err, "cancel from %s", from)
		assert.Equal(t, string(domain.InvoiceCancelled), status)
	}

	// A fully paid invoice cannot be cancelled.
	_, err := Invoice.Next(string(domain.InvoicePaid), InvoiceCancel, domain.RoleAdmin)
	assert.ErrorIs(t, err, ErrTransitionNotAllowed)
}

func TestPurchaseOrderConversionStates(t *testing.T) {
	// Convert is allowed from approved and sent, nothing else.
	for _, from := range []domain.PurchaseOrderStatus{domain.PurchaseOrderApproved, domain.PurchaseOrderSent} {
		status, err := PurchaseOrder.Next(string(from), PurchaseOrderConvert, domain.RoleManager)
		require.NoError(t, err, "convert from %s", from)
		assert.Equal(t, string(domain.PurchaseOrderConverted), status)
	}
	for _, from := range []domain.PurchaseOrderStatus{domain.PurchaseOrderDraft, domain.PurchaseOrderCompleted, domain.PurchaseOrderCancelled, domain.PurchaseOrderConverted} {
		_, err := PurchaseOrder.Next(string(from), PurchaseOrderConvert, domain.RoleManager)
		assert.ErrorIs(t, err, ErrTransitionNotAllowed, "convert from %s must fail", from)
	}
}

func TestGoodsReceiptLifecycle(t *testing.T) {
	status := string(domain.GoodsReceiptDraft)

	status, err := GoodsReceipt.Next(status, GoodsReceiptInspect, domain.RoleStaff)
	require.NoError(t, err)
	assert.Equal(t, string(domain.GoodsReceiptInspected), status)

	status, err = GoodsReceipt.Next(status, GoodsReceiptApprove, domain.RoleManager)
	require.NoError(t, err)
	assert.Equal(t, string(domain.GoodsReceiptApproved), status)

	status, err = GoodsReceipt.Next(status, GoodsReceiptComplete, domain.RoleManager)
	require.NoError(t, err)
	assert.Equal(t, string(domain.GoodsReceiptCompleted), status)

	// Completed is terminal.
	_, err = GoodsReceipt.Next(status, GoodsReceiptComplete, domain.RoleAdmin)
	assert.ErrorIs(t, err, ErrTransitionNotAllowed)
}

func TestActions(t *testing.T) {
	actions := Quotation.Actions(string(domain.QuotationSent), domain.RoleManager)
	assert.ElementsMatch(t, []Action{QuotationApprove, QuotationReject, QuotationExpire}, actions)

	// Staff see nothing actionable on a sent quotation.
	assert.Empty(t, Quotation.Actions(string(domain.QuotationSent), domain.RoleStaff))

	// Unknown state yields no actions rather than an error.
	assert.Empty(t, Quotation.Actions("BOGUS", domain.RoleAdmin))
}

func TestCan(t *testing.T) {
	assert.True(t, Invoice.Can(string(domain.InvoiceDraft), InvoiceSend, domain.RoleStaff))
	assert.False(t, Invoice.Can(string(domain.InvoiceDraft), InvoiceSend, domain.RoleReadOnly))
	assert.False(t, Invoice.Can(string(domain.InvoicePaid), InvoiceSend, domain.RoleAdmin))
}
