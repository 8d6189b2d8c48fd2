package workflow

import "github.com/bizgrid/erp_backend/internal/core/domain"

// Quotation actions.
const (
	QuotationSend    Action = "send"
	QuotationApprove Action = "approve"
	QuotationReject  Action = "reject"
	QuotationExpire  Action = "expire"
	QuotationConvert Action = "convert" // to invoice, one-way
)

// Invoice actions. Partial/paid are driven by payment recording, not by a
// direct action, so they do not appear here.
const (
	InvoiceSend   Action = "send"
	InvoiceCancel Action = "cancel"
)

// Purchase order actions.
const (
	PurchaseOrderApprove  Action = "approve"
	PurchaseOrderSend     Action = "send"
	PurchaseOrderComplete Action = "complete"
	PurchaseOrderCancel   Action = "cancel"
	PurchaseOrderConvert  Action = "convert" // to goods receipt, one-way
)

// Goods receipt actions.
const (
	GoodsReceiptInspect  Action = "inspect"
	GoodsReceiptApprove  Action = "approve"
	GoodsReceiptReject   Action = "reject"
	GoodsReceiptComplete Action = "complete" // fires the stock update exactly once
)

var allStaff = []domain.Role{domain.RoleAdmin, domain.RoleManager, domain.RoleStaff}
var managers = []domain.Role{domain.RoleAdmin, domain.RoleManager}

// Quotation: draft -> sent -> approved -> rejected|expired, approved -> converted.
// Reject and expire also apply from sent, so a quotation the customer turns
// down never has to pass through approval first.
var Quotation = New("quotation").
	Add(string(domain.QuotationDraft), QuotationSend, string(domain.QuotationSent), allStaff...).
	Add(string(domain.QuotationSent), QuotationApprove, string(domain.QuotationApproved), managers...).
	Add(string(domain.QuotationSent), QuotationReject, string(domain.QuotationRejected), managers...).
	Add(string(domain.QuotationSent), QuotationExpire, string(domain.QuotationExpired), managers...).
	Add(string(domain.QuotationApproved), QuotationReject, string(domain.QuotationRejected), managers...).
	Add(string(domain.QuotationApproved), QuotationExpire, string(domain.QuotationExpired), managers...).
	Add(string(domain.QuotationApproved), QuotationConvert, string(domain.QuotationConverted), managers...)

// Invoice: draft -> sent; cancelled from any non-paid state. The partial and
// paid states are reached through payment recording only.
var Invoice = New("invoice").
	Add(string(domain.InvoiceDraft), InvoiceSend, string(domain.InvoiceSent), allStaff...).
	Add(string(domain.InvoiceDraft), InvoiceCancel, string(domain.InvoiceCancelled), managers...).
	Add(string(domain.InvoiceSent), InvoiceCancel, string(domain.InvoiceCancelled), managers...).
	Add(string(domain.InvoicePartial), InvoiceCancel, string(domain.InvoiceCancelled), managers...)

// PurchaseOrder: draft -> approved -> sent -> completed; cancelled from
// approved/sent; converted from approved/sent (once, guarded by the flag).
var PurchaseOrder = New("purchase order").
	Add(string(domain.PurchaseOrderDraft), PurchaseOrderApprove, string(domain.PurchaseOrderApproved), managers...).
	Add(string(domain.PurchaseOrderApproved), PurchaseOrderSend, string(domain.PurchaseOrderSent), allStaff...).
	Add(string(domain.PurchaseOrderSent), PurchaseOrderComplete, string(domain.PurchaseOrderCompleted), managers...).
	Add(string(domain.PurchaseOrderApproved), PurchaseOrderCancel, string(domain.PurchaseOrderCancelled), managers...).
	Add(string(domain.PurchaseOrderSent), PurchaseOrderCancel, string(domain.PurchaseOrderCancelled), managers...).
	Add(string(domain.PurchaseOrderApproved), PurchaseOrderConvert, string(domain.PurchaseOrderConverted), managers...).
	Add(string(domain.PurchaseOrderSent), PurchaseOrderConvert, string(domain.PurchaseOrderConverted), managers...)

// GoodsReceipt: draft -> inspected -> approved -> completed; rejected from
// draft/inspected.
var GoodsReceipt = New("goods receipt").
	Add(string(domain.GoodsReceiptDraft), GoodsReceiptInspect, string(domain.GoodsReceiptInspected), allStaff...).
	Add(string(domain.GoodsReceiptInspected), GoodsReceiptApprove, string(domain.GoodsReceiptApproved), managers...).
	Add(string(domain.GoodsReceiptDraft), GoodsReceiptReject, string(domain.GoodsReceiptRejected), managers...).
	Add(string(domain.GoodsReceiptInspected), GoodsReceiptReject, string(domain.GoodsReceiptRejected), managers...).
	Add(string(domain.GoodsReceiptApproved), GoodsReceiptComplete, string(domain.GoodsReceiptCompleted), managers...)
