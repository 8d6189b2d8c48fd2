package domain

// DocumentType identifies a numbered commercial document family. Each type
// owns a monotonically increasing counter; numbers are never reused.
type DocumentType string

const (
	DocTypeQuotation     DocumentType = "QUOTATION"
	DocTypeInvoice       DocumentType = "INVOICE"
	DocTypePurchaseOrder DocumentType = "PURCHASE_ORDER"
	DocTypeGoodsReceipt  DocumentType = "GOODS_RECEIPT"
	DocTypePayment       DocumentType = "PAYMENT"
)

// Prefix returns the document-number prefix for the type.
func (t DocumentType) Prefix() string {
	switch t {
	case DocTypeQuotation:
		return "SQ"
	case DocTypeInvoice:
		return "SI"
	case DocTypePurchaseOrder:
		return "PO"
	case DocTypeGoodsReceipt:
		return "GRN"
	case DocTypePayment:
		return "PAY"
	}
	return ""
}

// IsValid checks if the document type is known.
func (t DocumentType) IsValid() bool {
	return t.Prefix() != ""
}
