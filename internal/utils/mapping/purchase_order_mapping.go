package mapping

import (
	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/bizgrid/erp_backend/internal/models"
)

// ToModelPurchaseOrder converts a domain PurchaseOrder to a model header row.
func ToModelPurchaseOrder(d domain.PurchaseOrder) models.PurchaseOrder {
	return models.PurchaseOrder{
		PurchaseOrderID:        d.PurchaseOrderID,
		Number:                 d.Number,
		SupplierID:             d.SupplierID,
		OrderDate:              d.OrderDate,
		ExpectedDate:           timePtr(d.ExpectedDate),
		LocationID:             d.LocationID,
		OverallDiscountPercent: d.OverallDiscountPercent,
		Subtotal:               d.Subtotal,
		DiscountAmount:         d.DiscountAmount,
		TaxAmount:              d.TaxAmount,
		Total:                  d.Total,
		Status:                 string(d.Status),
		ConvertedToGRN:         d.ConvertedToGRN,
		GoodsReceiptID:         strPtr(d.GoodsReceiptID),
		Notes:                  d.Notes,
		AuditFields:            ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPurchaseOrder converts a model header row plus its item and tax
// rows to a domain PurchaseOrder.
func ToDomainPurchaseOrder(m models.PurchaseOrder, items []models.DocumentItem, taxes []models.DocumentTax) domain.PurchaseOrder {
	return domain.PurchaseOrder{
		PurchaseOrderID:        m.PurchaseOrderID,
		Number:                 m.Number,
		SupplierID:             m.SupplierID,
		OrderDate:              m.OrderDate,
		ExpectedDate:           timeVal(m.ExpectedDate),
		LocationID:             m.LocationID,
		Items:                  ToDomainLineItems(items),
		OverallDiscountPercent: m.OverallDiscountPercent,
		AppliedTaxes:           ToDomainAppliedTaxes(taxes),
		TotalsSnapshot: domain.TotalsSnapshot{
			Subtotal:       m.Subtotal,
			DiscountAmount: m.DiscountAmount,
			TaxAmount:      m.TaxAmount,
			Total:          m.Total,
		},
		Status:         domain.PurchaseOrderStatus(m.Status),
		ConvertedToGRN: m.ConvertedToGRN,
		GoodsReceiptID: strVal(m.GoodsReceiptID),
		Notes:          m.Notes,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
