package mapping

import (
	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/bizgrid/erp_backend/internal/models"
)

// ToModelGoodsReceipt converts a domain GoodsReceipt to a model header row.
func ToModelGoodsReceipt(d domain.GoodsReceipt) models.GoodsReceipt {
	return models.GoodsReceipt{
		GoodsReceiptID:  d.GoodsReceiptID,
		Number:          d.Number,
		SupplierID:      d.SupplierID,
		PurchaseOrderID: strPtr(d.PurchaseOrderID),
		LocationID:      d.LocationID,
		ReceiptDate:     d.ReceiptDate,
		Status:          string(d.Status),
		StockUpdated:    d.StockUpdated,
		Notes:           d.Notes,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToModelGoodsReceiptItems converts receipt lines to model rows for the
// given parent receipt, assigning positions from slice order.
func ToModelGoodsReceiptItems(goodsReceiptID string, items []domain.GoodsReceiptItem) []models.GoodsReceiptItem {
	rows := make([]models.GoodsReceiptItem, 0, len(items))
	for i, it := range items {
		rows = append(rows, models.GoodsReceiptItem{
			GoodsReceiptItemID: it.GoodsReceiptItemID,
			GoodsReceiptID:     goodsReceiptID,
			ProductID:          strPtr(it.ProductID),
			Description:        it.Description,
			OrderedQuantity:    it.OrderedQuantity,
			ReceivedQuantity:   it.ReceivedQuantity,
			AcceptedQuantity:   it.AcceptedQuantity,
			UnitCost:           it.UnitCost,
			Position:           i,
		})
	}
	return rows
}

// ToDomainGoodsReceipt converts a model header row plus its item rows to a
// domain GoodsReceipt.
func ToDomainGoodsReceipt(m models.GoodsReceipt, items []models.GoodsReceiptItem) domain.GoodsReceipt {
	domainItems := make([]domain.GoodsReceiptItem, 0, len(items))
	for _, r := range items {
		domainItems = append(domainItems, domain.GoodsReceiptItem{
			GoodsReceiptItemID: r.GoodsReceiptItemID,
			ProductID:          strVal(r.ProductID),
			Description:        r.Description,
			OrderedQuantity:    r.OrderedQuantity,
			ReceivedQuantity:   r.ReceivedQuantity,
			AcceptedQuantity:   r.AcceptedQuantity,
			UnitCost:           r.UnitCost,
		})
	}
	return domain.GoodsReceipt{
		GoodsReceiptID:  m.GoodsReceiptID,
		Number:          m.Number,
		SupplierID:      m.SupplierID,
		PurchaseOrderID: strVal(m.PurchaseOrderID),
		LocationID:      m.LocationID,
		ReceiptDate:     m.ReceiptDate,
		Items:           domainItems,
		Status:          domain.GoodsReceiptStatus(m.Status),
		StockUpdated:    m.StockUpdated,
		Notes:           m.Notes,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}
