package domain

// Supplier represents a party that purchase orders and goods receipts are raised against.
type Supplier struct {
	SupplierID string `json:"supplierID"` // Primary Key (UUID)
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	TaxNumber  string `json:"taxNumber"`
	IsActive   bool   `json:"isActive"` // Soft delete flag
	AuditFields
}
