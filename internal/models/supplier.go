package models

// Supplier is the database representation of a supplier row.
type Supplier struct {
	SupplierID string `json:"supplierID"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	TaxNumber  string `json:"taxNumber"`
	IsActive   bool   `json:"isActive"`
	AuditFields
}
