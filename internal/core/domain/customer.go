package domain

// Customer represents a party that receives quotations and invoices.
type Customer struct {
	CustomerID string `json:"customerID"` // Primary Key (UUID)
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	TaxNumber  string `json:"taxNumber"`
	IsActive   bool   `json:"isActive"` // Soft delete flag
	AuditFields
}
