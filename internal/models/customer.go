package models

// Customer is the database representation of a customer row.
type Customer struct {
	CustomerID string `json:"customerID"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	TaxNumber  string `json:"taxNumber"`
	IsActive   bool   `json:"isActive"`
	AuditFields
}
