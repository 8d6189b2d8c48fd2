package domain

// Setting is a key/value application setting (company profile, currency
// symbol, invoice footer text, ...).
type Setting struct {
	Key   string `json:"key"` // Primary Key
	Value string `json:"value"`
	AuditFields
}
