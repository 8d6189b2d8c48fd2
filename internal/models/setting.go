package models

// Setting is the database representation of a key/value setting row.
type Setting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	AuditFields
}
