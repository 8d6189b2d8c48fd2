package models

// User is the database representation of a user row.
type User struct {
	UserID         string  `json:"userID"`
	Username       string  `json:"username"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	PasswordHash   *string `json:"-"`
	Role           string  `json:"role"`
	AuthProvider   string  `json:"authProvider"`
	ProviderUserID *string `json:"providerUserID"`
	IsActive       bool    `json:"isActive"`
	AuditFields
}
