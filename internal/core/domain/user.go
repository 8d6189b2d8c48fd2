package domain

// Role defines what a user may do across the application.
// Workflow transition tables whitelist roles per action.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleManager  Role = "MANAGER"
	RoleStaff    Role = "STAFF"
	RoleReadOnly Role = "READONLY"
)

// IsValid checks if the role is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleStaff, RoleReadOnly:
		return true
	}
	return false
}

// CanManage reports whether the role may create or mutate records at all.
func (r Role) CanManage() bool {
	return r == RoleAdmin || r == RoleManager || r == RoleStaff
}

// User represents an application user.
type User struct {
	UserID         string `json:"userID"` // Primary Key (UUID)
	Username       string `json:"username"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	PasswordHash   string `json:"-"` // bcrypt hash; empty for OAuth-only users
	Role           Role   `json:"role"`
	AuthProvider   string `json:"authProvider"`   // "local" or "google"
	ProviderUserID string `json:"providerUserID"` // subject claim for OAuth users
	IsActive       bool   `json:"isActive"`
	AuditFields
}
