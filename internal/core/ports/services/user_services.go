package services

import (
	"context"

	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/bizgrid/erp_backend/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a specific user by its ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListUsers retrieves a paginated list of users.
	ListUsers(ctx context.Context, limit int, nextToken *string) (*dto.ListUsersResponse, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// CreateUser persists a new user with a hashed password. Admin only.
	CreateUser(ctx context.Context, actor domain.Actor, req dto.CreateUserRequest) (*domain.User, error)

	// UpdateUser updates user details. Role changes are admin only.
	UpdateUser(ctx context.Context, actor domain.Actor, userID string, req dto.UpdateUserRequest) (*domain.User, error)

	// DeactivateUser marks a user as inactive. Admin only.
	DeactivateUser(ctx context.Context, actor domain.Actor, userID string) error
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}

// SettingReaderSvc defines read operations for application settings
type SettingReaderSvc interface {
	// GetSetting retrieves a setting by key.
	GetSetting(ctx context.Context, key string) (*domain.Setting, error)

	// ListSettings retrieves all settings.
	ListSettings(ctx context.Context) ([]domain.Setting, error)
}

// SettingWriterSvc defines write operations for application settings
type SettingWriterSvc interface {
	// UpsertSetting creates or replaces a setting value. Manager or above.
	UpsertSetting(ctx context.Context, actor domain.Actor, key string, req dto.SaveSettingRequest) (*domain.Setting, error)
}

// SettingSvcFacade combines all setting-related service interfaces
type SettingSvcFacade interface {
	SettingReaderSvc
	SettingWriterSvc
}
