package repositories

import (
	"context"
	"time"

	"github.com/bizgrid/erp_backend/internal/core/domain"
)

// UserRepositoryFacade defines persistence operations for users.
type UserRepositoryFacade interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context, limit int, nextToken *string) ([]domain.User, *string, error)
	UpdateUser(ctx context.Context, user domain.User) error
	DeactivateUser(ctx context.Context, userID string, updatedBy string, now time.Time) error
}

// SettingRepositoryFacade defines persistence operations for settings.
type SettingRepositoryFacade interface {
	UpsertSetting(ctx context.Context, setting domain.Setting) error
	FindSettingByKey(ctx context.Context, key string) (*domain.Setting, error)
	ListSettings(ctx context.Context) ([]domain.Setting, error)
}
