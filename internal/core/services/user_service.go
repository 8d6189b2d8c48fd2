package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bizgrid/erp_backend/internal/apperrors"
	"github.com/bizgrid/erp_backend/internal/core/domain"
	portsrepo "github.com/bizgrid/erp_backend/internal/core/ports/repositories"
	"github.com/bizgrid/erp_backend/internal/dto"
	"github.com/bizgrid/erp_backend/internal/middleware"
	"github.com/bizgrid/erp_backend/internal/utils"
	"github.com/google/uuid"
)

type UserService struct {
	userRepo portsrepo.UserRepositoryFacade
}

func NewUserService(repo portsrepo.UserRepositoryFacade) *UserService {
	return &UserService{userRepo: repo}
}

func (s *UserService) CreateUser(ctx context.Context, actor domain.Actor, req dto.CreateUserRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if actor.Role != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: only admins can create users", apperrors.ErrForbidden)
	}

	role := domain.Role(req.Role)
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %s", apperrors.ErrValidation, req.Role)
	}

	if existing, err := s.userRepo.FindUserByUsername(ctx, req.Username); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: username %s is taken", apperrors.ErrDuplicate, req.Username)
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		AuthProvider: "local",
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		logger.Error("Failed to save user in repository", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("User created successfully", slog.String("user_id", user.UserID), slog.String("role", string(role)))
	return &user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find user by ID", slog.String("error", err.Error()), slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context, limit int, nextToken *string) (*dto.ListUsersResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if limit <= 0 {
		limit = defaultListLimit
	}

	users, token, err := s.userRepo.ListUsers(ctx, limit, nextToken)
	if err != nil {
		logger.Error("Failed to list users", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	resp := dto.ToListUsersResponse(users, token)
	return &resp, nil
}

func (s *UserService) UpdateUser(ctx context.Context, actor domain.Actor, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	// Users may edit their own name/email; only admins touch other users or roles.
	if actor.UserID != userID && actor.Role != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: cannot modify another user", apperrors.ErrForbidden)
	}
	if req.Role != nil && actor.Role != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: only admins can change roles", apperrors.ErrForbidden)
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		if !role.IsValid() {
			return nil, fmt.Errorf("%w: unknown role %s", apperrors.ErrValidation, *req.Role)
		}
		user.Role = role
	}
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = actor.UserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		logger.Error("Failed to update user", slog.String("error", err.Error()), slog.String("user_id", userID))
		return nil, err
	}

	logger.Info("User updated successfully", slog.String("user_id", userID))
	return user, nil
}

func (s *UserService) DeactivateUser(ctx context.Context, actor domain.Actor, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if actor.Role != domain.RoleAdmin {
		return fmt.Errorf("%w: only admins can deactivate users", apperrors.ErrForbidden)
	}
	if actor.UserID == userID {
		return fmt.Errorf("%w: cannot deactivate your own account", apperrors.ErrValidation)
	}

	if err := s.userRepo.DeactivateUser(ctx, userID, actor.UserID, time.Now()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to deactivate user", slog.String("error", err.Error()), slog.String("user_id", userID))
		}
		return err
	}

	logger.Info("User deactivated successfully", slog.String("user_id", userID))
	return nil
}
