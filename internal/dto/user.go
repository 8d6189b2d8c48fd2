package dto

import (
	"time"

	"github.com/bizgrid/erp_backend/internal/core/domain"
)

// CreateUserRequest creates a user (admin action).
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required"`
}

// UpdateUserRequest updates user details; nil fields are left unchanged.
type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" binding:"omitempty,email"`
	Role  *string `json:"role"`
}

// UserResponse is the user representation returned by the API.
type UserResponse struct {
	UserID    string    `json:"userID"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain User to its response DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Username:  u.Username,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// ListUsersResponse wraps a page of users.
type ListUsersResponse struct {
	Users     []UserResponse `json:"users"`
	NextToken *string        `json:"nextToken,omitempty"`
}

// ToListUsersResponse maps a page of domain users.
func ToListUsersResponse(users []domain.User, nextToken *string) ListUsersResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{Users: out, NextToken: nextToken}
}

// LoginRequest authenticates a user by username and password.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the access token for an authenticated user.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// GoogleExchangeRequest carries the authorization code from the SPA's Google
// sign-in redirect.
type GoogleExchangeRequest struct {
	Code string `json:"code" binding:"required"`
}
