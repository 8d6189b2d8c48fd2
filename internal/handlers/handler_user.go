package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	portssvc "github.com/bizgrid/erp_backend/internal/core/ports/services"
	"github.com/bizgrid/erp_backend/internal/dto"
	"github.com/bizgrid/erp_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// userHandler handles HTTP requests related to user administration.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

// registerUserRoutes registers routes related to users.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := &userHandler{userService: userService}

	users := rg.Group("/users")
	{
		users.POST("", h.createUser)
		users.GET("", h.listUsers)
		users.GET("/:id", h.getUser)
		users.PUT("/:id", h.updateUser)
		users.DELETE("/:id", h.deactivateUser)
	}
}

// createUser godoc
// @Summary Create a new user
// @Description Creates a user account with a hashed password. Admin only.
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.CreateUserRequest true "User details"
// @Success 201 {object} dto.UserResponse
// @Failure 403 {object} map[string]string "Caller is not an admin"
// @Failure 409 {object} map[string]string "Username or email already in use"
// @Security BearerAuth
// @Router /users [post]
func (h *userHandler) createUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "Failed to create user")
		return
	}
	logger.Info("User created", slog.String("created_user_id", user.UserID), slog.String("role", string(user.Role)))
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// getUser godoc
// @Summary Get a user by ID
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} map[string]string "User not found"
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *userHandler) getUser(c *gin.Context) {
	user, err := h.userService.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve user")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// listUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Param limit query int false "Page size"
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListUsersResponse
// @Security BearerAuth
// @Router /users [get]
func (h *userHandler) listUsers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	var nextToken *string
	if token := c.Query("nextToken"); token != "" {
		decoded, err := url.QueryUnescape(token)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination token"})
			return
		}
		nextToken = &decoded
	}

	resp, err := h.userService.ListUsers(c.Request.Context(), limit, nextToken)
	if err != nil {
		respondError(c, err, "Failed to list users")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// updateUser godoc
// @Summary Update a user
// @Description Updates user details. Role changes are admin only.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param user body dto.UpdateUserRequest true "Fields to update"
// @Success 200 {object} dto.UserResponse
// @Failure 403 {object} map[string]string "Caller may not change roles"
// @Failure 404 {object} map[string]string "User not found"
// @Security BearerAuth
// @Router /users/{id} [put]
func (h *userHandler) updateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update user")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// deactivateUser godoc
// @Summary Deactivate a user
// @Description Marks a user inactive so they can no longer sign in. Admin only.
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 204 "User deactivated"
// @Failure 403 {object} map[string]string "Caller is not an admin"
// @Failure 404 {object} map[string]string "User not found"
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *userHandler) deactivateUser(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	if err := h.userService.DeactivateUser(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err, "Failed to deactivate user")
		return
	}
	c.Status(http.StatusNoContent)
}
