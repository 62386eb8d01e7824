package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shirokane/todo-app-api/internal/constants"
	"github.com/shirokane/todo-app-api/internal/dto"
	apierrors "github.com/shirokane/todo-app-api/internal/errors"
	"github.com/shirokane/todo-app-api/internal/middleware"
	"github.com/shirokane/todo-app-api/internal/services"
)

// UserHandler coordinates the user directory and account endpoints.
type UserHandler struct {
	userService *services.UserService
	authService *services.AuthService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *services.UserService, authService *services.AuthService) *UserHandler {
	return &UserHandler{
		userService: userService,
		authService: authService,
	}
}

// ListUsers returns every user. Admin-style: no ownership filter.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListAll()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch users")
		return
	}

	userDTOs := make([]dto.UserDTO, len(users))
	for i, user := range users {
		userDTOs[i] = dto.ToUserDTO(user)
	}

	c.JSON(http.StatusOK, gin.H{"users": userDTOs})
}

// GetUser returns a user by id.
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	user, err := h.userService.GetByID(id)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// ChangePassword replaces the digest for the submitted username after
// re-verifying the current password against that account.
func (h *UserHandler) ChangePassword(c *gin.Context) {
	type ChangePasswordRequest struct {
		Username    string `json:"username" binding:"required"`
		Password    string `json:"password" binding:"required"`
		NewPassword string `json:"new_password" binding:"required"`
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	err := h.authService.ChangePassword(services.ChangePasswordInput{
		Username:        req.Username,
		CurrentPassword: req.Password,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Password changed successfully",
	})
}

// DeleteCurrentUser removes the caller's account together with their todos
// and linked address.
func (h *UserHandler) DeleteCurrentUser(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.NotFound(c, "")
		return
	}

	if err := h.userService.DeleteAccount(identity); err != nil {
		respondAuthError(c, err)
		return
	}

	c.SetCookie(constants.AccessTokenCookie, "", -1, "/", "", false, true)

	c.JSON(http.StatusOK, dto.TransactionResponse{
		Status:      http.StatusOK,
		Transaction: "Successful",
	})
}
