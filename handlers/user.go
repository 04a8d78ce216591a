package handlers

import (
	"net/http"

	"barberly/models"
	"barberly/services/user"
	"barberly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// userService is injected from main.
var userService user.UserService

// SetUserService wires the user service used by the account handlers.
func SetUserService(svc user.UserService) {
	userService = svc
}

// RegisterUserHandler creates an account and returns a fresh auth token.
func RegisterUserHandler(c *gin.Context) {
	var u models.User
	if err := c.ShouldBindJSON(&u); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid registration request", err.Error())
		return
	}

	resp, err := userService.Register(&u)
	if err != nil {
		getLogger(c).Warn("Registration failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Registration failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateUserHandler verifies credentials and returns a fresh token.
func AuthenticateUserHandler(c *gin.Context) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&creds); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid login request", err.Error())
		return
	}

	resp, err := userService.Authenticate(creds.Email, creds.Password)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CurrentUserHandler returns the authenticated user. The booking page
// uses it to resolve the current user instead of a hardcoded stand-in.
func CurrentUserHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Not authenticated", "")
		return
	}

	u, err := userService.GetByID(userID)
	if err != nil {
		getLogger(c).Error("Failed to fetch current user", zap.String("userID", userID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch user", err.Error())
		return
	}
	if u == nil {
		utils.JSONError(c, http.StatusNotFound, "User not found", userID)
		return
	}
	c.JSON(http.StatusOK, u)
}
