package handlers

import (
	userRepo "barberly/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handler functions the route registry wires up.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	// Barber endpoints.
	GetBarberHandler gin.HandlerFunc

	// Session endpoints.
	CreateSessionHandler     gin.HandlerFunc
	GetUserSessionsHandler   gin.HandlerFunc
	GetBarberSessionsHandler gin.HandlerFunc

	// Image search endpoint.
	ImageSearchHandler gin.HandlerFunc

	// User endpoints.
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc
	CurrentUserHandler      gin.HandlerFunc
}
