package routes

import (
	"net/http"
	"time"

	"barberly/handlers"
	"barberly/middleware"
	"barberly/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBarberRoutes registers the barber lookup/search endpoint.
func RegisterBarberRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/get_barber", hb.GetBarberHandler)
}

// RegisterSessionRoutes registers the appointment session endpoints.
// Creating a session requires an authenticated user; the listings are
// public.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/create_session", middleware.JWTAuthUserMiddleware(hb.UserRepo), hb.CreateSessionHandler)
	r.GET("/get_user_sessions", hb.GetUserSessionsHandler)
	r.GET("/get_barber_sessions", hb.GetBarberSessionsHandler)
}

// RegisterImageSearchRoute registers the reference-image search endpoint.
func RegisterImageSearchRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/image_search", hb.ImageSearchHandler)
}

// RegisterUserRoutes registers the account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)

		// Protected routes (require authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/me", hb.CurrentUserHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes wires CORS and all endpoint groups onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Echo the request origin so browsers accept credentialed requests.
	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterBarberRoutes(r, hb)
	RegisterSessionRoutes(r, hb)
	RegisterImageSearchRoute(r, hb)
	RegisterUserRoutes(r, hb)
}
