// File: barberly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"barberly/config"
	"barberly/database"
	barberRepoPkg "barberly/database/repository/barber"
	embeddingRepoPkg "barberly/database/repository/embedding"
	sessionRepoPkg "barberly/database/repository/session"
	userRepoPkg "barberly/database/repository/user"
	"barberly/handlers"
	"barberly/middleware"
	"barberly/routes"
	"barberly/services/imagesearch"
	"barberly/services/user"
	"barberly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Warnf("main: cloudinary storage unavailable, uploads will not be hosted: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	barberRepo := barberRepoPkg.NewMongoBarberRepo()
	sessionRepo := sessionRepoPkg.NewMongoSessionRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	embeddingRepo := embeddingRepoPkg.NewMongoEmbeddingRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	handlers.SetUserService(userService)

	embedder, err := imagesearch.NewGeminiEmbedder(config.AppConfig.GeminiAPIKey)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize image embedder: %v", err)
	}
	imageSearchService := &imagesearch.DefaultImageSearchService{
		Embedder:   embedder,
		Embeddings: embeddingRepo,
		Barbers:    barberRepo,
		Logger:     logger,
	}

	// handlers.
	barberHandler := handlers.NewBarberHandler(barberRepo, utils.GetCacheClient())
	sessionHandler := handlers.NewSessionHandler(barberRepo, sessionRepo)
	imageSearchHandler := handlers.NewImageSearchHandler(imageSearchService, cloudinaryStorageService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// Barber endpoints.
		GetBarberHandler: barberHandler.GetBarberHandler,

		// Session endpoints.
		CreateSessionHandler:     sessionHandler.CreateSessionHandler,
		GetUserSessionsHandler:   sessionHandler.GetUserSessionsHandler,
		GetBarberSessionsHandler: sessionHandler.GetBarberSessionsHandler,

		// Image search endpoint.
		ImageSearchHandler: imageSearchHandler.ImageSearchHandler,

		// User endpoints.
		RegisterUserHandler:     handlers.RegisterUserHandler,
		AuthenticateUserHandler: handlers.AuthenticateUserHandler,
		CurrentUserHandler:      handlers.CurrentUserHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Periodic health snapshots for the health endpoint.
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
