package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"contact_book/internal/config"
	"contact_book/internal/handler"
	"contact_book/internal/middleware"
	"contact_book/internal/repository"
	"contact_book/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, relying on environment variables")
	}

	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	// --- Migrations ---
	if err := config.RunMigrations(context.Background(), cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer dbPool.Close()

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	contactRepo := repository.NewContactRepository(dbPool)
	addressRepo := repository.NewAddressRepository(dbPool)

	// --- Initialize Services ---
	tokenTTL := time.Duration(cfg.TokenTTLHours) * time.Hour
	authService := service.NewAuthService(userRepo, tokenTTL)
	userService := service.NewUserService(userRepo)
	contactService := service.NewContactService(contactRepo)
	addressService := service.NewAddressService(contactRepo, addressRepo)

	// --- Initialize Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	contactHandler := handler.NewContactHandler(contactService)
	addressHandler := handler.NewAddressHandler(addressService)

	// --- Setup Gin Router ---
	router := gin.New()
	router.Use(middleware.RequestLogger(log.Logger))
	router.Use(gin.Recovery())

	// --- Register Routes ---
	tokenAuthMW := middleware.TokenAuth(authService)
	apiGroup := router.Group("/api")
	userHandler.RegisterUserRoutes(apiGroup, tokenAuthMW)
	authHandler.RegisterAuthRoutes(apiGroup, tokenAuthMW)
	contactHandler.RegisterContactRoutes(apiGroup, tokenAuthMW)
	addressHandler.RegisterAddressRoutes(apiGroup, tokenAuthMW)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		if err := dbPool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen failed")
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
