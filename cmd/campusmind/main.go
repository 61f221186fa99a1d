package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/campusmind/campusmind/internal/api"
	"github.com/campusmind/campusmind/internal/config"
	"github.com/campusmind/campusmind/internal/repository"
	"github.com/campusmind/campusmind/internal/service"
)

var (
	configPath = flag.String("config", "", "Path to config file")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Initialize database
	db, err := repository.NewDB(cfg.Database.Path)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	sessionRepo := repository.NewSessionRepository(db)
	screeningRepo := repository.NewScreeningRepository(db)
	resourceRepo := repository.NewResourceRepository(db)
	counsellorRepo := repository.NewCounsellorRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	forumRepo := repository.NewForumRepository(db)

	// Initialize services
	chatService := service.NewChatService(cfg, sessionRepo, screeningRepo, logger)
	screeningService := service.NewScreeningService(sessionRepo, screeningRepo)
	resourceService := service.NewResourceService(resourceRepo)
	bookingService := service.NewBookingService(counsellorRepo, bookingRepo, sessionRepo)
	forumService := service.NewForumService(cfg, forumRepo, sessionRepo, logger)
	authService := service.NewAuthService(cfg, counsellorRepo)
	adminService := service.NewAdminService(sessionRepo, screeningRepo, bookingRepo, forumRepo)

	// Seed starter resources and the bootstrap admin account
	ctx := context.Background()
	if err := resourceService.Seed(ctx); err != nil {
		logger.Warn("Failed to seed resources", zap.Error(err))
	}
	if err := authService.EnsureAdmin(ctx); err != nil {
		logger.Warn("Failed to create bootstrap admin", zap.Error(err))
	}

	// Setup router
	router := api.SetupRouter(
		chatService,
		screeningService,
		resourceService,
		bookingService,
		forumService,
		authService,
		adminService,
		api.RouterConfig{
			APIKey:       cfg.Admin.APIKey,
			AllowOrigins: []string{"*"},
			RateLimit:    cfg.RateLimit,
		},
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Address(),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting CampusMind server",
			zap.String("address", cfg.Address()),
			zap.String("base_url", cfg.Server.BaseURL),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
