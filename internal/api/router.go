package api

import (
	"github.com/gin-gonic/gin"

	"github.com/campusmind/campusmind/internal/api/admin"
	"github.com/campusmind/campusmind/internal/api/middleware"
	"github.com/campusmind/campusmind/internal/api/support"
	"github.com/campusmind/campusmind/internal/config"
	"github.com/campusmind/campusmind/internal/service"
)

// RouterConfig holds configuration for the router
type RouterConfig struct {
	APIKey       string
	AllowOrigins []string
	RateLimit    config.RateLimitConfig
}

// SetupRouter sets up the Gin router
func SetupRouter(
	chatService *service.ChatService,
	screeningService *service.ScreeningService,
	resourceService *service.ResourceService,
	bookingService *service.BookingService,
	forumService *service.ForumService,
	authService *service.AuthService,
	adminService *service.AdminService,
	cfg RouterConfig,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.Locale())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public student-facing API (anonymous sessions)
	supportHandler := support.NewHandler(chatService, screeningService, resourceService, bookingService, forumService)
	supportGroup := r.Group("/api")
	supportGroup.Use(middleware.RateLimit(cfg.RateLimit))
	supportHandler.RegisterRoutes(supportGroup)

	adminHandler := admin.NewHandler(adminService, authService, resourceService, bookingService, forumService)

	// Staff login
	authGroup := r.Group("/api/auth")
	adminHandler.RegisterAuthRoutes(authGroup)

	// Counsellor API (requires bearer token)
	counsellorGroup := r.Group("/api/counsellor")
	counsellorGroup.Use(middleware.Bearer(authService))
	adminHandler.RegisterCounsellorRoutes(counsellorGroup)

	// Admin API (requires API key)
	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middleware.APIKey(cfg.APIKey))
	adminHandler.RegisterRoutes(adminGroup)

	return r
}
