package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusmind/campusmind/internal/api/middleware"
	"github.com/campusmind/campusmind/internal/domain"
	"github.com/campusmind/campusmind/internal/service"
)

// Handler handles the admin and counsellor API
type Handler struct {
	adminService    *service.AdminService
	authService     *service.AuthService
	resourceService *service.ResourceService
	bookingService  *service.BookingService
	forumService    *service.ForumService
}

// NewHandler creates a new admin handler
func NewHandler(
	adminService *service.AdminService,
	authService *service.AuthService,
	resourceService *service.ResourceService,
	bookingService *service.BookingService,
	forumService *service.ForumService,
) *Handler {
	return &Handler{
		adminService:    adminService,
		authService:     authService,
		resourceService: resourceService,
		bookingService:  bookingService,
		forumService:    forumService,
	}
}

// RegisterAuthRoutes registers the unauthenticated login route
func (h *Handler) RegisterAuthRoutes(r *gin.RouterGroup) {
	r.POST("/login", h.Login)
}

// RegisterCounsellorRoutes registers routes behind bearer auth
func (h *Handler) RegisterCounsellorRoutes(r *gin.RouterGroup) {
	r.GET("/bookings", h.MyBookings)
	r.POST("/bookings/:id/confirm", h.ConfirmBooking)
}

// RegisterRoutes registers admin routes behind the API key
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	resources := r.Group("/resources")
	{
		resources.POST("", h.CreateResource)
		resources.PUT("/:id", h.UpdateResource)
		resources.DELETE("/:id", h.DeleteResource)
	}

	counsellors := r.Group("/counsellors")
	{
		counsellors.POST("", h.CreateCounsellor)
		counsellors.GET("", h.ListCounsellors)
	}

	moderation := r.Group("/moderation")
	{
		moderation.GET("/queue", h.ModerationQueue)
		moderation.POST("/posts/:id/approve", h.ApprovePost)
		moderation.POST("/posts/:id/remove", h.RemovePost)
	}

	r.GET("/stats", h.GetStats)
}

// Login authenticates a counsellor or admin
func (h *Handler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// MyBookings lists the authenticated counsellor's bookings
func (h *Handler) MyBookings(c *gin.Context) {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	bookings, err := h.bookingService.ListForCounsellor(c.Request.Context(), claims.Subject)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// ConfirmBooking confirms a pending booking
func (h *Handler) ConfirmBooking(c *gin.Context) {
	if err := h.bookingService.Confirm(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "booking confirmed"})
}

// CreateResource adds a resource
func (h *Handler) CreateResource(c *gin.Context) {
	var req domain.CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resource, err := h.resourceService.Create(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, resource)
}

// UpdateResource modifies a resource
func (h *Handler) UpdateResource(c *gin.Context) {
	var req domain.UpdateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resource, err := h.resourceService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resource)
}

// DeleteResource removes a resource
func (h *Handler) DeleteResource(c *gin.Context) {
	if err := h.resourceService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "resource deleted"})
}

// CreateCounsellor adds a counsellor account
func (h *Handler) CreateCounsellor(c *gin.Context) {
	var req domain.CreateCounsellorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	counsellor, err := h.authService.CreateCounsellor(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, counsellor)
}

// ListCounsellors lists all counsellors including unavailable ones
func (h *Handler) ListCounsellors(c *gin.Context) {
	counsellors, err := h.authService.ListCounsellors(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"counsellors": counsellors})
}

// ModerationQueue lists posts awaiting review
func (h *Handler) ModerationQueue(c *gin.Context) {
	posts, err := h.forumService.ModerationQueue(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// ApprovePost approves a held post
func (h *Handler) ApprovePost(c *gin.Context) {
	if err := h.forumService.Moderate(c.Request.Context(), c.Param("id"), true); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "post approved"})
}

// RemovePost removes a post
func (h *Handler) RemovePost(c *gin.Context) {
	if err := h.forumService.Moderate(c.Request.Context(), c.Param("id"), false); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "post removed"})
}

// GetStats returns dashboard statistics
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.adminService.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}
