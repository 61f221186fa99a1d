package support

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusmind/campusmind/internal/api/middleware"
	"github.com/campusmind/campusmind/internal/domain"
	"github.com/campusmind/campusmind/internal/service"
)

// Handler handles the public student-facing API
type Handler struct {
	chatService      *service.ChatService
	screeningService *service.ScreeningService
	resourceService  *service.ResourceService
	bookingService   *service.BookingService
	forumService     *service.ForumService
}

// NewHandler creates a new support handler
func NewHandler(
	chatService *service.ChatService,
	screeningService *service.ScreeningService,
	resourceService *service.ResourceService,
	bookingService *service.BookingService,
	forumService *service.ForumService,
) *Handler {
	return &Handler{
		chatService:      chatService,
		screeningService: screeningService,
		resourceService:  resourceService,
		bookingService:   bookingService,
		forumService:     forumService,
	}
}

// RegisterRoutes registers the public routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/chat", h.Chat)
	r.GET("/chat/:session_id/history", h.ChatHistory)

	r.POST("/screenings", h.SubmitScreening)
	r.GET("/screenings/:session_id", h.ScreeningHistory)

	r.GET("/resources", h.ListResources)
	r.GET("/resources/:id", h.GetResource)

	r.GET("/counsellors", h.ListCounsellors)
	r.POST("/bookings", h.CreateBooking)
	r.GET("/bookings/:session_id", h.ListBookings)
	r.POST("/bookings/:session_id/:id/cancel", h.CancelBooking)

	forum := r.Group("/forum")
	{
		forum.GET("/posts", h.ListPosts)
		forum.POST("/posts", h.CreatePost)
		forum.GET("/posts/:id", h.GetPost)
		forum.POST("/posts/:id/replies", h.CreateReply)
		forum.POST("/posts/:id/flag", h.FlagPost)
	}
}

// Chat handles a chat message
func (h *Handler) Chat(c *gin.Context) {
	var req domain.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.chatService.Chat(c.Request.Context(), &req, middleware.LocaleFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ChatHistory returns the messages of a session
func (h *Handler) ChatHistory(c *gin.Context) {
	messages, err := h.chatService.History(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// SubmitScreening scores and stores a questionnaire submission
func (h *Handler) SubmitScreening(c *gin.Context) {
	var req domain.SubmitScreeningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.screeningService.Submit(c.Request.Context(), &req, middleware.LocaleFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ScreeningHistory returns the screenings of a session
func (h *Handler) ScreeningHistory(c *gin.Context) {
	screenings, err := h.screeningService.History(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"screenings": screenings})
}

// ListResources lists resources, optionally filtered
func (h *Handler) ListResources(c *gin.Context) {
	resources, err := h.resourceService.List(c.Request.Context(), c.Query("category"), c.Query("language"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"resources": resources})
}

// GetResource returns one resource
func (h *Handler) GetResource(c *gin.Context) {
	resource, err := h.resourceService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	if resource == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		return
	}

	c.JSON(http.StatusOK, resource)
}

// ListCounsellors lists counsellors open for booking
func (h *Handler) ListCounsellors(c *gin.Context) {
	counsellors, err := h.bookingService.ListCounsellors(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"counsellors": counsellors})
}

// CreateBooking books a counselling slot
func (h *Handler) CreateBooking(c *gin.Context) {
	var req domain.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.bookingService.Create(c.Request.Context(), &req, middleware.LocaleFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// ListBookings returns the bookings made from a session
func (h *Handler) ListBookings(c *gin.Context) {
	bookings, err := h.bookingService.ListForSession(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// CancelBooking cancels a booking made by the same session
func (h *Handler) CancelBooking(c *gin.Context) {
	err := h.bookingService.Cancel(c.Request.Context(), c.Param("id"), c.Param("session_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "booking cancelled"})
}

// ListPosts lists approved forum posts
func (h *Handler) ListPosts(c *gin.Context) {
	posts, err := h.forumService.ListPosts(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// CreatePost publishes a forum post
func (h *Handler) CreatePost(c *gin.Context) {
	var req domain.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.forumService.CreatePost(c.Request.Context(), &req, middleware.LocaleFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetPost returns an approved post with replies
func (h *Handler) GetPost(c *gin.Context) {
	post, err := h.forumService.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// CreateReply replies to a forum post
func (h *Handler) CreateReply(c *gin.Context) {
	var req domain.CreateReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.forumService.CreateReply(c.Request.Context(), c.Param("id"), &req, middleware.LocaleFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, reply)
}

// FlagPost records a reader flag on a post
func (h *Handler) FlagPost(c *gin.Context) {
	if err := h.forumService.FlagPost(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "post flagged"})
}

func writeError(c *gin.Context, err error) {
	switch {
	case domain.IsInvalidInput(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
