package domain

import "time"

// Sender identifies who authored a chat message
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Category is a mental-health topic assigned to a user message
type Category string

// Categories in declaration order. The order is part of the classifier
// contract: ties on match ratio resolve to the first-declared category.
const (
	CategoryAnxiety         Category = "anxiety"
	CategoryDepression      Category = "depression"
	CategoryStressBurnout   Category = "stress_burnout"
	CategorySleep           Category = "sleep"
	CategoryAcademicStress  Category = "academic_stress"
	CategorySocialIsolation Category = "social_isolation"
	CategoryCrisis          Category = "crisis"
	CategoryGeneral         Category = "general"
)

// Severity is the assessed urgency of a user message
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityModerate Severity = "moderate"
	SeverityHigh     Severity = "high"
	SeverityCrisis   Severity = "crisis"
)

// Session represents an anonymous chat session
type Session struct {
	ID        string    `json:"id"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ChatMessage represents a single chat message. Category and Severity are
// set on user messages from the classification result, empty on bot messages.
type ChatMessage struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text"`
	Category  Category  `json:"category,omitempty"`
	Severity  Severity  `json:"severity,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Classification is the outcome of classifying one user message.
// Computed fresh per message and never mutated.
type Classification struct {
	Category   Category `json:"category"`
	Severity   Severity `json:"severity"`
	Crisis     bool     `json:"crisis"`
	Confidence float64  `json:"confidence"`
}

// ResponseBundle is the rendered, localized reply to a classified message
type ResponseBundle struct {
	Message          string   `json:"message"`
	QuickReplies     []string `json:"quick_replies"`
	ShowCrisisBanner bool     `json:"show_crisis_banner"`
	NextSteps        string   `json:"next_steps,omitempty"`
	Category         Category `json:"category"`
	Severity         Severity `json:"severity"`
}

// ChatRequest is the request to send a chat message
type ChatRequest struct {
	SessionID string `json:"session_id,omitempty"`
	Message   string `json:"message" binding:"required"`
}

// ChatResponse is the response to a chat message
type ChatResponse struct {
	SessionID string         `json:"session_id"`
	Reply     ResponseBundle `json:"reply"`
}

// Stats represents system statistics for the admin dashboard
type Stats struct {
	TotalSessions     int              `json:"total_sessions"`
	TotalMessages     int              `json:"total_messages"`
	TotalScreenings   int              `json:"total_screenings"`
	TotalBookings     int              `json:"total_bookings"`
	CrisisMessages    int              `json:"crisis_messages"`
	MessagesByTopic   map[string]int   `json:"messages_by_topic"`
	ScreeningsByBand  map[string]int   `json:"screenings_by_band"`
	PendingModeration int              `json:"pending_moderation"`
}
