package domain

import "time"

// ModerationStatus tracks whether a peer-support post is visible
type ModerationStatus string

const (
	ModerationPending  ModerationStatus = "pending"
	ModerationApproved ModerationStatus = "approved"
	ModerationRemoved  ModerationStatus = "removed"
)

// Post is a peer-support forum post. Author identity is the anonymous
// session, never an account.
type Post struct {
	ID        string           `json:"id"`
	SessionID string           `json:"-"`
	Title     string           `json:"title"`
	Body      string           `json:"body"`
	Category  Category         `json:"category"`
	Status    ModerationStatus `json:"status"`
	FlagCount int              `json:"flag_count"`
	Replies   []*Reply         `json:"replies,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

// Reply is a reply on a forum post
type Reply struct {
	ID        string           `json:"id"`
	PostID    string           `json:"post_id"`
	SessionID string           `json:"-"`
	Body      string           `json:"body"`
	Status    ModerationStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
}

// CreatePostRequest is the request to publish a forum post
type CreatePostRequest struct {
	SessionID string `json:"session_id,omitempty"`
	Title     string `json:"title" binding:"required"`
	Body      string `json:"body" binding:"required"`
	Category  string `json:"category,omitempty"`
}

// CreatePostResponse returns the stored post plus crisis guidance when the
// post text tripped the crisis screen.
type CreatePostResponse struct {
	Post           *Post    `json:"post"`
	HeldForReview  bool     `json:"held_for_review"`
	CrisisDetected bool     `json:"crisis_detected"`
	CrisisMessage  string   `json:"crisis_message,omitempty"`
	Helplines      []string `json:"helplines,omitempty"`
}

// CreateReplyRequest is the request to reply to a forum post
type CreateReplyRequest struct {
	SessionID string `json:"session_id,omitempty"`
	Body      string `json:"body" binding:"required"`
}
