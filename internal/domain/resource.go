package domain

import "time"

// ResourceKind classifies the medium of a self-help resource
type ResourceKind string

const (
	ResourceArticle  ResourceKind = "article"
	ResourceVideo    ResourceKind = "video"
	ResourceAudio    ResourceKind = "audio"
	ResourceHelpline ResourceKind = "helpline"
)

// Resource is a self-help resource shown in the resource library
type Resource struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Category    Category     `json:"category"`
	Kind        ResourceKind `json:"kind"`
	URL         string       `json:"url"`
	Language    string       `json:"language"`
	Tags        []string     `json:"tags,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// CreateResourceRequest is the admin request to add a resource
type CreateResourceRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category" binding:"required"`
	Kind        string   `json:"kind" binding:"required"`
	URL         string   `json:"url"`
	Language    string   `json:"language"`
	Tags        []string `json:"tags,omitempty"`
}

// UpdateResourceRequest is the admin request to update a resource
type UpdateResourceRequest struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Kind        string   `json:"kind,omitempty"`
	URL         string   `json:"url,omitempty"`
	Language    string   `json:"language,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}
