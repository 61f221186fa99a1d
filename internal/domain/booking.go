package domain

import "time"

// Counsellor is a bookable counsellor profile. PasswordHash is never
// serialized to clients.
type Counsellor struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Specialties  []string  `json:"specialties"`
	Languages    []string  `json:"languages"`
	Available    bool      `json:"available"`
	Admin        bool      `json:"admin"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BookingStatus tracks the lifecycle of a booking
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is a counselling appointment request made from a chat session
type Booking struct {
	ID           string        `json:"id"`
	SessionID    string        `json:"session_id"`
	CounsellorID string        `json:"counsellor_id"`
	SlotStart    time.Time     `json:"slot_start"`
	SlotEnd      time.Time     `json:"slot_end"`
	Status       BookingStatus `json:"status"`
	Note         string        `json:"note,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// CreateBookingRequest is the request to book a counselling slot
type CreateBookingRequest struct {
	SessionID    string    `json:"session_id,omitempty"`
	CounsellorID string    `json:"counsellor_id" binding:"required"`
	SlotStart    time.Time `json:"slot_start" binding:"required"`
	SlotEnd      time.Time `json:"slot_end" binding:"required"`
	Note         string    `json:"note,omitempty"`
}

// CreateCounsellorRequest is the admin request to add a counsellor
type CreateCounsellorRequest struct {
	Name        string   `json:"name" binding:"required"`
	Email       string   `json:"email" binding:"required"`
	Password    string   `json:"password" binding:"required"`
	Specialties []string `json:"specialties,omitempty"`
	Languages   []string `json:"languages,omitempty"`
	Admin       bool     `json:"admin,omitempty"`
}

// LoginRequest is the counsellor/admin login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued bearer token
type LoginResponse struct {
	Token        string `json:"token"`
	CounsellorID string `json:"counsellor_id"`
	Name         string `json:"name"`
	Admin        bool   `json:"admin"`
}
