package service

import (
	"context"
	"time"

	"github.com/campusmind/campusmind/internal/domain"
	"github.com/campusmind/campusmind/internal/repository"
)

// BookingService handles counsellor discovery and appointment booking
type BookingService struct {
	counsellorRepo *repository.CounsellorRepository
	bookingRepo    *repository.BookingRepository
	sessionRepo    *repository.SessionRepository
}

// NewBookingService creates a new booking service
func NewBookingService(
	counsellorRepo *repository.CounsellorRepository,
	bookingRepo *repository.BookingRepository,
	sessionRepo *repository.SessionRepository,
) *BookingService {
	return &BookingService{
		counsellorRepo: counsellorRepo,
		bookingRepo:    bookingRepo,
		sessionRepo:    sessionRepo,
	}
}

// ListCounsellors returns counsellors open for booking
func (s *BookingService) ListCounsellors(ctx context.Context) ([]*domain.Counsellor, error) {
	return s.counsellorRepo.ListAvailable()
}

// Create books a counselling slot for a session
func (s *BookingService) Create(ctx context.Context, req *domain.CreateBookingRequest, lang string) (*domain.Booking, error) {
	if !req.SlotEnd.After(req.SlotStart) {
		return nil, domain.NewInvalidInput("slot_end", "must be after slot_start")
	}
	if req.SlotStart.Before(time.Now()) {
		return nil, domain.NewInvalidInput("slot_start", "must be in the future")
	}

	counsellor, err := s.counsellorRepo.Get(req.CounsellorID)
	if err != nil {
		return nil, err
	}
	if counsellor == nil || !counsellor.Available {
		return nil, domain.ErrNotFound
	}

	session, err := s.getOrCreateSession(req.SessionID, lang)
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		SessionID:    session.ID,
		CounsellorID: counsellor.ID,
		SlotStart:    req.SlotStart,
		SlotEnd:      req.SlotEnd,
		Status:       domain.BookingPending,
		Note:         req.Note,
	}
	if err := s.bookingRepo.Create(booking); err != nil {
		return nil, err
	}

	return booking, nil
}

// ListForSession returns the bookings made from a session
func (s *BookingService) ListForSession(ctx context.Context, sessionID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListBySession(sessionID)
}

// Cancel cancels a booking. Only the session that made the booking may
// cancel it.
func (s *BookingService) Cancel(ctx context.Context, bookingID, sessionID string) error {
	booking, err := s.bookingRepo.Get(bookingID)
	if err != nil {
		return err
	}
	if booking == nil {
		return domain.ErrNotFound
	}
	if booking.SessionID != sessionID {
		return domain.ErrUnauthorized
	}
	if booking.Status == domain.BookingCancelled {
		return nil
	}
	return s.bookingRepo.UpdateStatus(bookingID, domain.BookingCancelled)
}

// Confirm marks a booking confirmed (counsellor/admin)
func (s *BookingService) Confirm(ctx context.Context, bookingID string) error {
	booking, err := s.bookingRepo.Get(bookingID)
	if err != nil {
		return err
	}
	if booking == nil {
		return domain.ErrNotFound
	}
	return s.bookingRepo.UpdateStatus(bookingID, domain.BookingConfirmed)
}

// ListForCounsellor returns the bookings assigned to a counsellor
func (s *BookingService) ListForCounsellor(ctx context.Context, counsellorID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByCounsellor(counsellorID)
}

func (s *BookingService) getOrCreateSession(sessionID, lang string) (*domain.Session, error) {
	if sessionID != "" {
		session, err := s.sessionRepo.Get(sessionID)
		if err != nil {
			return nil, err
		}
		if session != nil {
			return session, nil
		}
	}
	session := &domain.Session{Language: lang}
	if err := s.sessionRepo.Create(session); err != nil {
		return nil, err
	}
	return session, nil
}
