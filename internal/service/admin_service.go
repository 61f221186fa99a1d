package service

import (
	"context"

	"github.com/campusmind/campusmind/internal/domain"
	"github.com/campusmind/campusmind/internal/repository"
)

// AdminService aggregates dashboard statistics
type AdminService struct {
	sessionRepo   *repository.SessionRepository
	screeningRepo *repository.ScreeningRepository
	bookingRepo   *repository.BookingRepository
	forumRepo     *repository.ForumRepository
}

// NewAdminService creates a new admin service
func NewAdminService(
	sessionRepo *repository.SessionRepository,
	screeningRepo *repository.ScreeningRepository,
	bookingRepo *repository.BookingRepository,
	forumRepo *repository.ForumRepository,
) *AdminService {
	return &AdminService{
		sessionRepo:   sessionRepo,
		screeningRepo: screeningRepo,
		bookingRepo:   bookingRepo,
		forumRepo:     forumRepo,
	}
}

// Stats returns system statistics for the dashboard
func (s *AdminService) Stats(ctx context.Context) (*domain.Stats, error) {
	sessions, err := s.sessionRepo.CountSessions()
	if err != nil {
		return nil, err
	}
	messages, err := s.sessionRepo.CountMessages()
	if err != nil {
		return nil, err
	}
	byCategory, err := s.sessionRepo.CountByCategory()
	if err != nil {
		return nil, err
	}
	screenings, err := s.screeningRepo.Count()
	if err != nil {
		return nil, err
	}
	byBand, err := s.screeningRepo.CountByBand()
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookingRepo.Count()
	if err != nil {
		return nil, err
	}
	pending, err := s.forumRepo.CountPendingPosts()
	if err != nil {
		return nil, err
	}

	return &domain.Stats{
		TotalSessions:     sessions,
		TotalMessages:     messages,
		TotalScreenings:   screenings,
		TotalBookings:     bookings,
		CrisisMessages:    byCategory[string(domain.CategoryCrisis)],
		MessagesByTopic:   byCategory,
		ScreeningsByBand:  byBand,
		PendingModeration: pending,
	}, nil
}
