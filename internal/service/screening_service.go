package service

import (
	"context"
	"strings"

	"github.com/campusmind/campusmind/internal/domain"
	"github.com/campusmind/campusmind/internal/repository"
	"github.com/campusmind/campusmind/internal/screening"
)

// ScreeningService scores questionnaire submissions and stores the results.
// Stored results later feed the chat classifier as clinical context.
type ScreeningService struct {
	sessionRepo   *repository.SessionRepository
	screeningRepo *repository.ScreeningRepository
}

// NewScreeningService creates a new screening service
func NewScreeningService(
	sessionRepo *repository.SessionRepository,
	screeningRepo *repository.ScreeningRepository,
) *ScreeningService {
	return &ScreeningService{
		sessionRepo:   sessionRepo,
		screeningRepo: screeningRepo,
	}
}

// Submit validates, scores, and stores one questionnaire submission
func (s *ScreeningService) Submit(ctx context.Context, req *domain.SubmitScreeningRequest, lang string) (*domain.SubmitScreeningResponse, error) {
	instrument, err := parseInstrument(req.Type)
	if err != nil {
		return nil, err
	}

	result, err := screening.Score(instrument, req.Answers)
	if err != nil {
		return nil, err
	}

	session, err := s.getOrCreateSession(req.SessionID, lang)
	if err != nil {
		return nil, err
	}

	record := &domain.Screening{
		SessionID: session.ID,
		Type:      instrument,
		Answers:   req.Answers,
		Score:     result.Score,
		Band:      result.Band,
	}
	if err := s.screeningRepo.Create(record); err != nil {
		return nil, err
	}

	return &domain.SubmitScreeningResponse{
		SessionID:       session.ID,
		Type:            instrument,
		Score:           result.Score,
		MaxScore:        result.MaxScore,
		Band:            result.Band,
		Interpretation:  screening.Interpretation(instrument, result.Band, lang),
		Recommendations: screening.Recommendations(instrument, result.Band, lang),
	}, nil
}

// History returns all screenings of a session, newest first
func (s *ScreeningService) History(ctx context.Context, sessionID string) ([]domain.Screening, error) {
	session, err := s.sessionRepo.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrNotFound
	}
	return s.screeningRepo.ListBySession(sessionID)
}

func (s *ScreeningService) getOrCreateSession(sessionID, lang string) (*domain.Session, error) {
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

// parseInstrument normalizes client instrument names ("PHQ-9", "phq9") to
// the canonical form.
func parseInstrument(raw string) (domain.Instrument, error) {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(raw), "-", ""))
	switch normalized {
	case "phq9":
		return domain.InstrumentPHQ9, nil
	case "gad7":
		return domain.InstrumentGAD7, nil
	default:
		return "", domain.NewInvalidInput("type", "unknown instrument %q", raw)
	}
}
