package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/campusmind/campusmind/internal/config"
	"github.com/campusmind/campusmind/internal/domain"
	"github.com/campusmind/campusmind/internal/repository"
	"github.com/campusmind/campusmind/internal/triage"
)

// ChatService runs the chat triage pipeline: fetch context, classify the
// message, render the localized reply, persist both sides of the exchange.
type ChatService struct {
	cfg           *config.Config
	sessionRepo   *repository.SessionRepository
	screeningRepo *repository.ScreeningRepository
	logger        *zap.Logger
}

// NewChatService creates a new chat service
func NewChatService(
	cfg *config.Config,
	sessionRepo *repository.SessionRepository,
	screeningRepo *repository.ScreeningRepository,
	logger *zap.Logger,
) *ChatService {
	return &ChatService{
		cfg:           cfg,
		sessionRepo:   sessionRepo,
		screeningRepo: screeningRepo,
		logger:        logger,
	}
}

// Chat handles one user message and returns the bot reply
func (s *ChatService) Chat(ctx context.Context, req *domain.ChatRequest, lang string) (*domain.ChatResponse, error) {
	session, err := s.getOrCreateSession(req.SessionID, lang)
	if err != nil {
		return nil, err
	}

	// Context for the classifier: a bounded window of recent messages and
	// the session's screening history. Persistence supplies them already
	// fetched so classification itself stays pure.
	history, err := s.sessionRepo.RecentMessages(session.ID, s.cfg.Chat.HistoryWindow)
	if err != nil {
		return nil, err
	}
	screenings, err := s.screeningRepo.ListBySession(session.ID)
	if err != nil {
		return nil, err
	}

	classification := triage.Classify(req.Message, history, screenings)
	reply := triage.BuildResponse(classification, lang)

	if classification.Crisis {
		s.logger.Warn("crisis message detected",
			zap.String("session_id", session.ID),
		)
	}

	userMsg := &domain.ChatMessage{
		SessionID: session.ID,
		Sender:    domain.SenderUser,
		Text:      req.Message,
		Category:  classification.Category,
		Severity:  classification.Severity,
	}
	if err := s.sessionRepo.CreateMessage(userMsg); err != nil {
		return nil, err
	}

	botMsg := &domain.ChatMessage{
		SessionID: session.ID,
		Sender:    domain.SenderBot,
		Text:      reply.Message,
	}
	if err := s.sessionRepo.CreateMessage(botMsg); err != nil {
		return nil, err
	}

	if err := s.sessionRepo.Touch(session.ID); err != nil {
		return nil, err
	}

	return &domain.ChatResponse{
		SessionID: session.ID,
		Reply:     reply,
	}, nil
}

// History returns all messages of a session, oldest first
func (s *ChatService) History(ctx context.Context, sessionID string) ([]domain.ChatMessage, error) {
	session, err := s.sessionRepo.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrNotFound
	}
	return s.sessionRepo.GetMessages(sessionID)
}

func (s *ChatService) getOrCreateSession(sessionID, lang string) (*domain.Session, error) {
	if sessionID != "" {
		session, err := s.sessionRepo.Get(sessionID)
		if err != nil {
			return nil, err
		}
		if session != nil {
			return session, nil
		}
		// Unknown session IDs get a fresh session rather than an error;
		// clients may hold stale IDs after a data reset.
	}
	session := &domain.Session{Language: lang}
	if err := s.sessionRepo.Create(session); err != nil {
		return nil, err
	}
	return session, nil
}
