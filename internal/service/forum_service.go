package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/campusmind/campusmind/internal/config"
	"github.com/campusmind/campusmind/internal/domain"
	"github.com/campusmind/campusmind/internal/repository"
	"github.com/campusmind/campusmind/internal/triage"
)

// ForumService handles the moderated peer-support space. New content passes
// through the same crisis keyword screen as chat: crisis posts are held for
// review and the author gets helpline guidance immediately.
type ForumService struct {
	cfg         *config.Config
	forumRepo   *repository.ForumRepository
	sessionRepo *repository.SessionRepository
	logger      *zap.Logger
}

// NewForumService creates a new forum service
func NewForumService(
	cfg *config.Config,
	forumRepo *repository.ForumRepository,
	sessionRepo *repository.SessionRepository,
	logger *zap.Logger,
) *ForumService {
	return &ForumService{
		cfg:         cfg,
		forumRepo:   forumRepo,
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// CreatePost publishes a post, holding it for review when the text trips
// the crisis screen
func (s *ForumService) CreatePost(ctx context.Context, req *domain.CreatePostRequest, lang string) (*domain.CreatePostResponse, error) {
	session, err := s.getOrCreateSession(req.SessionID, lang)
	if err != nil {
		return nil, err
	}

	crisis := triage.ContainsCrisisKeyword(req.Title) || triage.ContainsCrisisKeyword(req.Body)
	status := domain.ModerationApproved
	if crisis {
		status = domain.ModerationPending
		s.logger.Warn("crisis content in forum post held for review",
			zap.String("session_id", session.ID),
		)
	}

	post := &domain.Post{
		SessionID: session.ID,
		Title:     req.Title,
		Body:      req.Body,
		Category:  domain.Category(req.Category),
		Status:    status,
	}
	if err := s.forumRepo.CreatePost(post); err != nil {
		return nil, err
	}

	resp := &domain.CreatePostResponse{
		Post:           post,
		HeldForReview:  status == domain.ModerationPending,
		CrisisDetected: crisis,
	}
	if crisis {
		msg, helplines := triage.CrisisHelplines(lang)
		resp.CrisisMessage = msg
		resp.Helplines = helplines
	}

	return resp, nil
}

// ListPosts returns approved posts, newest first
func (s *ForumService) ListPosts(ctx context.Context) ([]*domain.Post, error) {
	return s.forumRepo.ListPosts(domain.ModerationApproved)
}

// GetPost returns an approved post with its approved replies
func (s *ForumService) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	post, err := s.forumRepo.GetPost(id)
	if err != nil {
		return nil, err
	}
	if post == nil || post.Status != domain.ModerationApproved {
		return nil, domain.ErrNotFound
	}

	replies, err := s.forumRepo.ListReplies(id, domain.ModerationApproved)
	if err != nil {
		return nil, err
	}
	post.Replies = replies

	return post, nil
}

// CreateReply adds a reply to an approved post, with the same crisis screen
// as posts
func (s *ForumService) CreateReply(ctx context.Context, postID string, req *domain.CreateReplyRequest, lang string) (*domain.Reply, error) {
	post, err := s.forumRepo.GetPost(postID)
	if err != nil {
		return nil, err
	}
	if post == nil || post.Status != domain.ModerationApproved {
		return nil, domain.ErrNotFound
	}

	session, err := s.getOrCreateSession(req.SessionID, lang)
	if err != nil {
		return nil, err
	}

	status := domain.ModerationApproved
	if triage.ContainsCrisisKeyword(req.Body) {
		status = domain.ModerationPending
	}

	reply := &domain.Reply{
		PostID:    postID,
		SessionID: session.ID,
		Body:      req.Body,
		Status:    status,
	}
	if err := s.forumRepo.CreateReply(reply); err != nil {
		return nil, err
	}

	return reply, nil
}

// FlagPost records a reader flag; reaching the threshold pulls the post
// back into the moderation queue
func (s *ForumService) FlagPost(ctx context.Context, id string) error {
	count, err := s.forumRepo.IncrementFlagCount(id)
	if err != nil {
		return err
	}
	if count >= s.cfg.Forum.FlagThreshold {
		return s.forumRepo.UpdatePostStatus(id, domain.ModerationPending)
	}
	return nil
}

// ModerationQueue returns posts awaiting review (admin)
func (s *ForumService) ModerationQueue(ctx context.Context) ([]*domain.Post, error) {
	return s.forumRepo.ListPosts(domain.ModerationPending)
}

// Moderate approves or removes a post (admin)
func (s *ForumService) Moderate(ctx context.Context, id string, approve bool) error {
	post, err := s.forumRepo.GetPost(id)
	if err != nil {
		return err
	}
	if post == nil {
		return domain.ErrNotFound
	}
	status := domain.ModerationRemoved
	if approve {
		status = domain.ModerationApproved
	}
	return s.forumRepo.UpdatePostStatus(id, status)
}

func (s *ForumService) getOrCreateSession(sessionID, lang string) (*domain.Session, error) {
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
