package service

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/campusmind/campusmind/internal/config"
	"github.com/campusmind/campusmind/internal/repository"
)

type testEnv struct {
	cfg            *config.Config
	db             *repository.DB
	sessionRepo    *repository.SessionRepository
	screeningRepo  *repository.ScreeningRepository
	resourceRepo   *repository.ResourceRepository
	counsellorRepo *repository.CounsellorRepository
	bookingRepo    *repository.BookingRepository
	forumRepo      *repository.ForumRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := repository.NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{}
	cfg.Chat.HistoryWindow = 10
	cfg.Forum.FlagThreshold = 3
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.TokenTTL = 1

	return &testEnv{
		cfg:            cfg,
		db:             db,
		sessionRepo:    repository.NewSessionRepository(db),
		screeningRepo:  repository.NewScreeningRepository(db),
		resourceRepo:   repository.NewResourceRepository(db),
		counsellorRepo: repository.NewCounsellorRepository(db),
		bookingRepo:    repository.NewBookingRepository(db),
		forumRepo:      repository.NewForumRepository(db),
	}
}

func (e *testEnv) chatService() *ChatService {
	return NewChatService(e.cfg, e.sessionRepo, e.screeningRepo, zap.NewNop())
}

func (e *testEnv) screeningService() *ScreeningService {
	return NewScreeningService(e.sessionRepo, e.screeningRepo)
}

func (e *testEnv) forumService() *ForumService {
	return NewForumService(e.cfg, e.forumRepo, e.sessionRepo, zap.NewNop())
}
