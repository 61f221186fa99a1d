package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/campusmind/campusmind/internal/domain"
)

// SessionRepository handles session and message persistence
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session
func (r *SessionRepository) Create(session *domain.Session) error {
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	if session.Language == "" {
		session.Language = "en"
	}
	now := time.Now()
	session.CreatedAt = now
	session.UpdatedAt = now

	_, err := r.db.Exec(`
		INSERT INTO sessions (id, language, created_at, updated_at)
		VALUES (?, ?, ?, ?)
	`, session.ID, session.Language, session.CreatedAt, session.UpdatedAt)

	return err
}

// Get retrieves a session by ID
func (r *SessionRepository) Get(id string) (*domain.Session, error) {
	session := &domain.Session{}

	err := r.db.QueryRow(`
		SELECT id, language, created_at, updated_at
		FROM sessions WHERE id = ?
	`, id).Scan(&session.ID, &session.Language, &session.CreatedAt, &session.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return session, nil
}

// Touch updates a session's updated_at timestamp
func (r *SessionRepository) Touch(id string) error {
	_, err := r.db.Exec(`UPDATE sessions SET updated_at = ? WHERE id = ?`, time.Now(), id)
	return err
}

// CreateMessage creates a new message
func (r *SessionRepository) CreateMessage(message *domain.ChatMessage) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	message.CreatedAt = time.Now()

	_, err := r.db.Exec(`
		INSERT INTO messages (id, session_id, sender, text, category, severity, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, message.ID, message.SessionID, string(message.Sender), message.Text,
		string(message.Category), string(message.Severity), message.CreatedAt)

	return err
}

// RecentMessages retrieves the most recent n messages for a session,
// newest first.
func (r *SessionRepository) RecentMessages(sessionID string, n int) ([]domain.ChatMessage, error) {
	rows, err := r.db.Query(`
		SELECT id, session_id, sender, text, category, severity, created_at
		FROM messages WHERE session_id = ?
		ORDER BY created_at DESC
		LIMIT ?
	`, sessionID, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMessages(rows)
}

// GetMessages retrieves all messages for a session, oldest first
func (r *SessionRepository) GetMessages(sessionID string) ([]domain.ChatMessage, error) {
	rows, err := r.db.Query(`
		SELECT id, session_id, sender, text, category, severity, created_at
		FROM messages WHERE session_id = ?
		ORDER BY created_at ASC
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMessages(rows)
}

func scanMessages(rows *sql.Rows) ([]domain.ChatMessage, error) {
	var messages []domain.ChatMessage
	for rows.Next() {
		var m domain.ChatMessage
		var category, severity sql.NullString

		if err := rows.Scan(&m.ID, &m.SessionID, &m.Sender, &m.Text,
			&category, &severity, &m.CreatedAt); err != nil {
			return nil, err
		}
		if category.Valid {
			m.Category = domain.Category(category.String)
		}
		if severity.Valid {
			m.Severity = domain.Severity(severity.String)
		}
		messages = append(messages, m)
	}

	return messages, rows.Err()
}

// CountSessions returns the total number of sessions
func (r *SessionRepository) CountSessions() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM sessions`).Scan(&count)
	return count, err
}

// CountMessages returns the total number of user messages
func (r *SessionRepository) CountMessages() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM messages WHERE sender = 'user'`).Scan(&count)
	return count, err
}

// CountByCategory returns the number of user messages per category
func (r *SessionRepository) CountByCategory() (map[string]int, error) {
	rows, err := r.db.Query(`
		SELECT category, COUNT(*) FROM messages
		WHERE sender = 'user' AND category != ''
		GROUP BY category
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var category string
		var n int
		if err := rows.Scan(&category, &n); err != nil {
			return nil, err
		}
		counts[category] = n
	}
	return counts, rows.Err()
}
