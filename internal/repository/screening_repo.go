package repository

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/campusmind/campusmind/internal/domain"
)

// ScreeningRepository handles screening persistence
type ScreeningRepository struct {
	db *DB
}

// NewScreeningRepository creates a new screening repository
func NewScreeningRepository(db *DB) *ScreeningRepository {
	return &ScreeningRepository{db: db}
}

// Create stores a scored screening submission
func (r *ScreeningRepository) Create(s *domain.Screening) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	s.CreatedAt = time.Now()

	answersJSON, _ := json.Marshal(s.Answers)

	_, err := r.db.Exec(`
		INSERT INTO screenings (id, session_id, type, answers, score, severity_band, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, s.ID, s.SessionID, string(s.Type), string(answersJSON), s.Score, string(s.Band), s.CreatedAt)

	return err
}

// ListBySession retrieves all screenings for a session, newest first.
// The recency filter belongs to the classifier, not the query.
func (r *ScreeningRepository) ListBySession(sessionID string) ([]domain.Screening, error) {
	rows, err := r.db.Query(`
		SELECT id, session_id, type, answers, score, severity_band, created_at
		FROM screenings WHERE session_id = ?
		ORDER BY created_at DESC
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var screenings []domain.Screening
	for rows.Next() {
		var s domain.Screening
		var answersJSON sql.NullString

		if err := rows.Scan(&s.ID, &s.SessionID, &s.Type, &answersJSON,
			&s.Score, &s.Band, &s.CreatedAt); err != nil {
			return nil, err
		}
		if answersJSON.Valid && answersJSON.String != "" {
			json.Unmarshal([]byte(answersJSON.String), &s.Answers)
		}
		screenings = append(screenings, s)
	}

	return screenings, rows.Err()
}

// Count returns the total number of screenings
func (r *ScreeningRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM screenings`).Scan(&count)
	return count, err
}

// CountByBand returns the number of screenings per severity band
func (r *ScreeningRepository) CountByBand() (map[string]int, error) {
	rows, err := r.db.Query(`SELECT severity_band, COUNT(*) FROM screenings GROUP BY severity_band`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var band string
		var n int
		if err := rows.Scan(&band, &n); err != nil {
			return nil, err
		}
		counts[band] = n
	}
	return counts, rows.Err()
}
