package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/campusmind/campusmind/internal/domain"
)

// BookingRepository handles booking persistence
type BookingRepository struct {
	db *DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create creates a new booking
func (r *BookingRepository) Create(b *domain.Booking) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now

	_, err := r.db.Exec(`
		INSERT INTO bookings (id, session_id, counsellor_id, slot_start, slot_end, status, note, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, b.ID, b.SessionID, b.CounsellorID, b.SlotStart, b.SlotEnd,
		string(b.Status), b.Note, b.CreatedAt, b.UpdatedAt)

	return err
}

// Get retrieves a booking by ID
func (r *BookingRepository) Get(id string) (*domain.Booking, error) {
	b := &domain.Booking{}
	var note sql.NullString

	err := r.db.QueryRow(`
		SELECT id, session_id, counsellor_id, slot_start, slot_end, status, note, created_at, updated_at
		FROM bookings WHERE id = ?
	`, id).Scan(&b.ID, &b.SessionID, &b.CounsellorID, &b.SlotStart, &b.SlotEnd,
		&b.Status, &note, &b.CreatedAt, &b.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if note.Valid {
		b.Note = note.String
	}

	return b, nil
}

// ListBySession retrieves all bookings made from a session, newest first
func (r *BookingRepository) ListBySession(sessionID string) ([]*domain.Booking, error) {
	return r.list(`WHERE session_id = ?`, sessionID)
}

// ListByCounsellor retrieves all bookings for a counsellor, newest first
func (r *BookingRepository) ListByCounsellor(counsellorID string) ([]*domain.Booking, error) {
	return r.list(`WHERE counsellor_id = ?`, counsellorID)
}

func (r *BookingRepository) list(where string, args ...any) ([]*domain.Booking, error) {
	rows, err := r.db.Query(`
		SELECT id, session_id, counsellor_id, slot_start, slot_end, status, note, created_at, updated_at
		FROM bookings `+where+` ORDER BY created_at DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*domain.Booking
	for rows.Next() {
		b := &domain.Booking{}
		var note sql.NullString

		if err := rows.Scan(&b.ID, &b.SessionID, &b.CounsellorID, &b.SlotStart, &b.SlotEnd,
			&b.Status, &note, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		if note.Valid {
			b.Note = note.String
		}
		bookings = append(bookings, b)
	}

	return bookings, rows.Err()
}

// UpdateStatus updates a booking's status
func (r *BookingRepository) UpdateStatus(id string, status domain.BookingStatus) error {
	result, err := r.db.Exec(`
		UPDATE bookings SET status = ?, updated_at = ? WHERE id = ?
	`, string(status), time.Now(), id)
	if err != nil {
		return err
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("booking %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// Count returns the total number of bookings
func (r *BookingRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM bookings`).Scan(&count)
	return count, err
}
