package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/campusmind/campusmind/internal/domain"
)

// CounsellorRepository handles counsellor persistence
type CounsellorRepository struct {
	db *DB
}

// NewCounsellorRepository creates a new counsellor repository
func NewCounsellorRepository(db *DB) *CounsellorRepository {
	return &CounsellorRepository{db: db}
}

// Create creates a new counsellor
func (r *CounsellorRepository) Create(c *domain.Counsellor) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	specialtiesJSON, _ := json.Marshal(c.Specialties)
	languagesJSON, _ := json.Marshal(c.Languages)

	_, err := r.db.Exec(`
		INSERT INTO counsellors (id, name, email, specialties, languages, available, admin, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, c.ID, c.Name, c.Email, string(specialtiesJSON), string(languagesJSON),
		c.Available, c.Admin, c.PasswordHash, c.CreatedAt, c.UpdatedAt)

	return err
}

// Get retrieves a counsellor by ID
func (r *CounsellorRepository) Get(id string) (*domain.Counsellor, error) {
	row := r.db.QueryRow(`
		SELECT id, name, email, specialties, languages, available, admin, password_hash, created_at, updated_at
		FROM counsellors WHERE id = ?
	`, id)

	c, err := scanCounsellor(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return c, err
}

// GetByEmail retrieves a counsellor by email
func (r *CounsellorRepository) GetByEmail(email string) (*domain.Counsellor, error) {
	row := r.db.QueryRow(`
		SELECT id, name, email, specialties, languages, available, admin, password_hash, created_at, updated_at
		FROM counsellors WHERE email = ?
	`, email)

	c, err := scanCounsellor(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return c, err
}

// ListAvailable retrieves counsellors open for booking
func (r *CounsellorRepository) ListAvailable() ([]*domain.Counsellor, error) {
	return r.list(`WHERE available = 1`)
}

// List retrieves all counsellors
func (r *CounsellorRepository) List() ([]*domain.Counsellor, error) {
	return r.list(``)
}

func (r *CounsellorRepository) list(where string) ([]*domain.Counsellor, error) {
	rows, err := r.db.Query(`
		SELECT id, name, email, specialties, languages, available, admin, password_hash, created_at, updated_at
		FROM counsellors ` + where + ` ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counsellors []*domain.Counsellor
	for rows.Next() {
		c, err := scanCounsellor(rows.Scan)
		if err != nil {
			return nil, err
		}
		counsellors = append(counsellors, c)
	}

	return counsellors, rows.Err()
}

// Update updates a counsellor
func (r *CounsellorRepository) Update(c *domain.Counsellor) error {
	c.UpdatedAt = time.Now()
	specialtiesJSON, _ := json.Marshal(c.Specialties)
	languagesJSON, _ := json.Marshal(c.Languages)

	result, err := r.db.Exec(`
		UPDATE counsellors SET name = ?, email = ?, specialties = ?, languages = ?, available = ?, admin = ?, password_hash = ?, updated_at = ?
		WHERE id = ?
	`, c.Name, c.Email, string(specialtiesJSON), string(languagesJSON),
		c.Available, c.Admin, c.PasswordHash, c.UpdatedAt, c.ID)

	if err != nil {
		return err
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("counsellor %s: %w", c.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete deletes a counsellor
func (r *CounsellorRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM counsellors WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("counsellor %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func scanCounsellor(scan func(dest ...any) error) (*domain.Counsellor, error) {
	c := &domain.Counsellor{}
	var specialtiesJSON, languagesJSON sql.NullString

	if err := scan(&c.ID, &c.Name, &c.Email, &specialtiesJSON, &languagesJSON,
		&c.Available, &c.Admin, &c.PasswordHash, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}

	if specialtiesJSON.Valid && specialtiesJSON.String != "" {
		json.Unmarshal([]byte(specialtiesJSON.String), &c.Specialties)
	}
	if languagesJSON.Valid && languagesJSON.String != "" {
		json.Unmarshal([]byte(languagesJSON.String), &c.Languages)
	}

	return c, nil
}
