package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/campusmind/campusmind/internal/domain"
)

// ResourceRepository handles resource persistence
type ResourceRepository struct {
	db *DB
}

// NewResourceRepository creates a new resource repository
func NewResourceRepository(db *DB) *ResourceRepository {
	return &ResourceRepository{db: db}
}

// Create creates a new resource
func (r *ResourceRepository) Create(res *domain.Resource) error {
	if res.ID == "" {
		res.ID = uuid.New().String()
	}
	now := time.Now()
	res.CreatedAt = now
	res.UpdatedAt = now

	tagsJSON, _ := json.Marshal(res.Tags)

	_, err := r.db.Exec(`
		INSERT INTO resources (id, title, description, category, kind, url, language, tags, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, res.ID, res.Title, res.Description, string(res.Category), string(res.Kind),
		res.URL, res.Language, string(tagsJSON), res.CreatedAt, res.UpdatedAt)

	return err
}

// Get retrieves a resource by ID
func (r *ResourceRepository) Get(id string) (*domain.Resource, error) {
	row := r.db.QueryRow(`
		SELECT id, title, description, category, kind, url, language, tags, created_at, updated_at
		FROM resources WHERE id = ?
	`, id)

	res, err := scanResource(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return res, err
}

// List retrieves resources, optionally filtered by category and language
func (r *ResourceRepository) List(category, language string) ([]*domain.Resource, error) {
	query := `
		SELECT id, title, description, category, kind, url, language, tags, created_at, updated_at
		FROM resources WHERE 1=1`
	var args []any
	if category != "" {
		query += ` AND category = ?`
		args = append(args, category)
	}
	if language != "" {
		query += ` AND language = ?`
		args = append(args, language)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resources []*domain.Resource
	for rows.Next() {
		res, err := scanResource(rows.Scan)
		if err != nil {
			return nil, err
		}
		resources = append(resources, res)
	}

	return resources, rows.Err()
}

// Update updates a resource
func (r *ResourceRepository) Update(res *domain.Resource) error {
	res.UpdatedAt = time.Now()
	tagsJSON, _ := json.Marshal(res.Tags)

	result, err := r.db.Exec(`
		UPDATE resources SET title = ?, description = ?, category = ?, kind = ?, url = ?, language = ?, tags = ?, updated_at = ?
		WHERE id = ?
	`, res.Title, res.Description, string(res.Category), string(res.Kind),
		res.URL, res.Language, string(tagsJSON), res.UpdatedAt, res.ID)

	if err != nil {
		return err
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("resource %s: %w", res.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete deletes a resource
func (r *ResourceRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM resources WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("resource %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// Count returns the total number of resources
func (r *ResourceRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM resources`).Scan(&count)
	return count, err
}

func scanResource(scan func(dest ...any) error) (*domain.Resource, error) {
	res := &domain.Resource{}
	var tagsJSON sql.NullString

	if err := scan(&res.ID, &res.Title, &res.Description, &res.Category, &res.Kind,
		&res.URL, &res.Language, &tagsJSON, &res.CreatedAt, &res.UpdatedAt); err != nil {
		return nil, err
	}

	if tagsJSON.Valid && tagsJSON.String != "" {
		json.Unmarshal([]byte(tagsJSON.String), &res.Tags)
	}

	return res, nil
}
