package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/campusmind/campusmind/internal/domain"
)

// ForumRepository handles peer-support post and reply persistence
type ForumRepository struct {
	db *DB
}

// NewForumRepository creates a new forum repository
func NewForumRepository(db *DB) *ForumRepository {
	return &ForumRepository{db: db}
}

// CreatePost stores a new post
func (r *ForumRepository) CreatePost(p *domain.Post) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.CreatedAt = time.Now()

	_, err := r.db.Exec(`
		INSERT INTO posts (id, session_id, title, body, category, status, flag_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.SessionID, p.Title, p.Body, string(p.Category), string(p.Status), p.FlagCount, p.CreatedAt)

	return err
}

// GetPost retrieves a post by ID, replies not included
func (r *ForumRepository) GetPost(id string) (*domain.Post, error) {
	p := &domain.Post{}
	err := r.db.QueryRow(`
		SELECT id, session_id, title, body, category, status, flag_count, created_at
		FROM posts WHERE id = ?
	`, id).Scan(&p.ID, &p.SessionID, &p.Title, &p.Body, &p.Category, &p.Status, &p.FlagCount, &p.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return p, nil
}

// ListPosts retrieves posts with the given status, newest first
func (r *ForumRepository) ListPosts(status domain.ModerationStatus) ([]*domain.Post, error) {
	rows, err := r.db.Query(`
		SELECT id, session_id, title, body, category, status, flag_count, created_at
		FROM posts WHERE status = ?
		ORDER BY created_at DESC
	`, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*domain.Post
	for rows.Next() {
		p := &domain.Post{}
		if err := rows.Scan(&p.ID, &p.SessionID, &p.Title, &p.Body, &p.Category,
			&p.Status, &p.FlagCount, &p.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}

	return posts, rows.Err()
}

// UpdatePostStatus sets a post's moderation status
func (r *ForumRepository) UpdatePostStatus(id string, status domain.ModerationStatus) error {
	result, err := r.db.Exec(`UPDATE posts SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return err
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// IncrementFlagCount bumps a post's flag count and returns the new value
func (r *ForumRepository) IncrementFlagCount(id string) (int, error) {
	result, err := r.db.Exec(`UPDATE posts SET flag_count = flag_count + 1 WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		return 0, fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
	}

	var count int
	err = r.db.QueryRow(`SELECT flag_count FROM posts WHERE id = ?`, id).Scan(&count)
	return count, err
}

// CreateReply stores a new reply
func (r *ForumRepository) CreateReply(rep *domain.Reply) error {
	if rep.ID == "" {
		rep.ID = uuid.New().String()
	}
	rep.CreatedAt = time.Now()

	_, err := r.db.Exec(`
		INSERT INTO replies (id, post_id, session_id, body, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, rep.ID, rep.PostID, rep.SessionID, rep.Body, string(rep.Status), rep.CreatedAt)

	return err
}

// ListReplies retrieves replies with the given status for a post, oldest first
func (r *ForumRepository) ListReplies(postID string, status domain.ModerationStatus) ([]*domain.Reply, error) {
	rows, err := r.db.Query(`
		SELECT id, post_id, session_id, body, status, created_at
		FROM replies WHERE post_id = ? AND status = ?
		ORDER BY created_at ASC
	`, postID, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var replies []*domain.Reply
	for rows.Next() {
		rep := &domain.Reply{}
		if err := rows.Scan(&rep.ID, &rep.PostID, &rep.SessionID, &rep.Body,
			&rep.Status, &rep.CreatedAt); err != nil {
			return nil, err
		}
		replies = append(replies, rep)
	}

	return replies, rows.Err()
}

// CountPendingPosts returns the number of posts awaiting moderation
func (r *ForumRepository) CountPendingPosts() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM posts WHERE status = 'pending'`).Scan(&count)
	return count, err
}
