package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a row does not exist.
var ErrNotFound = errors.New("storage: not found")

// Session is a row in the sessions table.
type Session struct {
	SessionID string
	Size      int
	CreatedAt time.Time
}

// SessionRepository provides access to sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session for a cube size and returns its ID.
func (r *SessionRepository) Create(size int) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO sessions (session_id, size, created_at)
		VALUES (?, ?, ?)
	`, id, size, createdAt.Format(time.RFC3339Nano))
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return id, nil
}

// Get retrieves a session by ID.
func (r *SessionRepository) Get(sessionID string) (*Session, error) {
	var s Session
	var createdAtStr string

	err := r.db.QueryRow(`
		SELECT session_id, size, created_at
		FROM sessions
		WHERE session_id = ?
	`, sessionID).Scan(&s.SessionID, &s.Size, &createdAtStr)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	s.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAtStr)
	return &s, nil
}

// SetSize records a size change for the session.
func (r *SessionRepository) SetSize(sessionID string, size int) error {
	res, err := r.db.Exec("UPDATE sessions SET size = ? WHERE session_id = ?", size, sessionID)
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete deletes a session and its solves (cascading).
func (r *SessionRepository) Delete(sessionID string) error {
	_, err := r.db.Exec("DELETE FROM sessions WHERE session_id = ?", sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
