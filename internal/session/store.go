// Package session persists the authenticated manager's profile and token
// in a single keyed record on local disk, standing in for the browser
// storage the web client uses. The store is the only writer; readers
// obtain a fresh snapshot on every call.
package session

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"eventdesk/internal/model"
)

const sessionKey = "eventManager"

// Session is the persisted record: the manager profile plus auth token.
type Session struct {
	model.Manager
	Token string `json:"token"`
}

// Store keeps the session in a SQLite database at a fixed path.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// Open opens the store at path and runs migrations.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS sessions (
		key TEXT PRIMARY KEY,
		data TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return nil, fmt.Errorf("migrate session db: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Current returns the persisted session, or nil when none exists.
func (s *Store) Current() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	var data string
	err := s.db.QueryRow("SELECT data FROM sessions WHERE key = ?", sessionKey).Scan(&data)
	if err != nil {
		return nil
	}

	var sess Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil
	}
	return &sess
}

// Persist replaces the stored session.
func (s *Store) Persist(sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO sessions (key, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at`,
		sessionKey, string(data), time.Now(),
	)
	return err
}

// Update applies changes to the stored profile while preserving the token.
func (s *Store) Update(updated model.Manager) error {
	current := s.Current()
	if current == nil {
		return fmt.Errorf("no active session")
	}
	return s.Persist(Session{Manager: updated, Token: current.Token})
}

// Clear removes the stored session.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("DELETE FROM sessions WHERE key = ?", sessionKey)
	return err
}

// Token implements api.TokenSource. Returns "" when logged out.
func (s *Store) Token() string {
	if sess := s.Current(); sess != nil {
		return sess.Token
	}
	return ""
}
