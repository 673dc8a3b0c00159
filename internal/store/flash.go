package store

import (
	"database/sql"
	"fmt"
)

// FlashStore holds one-shot messages pending for a session. A message is
// written before a redirect and consumed by the next render that drains
// its category.
type FlashStore struct {
	db *sql.DB
}

func NewFlashStore(db *sql.DB) *FlashStore {
	return &FlashStore{db: db}
}

// Push appends a message under the category for the session.
func (s *FlashStore) Push(sessionID int64, category, message string) error {
	_, err := s.db.Exec(
		`INSERT INTO flash_messages (session_id, category, message) VALUES (?, ?, ?)`,
		sessionID, category, message,
	)
	if err != nil {
		return fmt.Errorf("insert flash message: %w", err)
	}
	return nil
}

// Drain returns all pending messages under the category in insertion order
// and removes them. Read and delete happen in one transaction, so a
// message is observed exactly once.
func (s *FlashStore) Drain(sessionID int64, category string) ([]string, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin drain: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.Query(
		`SELECT message FROM flash_messages WHERE session_id = ? AND category = ? ORDER BY id`,
		sessionID, category,
	)
	if err != nil {
		return nil, fmt.Errorf("select flash messages: %w", err)
	}
	var messages []string
	for rows.Next() {
		var msg string
		if err := rows.Scan(&msg); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan flash message: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterate flash messages: %w", err)
	}
	rows.Close()

	if len(messages) > 0 {
		_, err = tx.Exec(
			`DELETE FROM flash_messages WHERE session_id = ? AND category = ?`,
			sessionID, category,
		)
		if err != nil {
			return nil, fmt.Errorf("delete flash messages: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit drain: %w", err)
	}
	return messages, nil
}
