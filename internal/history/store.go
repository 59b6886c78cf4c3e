// Package history persists interaction records in a local SQLite database.
package history

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Pablo-Gaspar/baka/internal/errors"
)

// Record is one interaction: what the user asked, what the assistant decided,
// and what came back. Timestamp and ID are assigned by the store.
type Record struct {
	ID            int64
	Timestamp     time.Time
	UserInput     string
	AgentAction   string
	ActionDetails string
	ToolOutput    string
	AgentResponse string
	Success       bool
}

// Store is an append-mostly log backed by a single SQLite file.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS interaction_history (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
    user_input TEXT NOT NULL,
    agent_action TEXT,
    action_details TEXT,
    tool_output TEXT,
    agent_response TEXT,
    success BOOLEAN
);`

// Open creates or opens the database at path, creating parent directories as
// needed, and ensures the schema exists.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.HistoryUnavailable(path, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.HistoryUnavailable(path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.HistoryUnavailable(path, err)
	}

	return &Store{db: db}, nil
}

// Add appends one record. The database assigns the timestamp.
func (s *Store) Add(rec Record) error {
	_, err := s.db.Exec(
		`INSERT INTO interaction_history
		 (user_input, agent_action, action_details, tool_output, agent_response, success)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.UserInput, rec.AgentAction, rec.ActionDetails,
		rec.ToolOutput, rec.AgentResponse, rec.Success,
	)
	return err
}

// Recent returns up to limit records, newest first.
func (s *Store) Recent(limit int) ([]Record, error) {
	rows, err := s.db.Query(
		`SELECT id, timestamp, user_input, agent_action, action_details,
		        tool_output, agent_response, success
		 FROM interaction_history
		 ORDER BY timestamp DESC, id DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(
			&rec.ID, &rec.Timestamp, &rec.UserInput, &rec.AgentAction,
			&rec.ActionDetails, &rec.ToolOutput, &rec.AgentResponse, &rec.Success,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
