// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/rezkyandriani333-hash/SplitBill-Bayar-Bareng-Hutang-Bersama/internal/models"
	"github.com/rezkyandriani333-hash/SplitBill-Bayar-Bareng-Hutang-Bersama/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database with pure Go driver
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Run migrations
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateEvent persists a new event to the database.
func (s *SQLiteStore) CreateEvent(ctx context.Context, event *models.Event) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.CreatedAt == 0 {
		event.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO events (id, name, created_at) VALUES (?, ?, ?)",
		event.ID, event.Name, event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

// GetEvent retrieves an event by ID, including participants and expenses.
// Everything is read inside one read-only transaction so concurrent callers
// always see a consistent snapshot of the event.
func (s *SQLiteStore) GetEvent(ctx context.Context, eventID string) (*models.Event, error) {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	event := &models.Event{}
	err = tx.QueryRowContext(ctx,
		"SELECT id, name, created_at FROM events WHERE id = ?",
		eventID,
	).Scan(&event.ID, &event.Name, &event.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("event %s: %w", eventID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	event.Participants, err = listParticipants(ctx, tx, eventID)
	if err != nil {
		return nil, err
	}

	event.Expenses, err = listExpenses(ctx, tx, eventID)
	if err != nil {
		return nil, err
	}

	return event, nil
}

// ListEvents retrieves all events without their participant and expense lists.
func (s *SQLiteStore) ListEvents(ctx context.Context) ([]*models.Event, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, created_at FROM events ORDER BY created_at DESC, id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		event := &models.Event{}
		if err := rows.Scan(&event.ID, &event.Name, &event.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}
	return events, nil
}

// DeleteEvent removes an event; participants and expenses cascade away.
func (s *SQLiteStore) DeleteEvent(ctx context.Context, eventID string) error {
	if err := s.eventExists(ctx, eventID); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, "DELETE FROM events WHERE id = ?", eventID); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

// ResetEvent clears an event's participants and expenses but keeps the event.
func (s *SQLiteStore) ResetEvent(ctx context.Context, eventID string) error {
	if err := s.eventExists(ctx, eventID); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM expenses WHERE event_id = ?", eventID); err != nil {
		return fmt.Errorf("failed to delete expenses: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM participants WHERE event_id = ?", eventID); err != nil {
		return fmt.Errorf("failed to delete participants: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// AddParticipant adds a member to an event, enforcing name uniqueness.
func (s *SQLiteStore) AddParticipant(ctx context.Context, eventID string, p models.Participant) error {
	if err := s.eventExists(ctx, eventID); err != nil {
		return err
	}

	var exists int
	err := s.db.QueryRowContext(ctx,
		"SELECT 1 FROM participants WHERE event_id = ? AND name = ?",
		eventID, p.Name,
	).Scan(&exists)
	if err == nil {
		return fmt.Errorf("%q: %w", p.Name, storage.ErrDuplicateParticipant)
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("failed to check participant existence: %w", err)
	}

	var email interface{} = nil
	if p.Email != "" {
		email = p.Email
	}
	_, err = s.db.ExecContext(ctx,
		"INSERT INTO participants (event_id, name, email) VALUES (?, ?, ?)",
		eventID, p.Name, email,
	)
	if err != nil {
		return fmt.Errorf("failed to insert participant: %w", err)
	}
	return nil
}

// eventExists returns storage.ErrNotFound when the event is missing.
func (s *SQLiteStore) eventExists(ctx context.Context, eventID string) error {
	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM events WHERE id = ?", eventID).Scan(&exists)
	if err == sql.ErrNoRows {
		return fmt.Errorf("event %s: %w", eventID, storage.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to check event existence: %w", err)
	}
	return nil
}

// listParticipants reads an event's members inside the given transaction.
func listParticipants(ctx context.Context, tx *sql.Tx, eventID string) ([]models.Participant, error) {
	rows, err := tx.QueryContext(ctx,
		"SELECT name, email FROM participants WHERE event_id = ? ORDER BY name",
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}
	defer rows.Close()

	var participants []models.Participant
	for rows.Next() {
		var p models.Participant
		var email sql.NullString
		if err := rows.Scan(&p.Name, &email); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		if email.Valid {
			p.Email = email.String
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}
	return participants, nil
}
