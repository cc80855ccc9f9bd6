// Package storage provides abstractions for persistent event storage.
package storage

import (
	"context"
	"errors"

	"github.com/rezkyandriani333-hash/SplitBill-Bayar-Bareng-Hutang-Bersama/internal/models"
)

var (
	// ErrNotFound is returned when a requested event does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateParticipant is returned when an event already has a
	// participant with the given name.
	ErrDuplicateParticipant = errors.New("participant name already in event")
)

// Store defines the interface for event storage operations. This abstraction
// allows swapping storage backends (SQLite, PostgreSQL, etc.) without
// changing the service layer. The balance engine itself never touches the
// store: it operates on the snapshots GetEvent returns.
type Store interface {
	// CreateEvent persists a new event. The event.ID field will be
	// populated by the store if unset.
	CreateEvent(ctx context.Context, event *models.Event) error

	// GetEvent retrieves an event by ID, including its full participant
	// and expense lists, as a single consistent snapshot.
	GetEvent(ctx context.Context, eventID string) (*models.Event, error)

	// ListEvents retrieves all events, newest first, without their
	// participant and expense lists.
	ListEvents(ctx context.Context) ([]*models.Event, error)

	// DeleteEvent removes an event and everything it owns.
	DeleteEvent(ctx context.Context, eventID string) error

	// ResetEvent clears an event's participant and expense lists but
	// keeps the event itself.
	ResetEvent(ctx context.Context, eventID string) error

	// AddParticipant adds a member to an event. Names are unique per
	// event; adding an existing name returns ErrDuplicateParticipant.
	AddParticipant(ctx context.Context, eventID string, p models.Participant) error

	// AddExpense persists a new expense. The expense.ID field will be
	// populated by the store if unset.
	AddExpense(ctx context.Context, expense *models.Expense) error

	// ListExpenses retrieves all expenses of an event in creation order.
	ListExpenses(ctx context.Context, eventID string) ([]models.Expense, error)

	// Close releases any resources held by the store.
	Close() error
}
