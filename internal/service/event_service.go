// Package service implements the application layer between the HTTP API and
// the balance engine. It owns all input validation: the calculator package
// only ever sees expense lists this layer has accepted.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/rezkyandriani333-hash/SplitBill-Bayar-Bareng-Hutang-Bersama/internal/calculator"
	"github.com/rezkyandriani333-hash/SplitBill-Bayar-Bareng-Hutang-Bersama/internal/models"
	"github.com/rezkyandriani333-hash/SplitBill-Bayar-Bareng-Hutang-Bersama/internal/storage"
)

// ErrEmptyName is returned when an event or participant name is blank.
var ErrEmptyName = errors.New("name must not be empty")

// EventService manages events and answers balance and settlement queries.
type EventService struct {
	store storage.Store
}

// NewEventService creates a new EventService with the given storage backend.
func NewEventService(store storage.Store) *EventService {
	return &EventService{store: store}
}

// CreateEvent creates a new event with the given name.
func (s *EventService) CreateEvent(ctx context.Context, name string) (*models.Event, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("event: %w", ErrEmptyName)
	}

	event := &models.Event{Name: name}
	if err := s.store.CreateEvent(ctx, event); err != nil {
		slog.Error("CreateEvent failed", "error", err)
		return nil, err
	}

	slog.Info("Event created", "event_id", event.ID, "name", event.Name)
	return event, nil
}

// GetEvent retrieves a full event snapshot by ID.
func (s *EventService) GetEvent(ctx context.Context, eventID string) (*models.Event, error) {
	return s.store.GetEvent(ctx, eventID)
}

// ListEvents retrieves all events, newest first.
func (s *EventService) ListEvents(ctx context.Context) ([]*models.Event, error) {
	return s.store.ListEvents(ctx)
}

// DeleteEvent permanently removes an event with everything it owns.
func (s *EventService) DeleteEvent(ctx context.Context, eventID string) error {
	if err := s.store.DeleteEvent(ctx, eventID); err != nil {
		slog.Error("DeleteEvent failed", "event_id", eventID, "error", err)
		return err
	}
	slog.Info("Event deleted", "event_id", eventID)
	return nil
}

// ResetEvent clears an event's participants and expenses.
func (s *EventService) ResetEvent(ctx context.Context, eventID string) error {
	if err := s.store.ResetEvent(ctx, eventID); err != nil {
		slog.Error("ResetEvent failed", "event_id", eventID, "error", err)
		return err
	}
	slog.Info("Event reset", "event_id", eventID)
	return nil
}

// AddParticipant adds a member to an event. Names are trimmed, must be
// non-empty, and must be unique within the event.
func (s *EventService) AddParticipant(ctx context.Context, eventID, name, email string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("participant: %w", ErrEmptyName)
	}

	p := models.Participant{Name: name, Email: strings.TrimSpace(email)}
	if err := s.store.AddParticipant(ctx, eventID, p); err != nil {
		slog.Error("AddParticipant failed", "event_id", eventID, "name", name, "error", err)
		return err
	}

	slog.Info("Participant added", "event_id", eventID, "name", name)
	return nil
}

// AddExpense validates and records an expense for an event. Every invariant
// the balance engine assumes is enforced here, against the event's current
// member list, before anything is persisted.
func (s *EventService) AddExpense(ctx context.Context, eventID string, expense *models.Expense) error {
	event, err := s.store.GetEvent(ctx, eventID)
	if err != nil {
		return err
	}

	expense.EventID = event.ID
	if err := expense.Validate(event.MemberNames()); err != nil {
		slog.Warn("AddExpense rejected",
			"event_id", eventID,
			"description", expense.Description,
			"error", err,
		)
		return err
	}

	if err := s.store.AddExpense(ctx, expense); err != nil {
		slog.Error("AddExpense failed", "event_id", eventID, "error", err)
		return err
	}

	slog.Info("Expense added",
		"event_id", eventID,
		"expense_id", expense.ID,
		"amount", expense.Amount,
		"payer", expense.Payer,
		"participants_count", len(expense.Participants),
		"equal_split", expense.EqualSplit(),
	)
	return nil
}

// ListExpenses retrieves all expenses of an event in creation order.
func (s *EventService) ListExpenses(ctx context.Context, eventID string) ([]models.Expense, error) {
	return s.store.ListExpenses(ctx, eventID)
}

// Balances computes the net balance report for an event, sorted by
// descending amount (creditors first), ties broken by name.
func (s *EventService) Balances(ctx context.Context, eventID string) ([]models.Balance, error) {
	balances, err := s.balanceMap(ctx, eventID)
	if err != nil {
		return nil, err
	}

	rows := make([]models.Balance, 0, len(balances))
	for name, amount := range balances {
		rows = append(rows, models.Balance{Name: name, Amount: amount})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Amount != rows[j].Amount {
			return rows[i].Amount > rows[j].Amount
		}
		return rows[i].Name < rows[j].Name
	})
	return rows, nil
}

// Settlements computes the minimal-transaction payment plan for an event.
func (s *EventService) Settlements(ctx context.Context, eventID string) ([]models.Settlement, error) {
	balances, err := s.balanceMap(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return calculator.ComputeSettlements(balances), nil
}

// balanceMap fetches an event snapshot and runs the balance aggregator on it.
func (s *EventService) balanceMap(ctx context.Context, eventID string) (map[string]float64, error) {
	event, err := s.store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	balances, err := calculator.ComputeBalances(event.MemberNames(), event.Expenses)
	if err != nil {
		slog.Error("Balance computation failed", "event_id", eventID, "error", err)
		return nil, err
	}
	return balances, nil
}
