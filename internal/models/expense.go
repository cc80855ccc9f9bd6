package models

import (
	"errors"
	"fmt"
	"math"
)

// ShareTolerance is the maximum allowed difference between the sum of
// explicit shares and the expense amount.
const ShareTolerance = 0.01

var (
	ErrNonPositiveAmount  = errors.New("expense amount must be greater than zero")
	ErrNoParticipants     = errors.New("expense must have at least one participant")
	ErrDuplicateName      = errors.New("participant listed more than once in expense")
	ErrShareMismatch      = errors.New("explicit shares must sum to the expense amount")
	ErrShareParticipants  = errors.New("explicit shares must cover exactly the expense participants")
	ErrUnknownParticipant = errors.New("name is not a participant of the event")
)

// Expense is a single recorded cost, paid by one participant and shared by
// one or more participants of the same event.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// EventID is the event this expense belongs to.
	EventID string

	// Description is the human-readable label (e.g. "Pizza night").
	Description string

	// Amount is the full cost of the expense. Must be > 0.
	Amount float64

	// Payer is the participant name that paid the full amount.
	Payer string

	// Participants are the names sharing the cost. Must be non-empty.
	Participants []string

	// Shares maps each name in Participants to an absolute amount.
	// A nil (or empty) map means the expense is split equally among
	// Participants; otherwise the shares must sum to Amount within
	// ShareTolerance and the key set must equal Participants exactly.
	Shares map[string]float64

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64
}

// EqualSplit reports whether the expense is divided evenly among its
// participants rather than by explicit shares.
func (e *Expense) EqualSplit() bool {
	return len(e.Shares) == 0
}

// Validate checks the expense against the member list of its event. It is
// the gate that keeps malformed expenses out of the balance engine: the
// engine itself assumes these invariants hold and does not re-validate.
func (e *Expense) Validate(members []string) error {
	if e.Amount <= 0 {
		return ErrNonPositiveAmount
	}
	if len(e.Participants) == 0 {
		return ErrNoParticipants
	}

	memberSet := make(map[string]bool, len(members))
	for _, m := range members {
		memberSet[m] = true
	}
	if !memberSet[e.Payer] {
		return fmt.Errorf("%w: payer %q", ErrUnknownParticipant, e.Payer)
	}
	seen := make(map[string]bool, len(e.Participants))
	for _, name := range e.Participants {
		if !memberSet[name] {
			return fmt.Errorf("%w: %q", ErrUnknownParticipant, name)
		}
		if seen[name] {
			return fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		seen[name] = true
	}

	if e.EqualSplit() {
		return nil
	}

	// Key set of Shares must equal Participants exactly.
	for _, name := range e.Participants {
		if _, ok := e.Shares[name]; !ok {
			return fmt.Errorf("%w: missing share for %q", ErrShareParticipants, name)
		}
	}
	if len(e.Shares) != len(e.Participants) {
		return fmt.Errorf("%w: %d share entries for %d participants",
			ErrShareParticipants, len(e.Shares), len(e.Participants))
	}

	var sum float64
	for _, share := range e.Shares {
		sum += share
	}
	if math.Abs(sum-e.Amount) > ShareTolerance {
		return fmt.Errorf("%w: shares total %.2f, amount is %.2f", ErrShareMismatch, sum, e.Amount)
	}
	return nil
}
