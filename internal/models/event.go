package models

// Participant is a member of an event. Names are case-sensitive and unique
// within their event; the email is optional contact information.
type Participant struct {
	// Name is the display name identifying this participant.
	Name string

	// Email is optional and informational only. It plays no role in
	// balance computation.
	Email string
}

// Event is a bounded context holding one participant list and one expense
// list. Events are fully independent of each other: expenses reference
// participants of their own event by name only.
type Event struct {
	// ID is the unique identifier for the event (UUID format).
	ID string

	// Name is the human-readable name for the event (e.g. "Dinner 2026-08-30").
	Name string

	// Participants is the membership list of this event.
	Participants []Participant

	// Expenses is the full expense list of this event, in creation order.
	Expenses []Expense

	// CreatedAt is the Unix timestamp when the event was created.
	CreatedAt int64
}

// MemberNames returns the names of all participants, in stored order.
func (ev *Event) MemberNames() []string {
	names := make([]string, len(ev.Participants))
	for i, p := range ev.Participants {
		names[i] = p.Name
	}
	return names
}

// HasMember reports whether name is a current participant of the event.
func (ev *Event) HasMember(name string) bool {
	for _, p := range ev.Participants {
		if p.Name == name {
			return true
		}
	}
	return false
}
