package models

// ParticipantShare is one participant's owed portion of a spend.
type ParticipantShare struct {
	// MemberID references a current group member.
	MemberID string

	// Amount is the owed amount in minor units. Shares of a stored
	// SpendEvent always sum exactly to the event's total.
	Amount int64
}

// SpendEvent represents a single recorded expense: who paid, how much,
// and how it is shared. Events are append-only; a correction is a new
// compensating event, never an in-place edit.
type SpendEvent struct {
	// ID is the unique identifier for the event (UUID format).
	ID string

	// GroupID is the group this spend belongs to.
	GroupID string

	// PayerID is the member who paid the total. Must be a current group
	// member at record time.
	PayerID string

	// Total is the full spend amount in minor units. Always positive.
	Total int64

	// Shares is how the total is split among participants. Order carries
	// no meaning. Invariant: sum(Shares[i].Amount) == Total.
	Shares []ParticipantShare

	// Note is an optional description for the spend.
	Note string

	// CreatedAt is the Unix timestamp when the event was recorded.
	CreatedAt int64
}
