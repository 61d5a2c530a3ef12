package models

// MemberBalance is one member's derived net position in a group.
// Balances are recomputed from the spend log on every read, never stored.
type MemberBalance struct {
	// MemberID references the group member.
	MemberID string

	// Net is the signed balance in minor units: positive means the member
	// is owed money, negative means the member owes others. Balances of a
	// group always sum to zero.
	Net int64
}

// Transfer is a single settling payment between two members.
type Transfer struct {
	// FromID is the debtor making the payment.
	FromID string

	// ToID is the creditor receiving the payment.
	ToID string

	// Amount is the payment amount in minor units. Always positive;
	// a zero transfer is never emitted.
	Amount int64
}

// SettlementPlan is an ordered sequence of transfers that drives every
// member's balance to exactly zero. The order is a valid execution order.
type SettlementPlan struct {
	GroupID   string
	Transfers []Transfer
}
