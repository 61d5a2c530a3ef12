package ledger

import (
	"sort"

	"github.com/mmynk/settlewise/internal/models"
)

// ComputeBalances folds the group's spend events into a net balance per
// current member: the payer of each event gains its total, each participant
// loses their share. A participant who is also the payer receives both
// effects and nets correctly.
//
// The fold is commutative: for a fixed multiset of events the result does not
// depend on order. Every event is re-validated against current membership;
// the first failure aborts with *InvalidLedgerError, since a stored event
// that no longer validates means the log is corrupted. Events are never
// skipped.
func ComputeBalances(group *models.Group, events []*models.SpendEvent) (map[string]int64, error) {
	balances := make(map[string]int64, len(group.Members))
	for _, m := range group.Members {
		balances[m.ID] = 0
	}

	for _, event := range events {
		if err := Validate(group, event); err != nil {
			return nil, &InvalidLedgerError{GroupID: group.ID, EventID: event.ID, Cause: err}
		}
		balances[event.PayerID] += event.Total
		for _, share := range event.Shares {
			balances[share.MemberID] -= share.Amount
		}
	}
	return balances, nil
}

// SortedBalances converts a balance map to a slice sorted by member id, for
// stable display and wire encoding.
func SortedBalances(balances map[string]int64) []models.MemberBalance {
	out := make([]models.MemberBalance, 0, len(balances))
	for id, net := range balances {
		out = append(out, models.MemberBalance{MemberID: id, Net: net})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MemberID < out[j].MemberID })
	return out
}
