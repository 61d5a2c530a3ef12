package ledger

import (
	"sort"

	"github.com/mmynk/settlewise/internal/models"
)

// party is one side of the matching loop; amount is a positive magnitude
// regardless of whether the member is a debtor or a creditor.
type party struct {
	id     string
	amount int64
}

// Plan produces transfers that drive every balance to exactly zero.
//
// Greedy matching: repeatedly pair the debtor with the largest outstanding
// debt against the creditor with the largest outstanding credit and transfer
// min(debt, credit). Ties on magnitude are broken by ascending member id, so
// identical balances always yield an identical transfer sequence. Transfers
// are emitted in settlement order, which is also a valid execution order.
//
// Greedy does not always reach the true minimum transfer count (general
// minimization is NP-hard), but it never exceeds one fewer transfer than the
// number of non-zero balances and is fully deterministic.
//
// Plan fails with *UnbalancedLedgerError if the balances do not sum to zero;
// that indicates upstream corruption, not caller error.
func Plan(balances map[string]int64) ([]models.Transfer, error) {
	ids := make([]string, 0, len(balances))
	for id := range balances {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var sum int64
	var debtors, creditors []party
	for _, id := range ids {
		net := balances[id]
		sum += net
		switch {
		case net < 0:
			debtors = append(debtors, party{id: id, amount: -net})
		case net > 0:
			creditors = append(creditors, party{id: id, amount: net})
		}
	}
	if sum != 0 {
		return nil, &UnbalancedLedgerError{Residual: sum}
	}

	var transfers []models.Transfer
	for len(debtors) > 0 && len(creditors) > 0 {
		di := largest(debtors)
		ci := largest(creditors)

		amount := debtors[di].amount
		if creditors[ci].amount < amount {
			amount = creditors[ci].amount
		}

		transfers = append(transfers, models.Transfer{
			FromID: debtors[di].id,
			ToID:   creditors[ci].id,
			Amount: amount,
		})

		debtors[di].amount -= amount
		creditors[ci].amount -= amount
		if debtors[di].amount == 0 {
			debtors = append(debtors[:di], debtors[di+1:]...)
		}
		if creditors[ci].amount == 0 {
			creditors = append(creditors[:ci], creditors[ci+1:]...)
		}
	}
	return transfers, nil
}

// largest returns the index of the party with the greatest amount. Parties
// are kept in ascending id order, so the strict comparison keeps the
// smallest id among ties.
func largest(parties []party) int {
	best := 0
	for i := 1; i < len(parties); i++ {
		if parties[i].amount > parties[best].amount {
			best = i
		}
	}
	return best
}
