// Package ledger implements the group expense engine: spend validation,
// balance accumulation over the append-only spend log, and greedy settlement
// planning. All arithmetic is in integer minor units; every function here is
// pure and safe for concurrent use.
package ledger

import (
	"sort"

	"github.com/mmynk/settlewise/internal/models"
)

// EqualShares computes a deterministic equal split of total among the given
// members. Members are considered in ascending id order; each gets total/N,
// and the remainder is distributed one minor unit at a time to the first
// total%N members. The returned shares always sum exactly to total.
//
// total must be positive; callers that skip Validate get no guarantees
// otherwise.
func EqualShares(total int64, memberIDs []string) []models.ParticipantShare {
	n := int64(len(memberIDs))
	if n == 0 {
		return nil
	}

	ids := make([]string, len(memberIDs))
	copy(ids, memberIDs)
	sort.Strings(ids)

	base := total / n
	remainder := total % n

	shares := make([]models.ParticipantShare, len(ids))
	for i, id := range ids {
		amount := base
		if int64(i) < remainder {
			amount++
		}
		shares[i] = models.ParticipantShare{MemberID: id, Amount: amount}
	}
	return shares
}

// Validate checks a proposed spend event for structural correctness against
// the group's current membership. It is pure: no side effects, no I/O.
//
// Checks, in order: positive total, non-empty participant set, payer is a
// member, every participant is a member, shares sum exactly to the total
// (integer equality, no tolerance).
func Validate(group *models.Group, spend *models.SpendEvent) error {
	if spend.Total <= 0 {
		return validationErrorf(CodeNonPositiveAmount, "total must be positive, got %d", spend.Total)
	}
	if len(spend.Shares) == 0 {
		return validationErrorf(CodeEmptyParticipants, "spend has no participants")
	}
	if !group.HasMember(spend.PayerID) {
		return validationErrorf(CodeUnknownPayer, "payer %s is not a member of group %s", spend.PayerID, group.ID)
	}

	var sum int64
	for _, share := range spend.Shares {
		if !group.HasMember(share.MemberID) {
			return validationErrorf(CodeUnknownParticipant, "participant %s is not a member of group %s", share.MemberID, group.ID)
		}
		sum += share.Amount
	}
	if sum != spend.Total {
		return validationErrorf(CodeShareMismatch, "shares sum to %d, total is %d", sum, spend.Total)
	}
	return nil
}
