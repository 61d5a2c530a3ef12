package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mmynk/settlewise/internal/ledger"
	"github.com/mmynk/settlewise/internal/metrics"
	"github.com/mmynk/settlewise/internal/models"
	"github.com/mmynk/settlewise/internal/storage"
)

// LedgerService orchestrates the ledger engine over the store: it validates
// and appends spend events, and recomputes balances and settlement plans
// from the full event log on every read. It holds no mutable state between
// calls; all consistency comes from the store's append ordering.
type LedgerService struct {
	store storage.Store
}

// NewLedgerService creates a new LedgerService with the given storage backend.
func NewLedgerService(store storage.Store) *LedgerService {
	return &LedgerService{store: store}
}

// RecordSpend validates and appends a spend event, returning the stored
// event id. A nil shares slice requests an equal split across all current
// group members, computed deterministically by the engine. RecordSpend is
// not idempotent: every call appends a new event, even if content-identical
// to a prior one; duplicate submission is a caller concern.
func (s *LedgerService) RecordSpend(ctx context.Context, groupID, payerID string, total int64, shares []models.ParticipantShare, note string) (string, error) {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return "", err
	}

	if shares == nil {
		shares = ledger.EqualShares(total, group.MemberIDs())
	}
	spend := &models.SpendEvent{
		GroupID: groupID,
		PayerID: payerID,
		Total:   total,
		Shares:  shares,
		Note:    note,
	}
	if err := ledger.Validate(group, spend); err != nil {
		metrics.LedgerErrors.WithLabelValues("validation").Inc()
		slog.Warn("RecordSpend rejected", "group_id", groupID, "payer_id", payerID, "error", err)
		return "", err
	}

	id, err := s.store.AppendSpendEvent(ctx, spend)
	if err != nil {
		slog.Error("RecordSpend append failed", "group_id", groupID, "error", err)
		return "", err
	}
	metrics.SpendsRecorded.Inc()
	slog.Info("Spend recorded", "group_id", groupID, "event_id", id, "payer_id", payerID, "total", total)
	return id, nil
}

// GetBalances folds the group's full event log into per-member net balances,
// sorted by member id.
func (s *LedgerService) GetBalances(ctx context.Context, groupID string) ([]models.MemberBalance, error) {
	balances, err := s.computeBalances(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return ledger.SortedBalances(balances), nil
}

// GetSettlementPlan computes current balances and the transfers that settle
// them.
func (s *LedgerService) GetSettlementPlan(ctx context.Context, groupID string) (*models.SettlementPlan, error) {
	balances, err := s.computeBalances(ctx, groupID)
	if err != nil {
		return nil, err
	}

	transfers, err := ledger.Plan(balances)
	if err != nil {
		metrics.LedgerErrors.WithLabelValues("unbalanced_ledger").Inc()
		slog.Error("Settlement planning failed", "group_id", groupID, "error", err)
		return nil, err
	}
	metrics.PlanTransfers.Observe(float64(len(transfers)))
	slog.Info("Settlement plan computed", "group_id", groupID, "transfers", len(transfers))
	return &models.SettlementPlan{GroupID: groupID, Transfers: transfers}, nil
}

// ListSpends returns the group's spend history in append order.
func (s *LedgerService) ListSpends(ctx context.Context, groupID string) ([]*models.SpendEvent, error) {
	if _, err := s.store.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}
	return s.store.ListSpendEvents(ctx, groupID)
}

func (s *LedgerService) computeBalances(ctx context.Context, groupID string) (map[string]int64, error) {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	events, err := s.store.ListSpendEvents(ctx, groupID)
	if err != nil {
		return nil, err
	}

	balances, err := ledger.ComputeBalances(group, events)
	if err != nil {
		var lerr *ledger.InvalidLedgerError
		if errors.As(err, &lerr) {
			metrics.LedgerErrors.WithLabelValues("invalid_ledger").Inc()
			// A corrupted log is fatal for the group's reads; surface it
			// loudly, never repair or skip.
			slog.Error("Ledger corrupted",
				"group_id", lerr.GroupID,
				"event_id", lerr.EventID,
				"error", lerr.Cause,
			)
		}
		return nil, err
	}
	metrics.BalanceComputations.Inc()
	return balances, nil
}
