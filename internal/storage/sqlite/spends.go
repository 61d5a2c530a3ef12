package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/settlewise/internal/models"
)

// AppendSpendEvent durably appends a spend event to the group's log.
// Events are append-only: there is no update or delete path, which keeps
// reads by seq prefix-consistent. SQLite serializes writers, so per-group
// append order needs no extra coordination here.
func (s *SQLiteStore) AppendSpendEvent(ctx context.Context, event *models.SpendEvent) (string, error) {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.CreatedAt == 0 {
		event.CreatedAt = time.Now().Unix()
	}

	var note interface{} = nil
	if event.Note != "" {
		note = event.Note
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", unavailable("append spend event", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO spend_events (id, group_id, payer_id, total, note, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		event.ID, event.GroupID, event.PayerID, event.Total, note, event.CreatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert spend event: %w", err)
	}

	for _, share := range event.Shares {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO spend_shares (event_id, member_id, amount) VALUES (?, ?, ?)",
			event.ID, share.MemberID, share.Amount,
		)
		if err != nil {
			return "", fmt.Errorf("failed to insert share: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", unavailable("commit spend event", err)
	}
	return event.ID, nil
}

// ListSpendEvents retrieves all spend events for a group in append order.
func (s *SQLiteStore) ListSpendEvents(ctx context.Context, groupID string) ([]*models.SpendEvent, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, group_id, payer_id, total, note, created_at
		 FROM spend_events WHERE group_id = ? ORDER BY seq`,
		groupID,
	)
	if err != nil {
		return nil, unavailable("list spend events", err)
	}
	defer rows.Close()

	var events []*models.SpendEvent
	for rows.Next() {
		event := &models.SpendEvent{}
		var note sql.NullString
		if err := rows.Scan(&event.ID, &event.GroupID, &event.PayerID,
			&event.Total, &note, &event.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan spend event: %w", err)
		}
		if note.Valid {
			event.Note = note.String
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate spend events: %w", err)
	}

	for _, event := range events {
		shares, err := s.listShares(ctx, event.ID)
		if err != nil {
			return nil, err
		}
		event.Shares = shares
	}
	return events, nil
}

func (s *SQLiteStore) listShares(ctx context.Context, eventID string) ([]models.ParticipantShare, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT member_id, amount FROM spend_shares WHERE event_id = ? ORDER BY member_id",
		eventID,
	)
	if err != nil {
		return nil, unavailable("list shares", err)
	}
	defer rows.Close()

	var shares []models.ParticipantShare
	for rows.Next() {
		var share models.ParticipantShare
		if err := rows.Scan(&share.MemberID, &share.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan share: %w", err)
		}
		shares = append(shares, share)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shares: %w", err)
	}
	return shares, nil
}
