// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/settlewise/internal/models"
)

// ErrNotFound is wrapped by store implementations when a group, member, or
// spend event does not exist.
var ErrNotFound = errors.New("not found")

// ErrUnavailable is wrapped by store implementations when the underlying
// database cannot be reached. Callers may retry at their discretion; the
// service layer never retries on its own.
var ErrUnavailable = errors.New("store unavailable")

// Store is the ledger store collaborator: the durable record of groups,
// members, and spend events. This abstraction allows swapping storage
// backends (SQLite, PostgreSQL, etc.) without changing the service layer.
//
// Implementations must guarantee, per group, that spend-event appends are
// sequenced and that ListSpendEvents returns a prefix-consistent total
// order: an event never disappears or changes position on re-read, though
// later appends may extend the sequence.
type Store interface {
	// CreateGroup persists a new group together with its initial members.
	// The group.ID field will be populated by the store.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup retrieves a group with its current member set.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// ListGroups retrieves all groups with their member sets.
	ListGroups(ctx context.Context) ([]*models.Group, error)

	// AddMember adds a member to an existing group. The member.ID field
	// will be populated by the store if empty.
	AddMember(ctx context.Context, groupID string, member *models.Member) error

	// ListMembers retrieves the current members of a group.
	ListMembers(ctx context.Context, groupID string) ([]models.Member, error)

	// AppendSpendEvent durably appends a spend event to the group's log and
	// returns the assigned event id. The append is durable before return.
	AppendSpendEvent(ctx context.Context, event *models.SpendEvent) (string, error)

	// ListSpendEvents retrieves the group's spend events in append order.
	ListSpendEvents(ctx context.Context, groupID string) ([]*models.SpendEvent, error)

	// Close releases any resources held by the store.
	Close() error
}
