package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmynk/settlewise/internal/models"
	"github.com/mmynk/settlewise/internal/storage"
)

// GroupService manages groups and their membership.
type GroupService struct {
	store storage.Store
}

// NewGroupService creates a new GroupService with the given storage backend.
func NewGroupService(store storage.Store) *GroupService {
	return &GroupService{store: store}
}

// CreateGroup creates a group with the creator as its first member, plus any
// additional members. Groups are never empty.
func (s *GroupService) CreateGroup(ctx context.Context, name, creatorName string, memberNames []string) (*models.Group, error) {
	if name == "" {
		return nil, fmt.Errorf("group name required")
	}
	if creatorName == "" {
		return nil, fmt.Errorf("creator name required")
	}

	group := &models.Group{Name: name}
	group.Members = append(group.Members, models.Member{Name: creatorName})
	for _, n := range memberNames {
		group.Members = append(group.Members, models.Member{Name: n})
	}

	if err := s.store.CreateGroup(ctx, group); err != nil {
		slog.Error("CreateGroup failed", "name", name, "error", err)
		return nil, err
	}
	slog.Info("Group created", "group_id", group.ID, "name", group.Name, "members", len(group.Members))
	return group, nil
}

// GetGroup retrieves a group with its current member set.
func (s *GroupService) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	return s.store.GetGroup(ctx, groupID)
}

// ListGroups retrieves all groups.
func (s *GroupService) ListGroups(ctx context.Context) ([]*models.Group, error) {
	return s.store.ListGroups(ctx)
}

// AddMember adds a new member to a group and returns it with its assigned id.
func (s *GroupService) AddMember(ctx context.Context, groupID, name string) (*models.Member, error) {
	if name == "" {
		return nil, fmt.Errorf("member name required")
	}

	member := &models.Member{Name: name}
	if err := s.store.AddMember(ctx, groupID, member); err != nil {
		slog.Error("AddMember failed", "group_id", groupID, "error", err)
		return nil, err
	}
	slog.Info("Member added", "group_id", groupID, "member_id", member.ID)
	return member, nil
}

// ListMembers retrieves the current members of a group.
func (s *GroupService) ListMembers(ctx context.Context, groupID string) ([]models.Member, error) {
	if _, err := s.store.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}
	return s.store.ListMembers(ctx, groupID)
}
