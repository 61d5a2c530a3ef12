package sqlite

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/mmynk/settlewise/internal/models"
	"github.com/mmynk/settlewise/internal/storage"
)

// setupTestStore creates a store backed by a temp database file.
func setupTestStore(t *testing.T) (*SQLiteStore, func()) {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "test-*.db")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.Close()

	store, err := New(tmpFile.Name())
	if err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to create store: %v", err)
	}

	cleanup := func() {
		store.Close()
		os.Remove(tmpFile.Name())
	}
	return store, cleanup
}

func createTestGroup(t *testing.T, store *SQLiteStore, memberNames ...string) *models.Group {
	t.Helper()

	group := &models.Group{Name: "Trip"}
	for _, name := range memberNames {
		group.Members = append(group.Members, models.Member{Name: name})
	}
	if err := store.CreateGroup(context.Background(), group); err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	return group
}

func TestCreateAndGetGroup(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	group := createTestGroup(t, store, "Alice", "Bob")
	if group.ID == "" {
		t.Fatal("CreateGroup did not assign an ID")
	}

	got, err := store.GetGroup(context.Background(), group.ID)
	if err != nil {
		t.Fatalf("GetGroup failed: %v", err)
	}
	if got.Name != "Trip" {
		t.Errorf("group name = %q, want Trip", got.Name)
	}
	if len(got.Members) != 2 {
		t.Fatalf("got %d members, want 2", len(got.Members))
	}
	names := map[string]bool{}
	for _, m := range got.Members {
		if m.ID == "" {
			t.Errorf("member %q has no ID", m.Name)
		}
		names[m.Name] = true
	}
	if !names["Alice"] || !names["Bob"] {
		t.Errorf("unexpected member names: %v", names)
	}
}

func TestGetGroupNotFound(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := store.GetGroup(context.Background(), "nope")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("GetGroup error = %v, want storage.ErrNotFound", err)
	}
}

func TestAddMember(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	group := createTestGroup(t, store, "Alice")

	member := &models.Member{Name: "Carol"}
	if err := store.AddMember(context.Background(), group.ID, member); err != nil {
		t.Fatalf("AddMember failed: %v", err)
	}
	if member.ID == "" {
		t.Fatal("AddMember did not assign an ID")
	}

	members, err := store.ListMembers(context.Background(), group.ID)
	if err != nil {
		t.Fatalf("ListMembers failed: %v", err)
	}
	if len(members) != 2 {
		t.Errorf("got %d members, want 2", len(members))
	}

	err = store.AddMember(context.Background(), "missing-group", &models.Member{Name: "Dave"})
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("AddMember to missing group error = %v, want storage.ErrNotFound", err)
	}
}

func TestAppendAndListSpendEvents(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	group := createTestGroup(t, store, "Alice", "Bob")
	alice, bob := group.Members[0].ID, group.Members[1].ID

	first := &models.SpendEvent{
		GroupID: group.ID,
		PayerID: alice,
		Total:   50,
		Note:    "groceries",
		Shares: []models.ParticipantShare{
			{MemberID: alice, Amount: 25},
			{MemberID: bob, Amount: 25},
		},
	}
	firstID, err := store.AppendSpendEvent(context.Background(), first)
	if err != nil {
		t.Fatalf("AppendSpendEvent failed: %v", err)
	}
	if firstID == "" {
		t.Fatal("AppendSpendEvent returned empty id")
	}

	second := &models.SpendEvent{
		GroupID: group.ID,
		PayerID: bob,
		Total:   30,
		Shares:  []models.ParticipantShare{{MemberID: alice, Amount: 30}},
	}
	if _, err := store.AppendSpendEvent(context.Background(), second); err != nil {
		t.Fatalf("AppendSpendEvent failed: %v", err)
	}

	events, err := store.ListSpendEvents(context.Background(), group.ID)
	if err != nil {
		t.Fatalf("ListSpendEvents failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}

	// Append order is preserved.
	if events[0].ID != firstID {
		t.Errorf("events[0].ID = %s, want %s", events[0].ID, firstID)
	}
	if events[0].Note != "groceries" {
		t.Errorf("events[0].Note = %q, want groceries", events[0].Note)
	}
	if events[0].Total != 50 || len(events[0].Shares) != 2 {
		t.Errorf("events[0] round-trip mismatch: %+v", events[0])
	}
	if events[1].Total != 30 || events[1].PayerID != bob {
		t.Errorf("events[1] round-trip mismatch: %+v", events[1])
	}

	var sum int64
	for _, share := range events[0].Shares {
		sum += share.Amount
	}
	if sum != events[0].Total {
		t.Errorf("shares sum to %d, total is %d", sum, events[0].Total)
	}
}

func TestListSpendEventsEmpty(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	group := createTestGroup(t, store, "Alice")
	events, err := store.ListSpendEvents(context.Background(), group.ID)
	if err != nil {
		t.Fatalf("ListSpendEvents failed: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("got %d events, want 0", len(events))
	}
}

func TestListGroups(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	createTestGroup(t, store, "Alice")
	createTestGroup(t, store, "Bob", "Carol")

	groups, err := store.ListGroups(context.Background())
	if err != nil {
		t.Fatalf("ListGroups failed: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if len(groups[0].Members)+len(groups[1].Members) != 3 {
		t.Errorf("member sets not loaded: %+v", groups)
	}
}
