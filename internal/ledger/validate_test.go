package ledger

import (
	"errors"
	"testing"

	"github.com/mmynk/settlewise/internal/models"
)

func testGroup(memberIDs ...string) *models.Group {
	g := &models.Group{ID: "g1", Name: "Test Group"}
	for _, id := range memberIDs {
		g.Members = append(g.Members, models.Member{ID: id, Name: id})
	}
	if len(g.Members) > 0 {
		g.CreatorID = g.Members[0].ID
	}
	return g
}

func TestValidate(t *testing.T) {
	group := testGroup("alice", "bob", "carol")

	tests := []struct {
		name     string
		spend    *models.SpendEvent
		wantCode ValidationCode
	}{
		{
			name: "valid spend passes",
			spend: &models.SpendEvent{
				PayerID: "alice",
				Total:   90,
				Shares: []models.ParticipantShare{
					{MemberID: "alice", Amount: 30},
					{MemberID: "bob", Amount: 30},
					{MemberID: "carol", Amount: 30},
				},
			},
		},
		{
			name: "payer not in group",
			spend: &models.SpendEvent{
				PayerID: "mallory",
				Total:   10,
				Shares:  []models.ParticipantShare{{MemberID: "bob", Amount: 10}},
			},
			wantCode: CodeUnknownPayer,
		},
		{
			name: "participant not in group",
			spend: &models.SpendEvent{
				PayerID: "alice",
				Total:   10,
				Shares:  []models.ParticipantShare{{MemberID: "mallory", Amount: 10}},
			},
			wantCode: CodeUnknownParticipant,
		},
		{
			name: "empty participants",
			spend: &models.SpendEvent{
				PayerID: "alice",
				Total:   10,
			},
			wantCode: CodeEmptyParticipants,
		},
		{
			name: "zero total",
			spend: &models.SpendEvent{
				PayerID: "alice",
				Total:   0,
				Shares:  []models.ParticipantShare{{MemberID: "bob", Amount: 0}},
			},
			wantCode: CodeNonPositiveAmount,
		},
		{
			name: "negative total",
			spend: &models.SpendEvent{
				PayerID: "alice",
				Total:   -50,
				Shares:  []models.ParticipantShare{{MemberID: "bob", Amount: -50}},
			},
			wantCode: CodeNonPositiveAmount,
		},
		{
			name: "shares sum to total plus one",
			spend: &models.SpendEvent{
				PayerID: "alice",
				Total:   100,
				Shares: []models.ParticipantShare{
					{MemberID: "bob", Amount: 50},
					{MemberID: "carol", Amount: 51},
				},
			},
			wantCode: CodeShareMismatch,
		},
		{
			name: "shares sum short of total",
			spend: &models.SpendEvent{
				PayerID: "alice",
				Total:   100,
				Shares: []models.ParticipantShare{
					{MemberID: "bob", Amount: 50},
					{MemberID: "carol", Amount: 49},
				},
			},
			wantCode: CodeShareMismatch,
		},
		{
			name: "payer need not participate",
			spend: &models.SpendEvent{
				PayerID: "alice",
				Total:   50,
				Shares:  []models.ParticipantShare{{MemberID: "bob", Amount: 50}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(group, tt.spend)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() error = %v, want *ValidationError", err)
			}
			if verr.Code != tt.wantCode {
				t.Errorf("Validate() code = %s, want %s", verr.Code, tt.wantCode)
			}
		})
	}
}

func TestEqualShares(t *testing.T) {
	tests := []struct {
		name    string
		total   int64
		members []string
		want    map[string]int64
	}{
		{
			name:    "even split",
			total:   90,
			members: []string{"alice", "bob", "carol"},
			want:    map[string]int64{"alice": 30, "bob": 30, "carol": 30},
		},
		{
			name:    "remainder goes to first members in id order",
			total:   100,
			members: []string{"carol", "alice", "bob"},
			want:    map[string]int64{"alice": 34, "bob": 33, "carol": 33},
		},
		{
			name:    "two leftover units",
			total:   11,
			members: []string{"d", "a", "c", "b"},
			want:    map[string]int64{"a": 3, "b": 3, "c": 3, "d": 2},
		},
		{
			name:    "single member takes all",
			total:   77,
			members: []string{"alice"},
			want:    map[string]int64{"alice": 77},
		},
		{
			name:    "no members",
			total:   10,
			members: nil,
			want:    map[string]int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares := EqualShares(tt.total, tt.members)
			if len(shares) != len(tt.want) {
				t.Fatalf("EqualShares() returned %d shares, want %d", len(shares), len(tt.want))
			}
			var sum int64
			for _, s := range shares {
				if got, ok := tt.want[s.MemberID]; !ok || got != s.Amount {
					t.Errorf("share for %s = %d, want %d", s.MemberID, s.Amount, got)
				}
				sum += s.Amount
			}
			if len(shares) > 0 && sum != tt.total {
				t.Errorf("shares sum to %d, want %d", sum, tt.total)
			}
		})
	}
}

func TestEqualSharesWithinOneUnit(t *testing.T) {
	// Every share must be within one minor unit of total/N.
	members := []string{"a", "b", "c", "d", "e", "f", "g"}
	for total := int64(1); total <= 200; total++ {
		shares := EqualShares(total, members)
		base := total / int64(len(members))
		for _, s := range shares {
			if s.Amount != base && s.Amount != base+1 {
				t.Fatalf("total %d: share for %s = %d, want %d or %d", total, s.MemberID, s.Amount, base, base+1)
			}
		}
	}
}
