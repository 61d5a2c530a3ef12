package models

// Member represents one person in a group.
type Member struct {
	// ID is the unique identifier for the member (UUID format).
	ID string

	// Name is the display name of the member. Name is the only mutable
	// field; identity never changes once created.
	Name string
}

// Group represents a set of members who share expenses.
// A group is never empty: the creator is always its first member.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group (e.g., "Roommates", "Surf Trip").
	Name string

	// CreatorID is the member who created the group.
	CreatorID string

	// Members is the current member set. Order carries no meaning;
	// member ids are unique within a group.
	Members []Member

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}

// HasMember reports whether the given member id is a current group member.
func (g *Group) HasMember(memberID string) bool {
	for _, m := range g.Members {
		if m.ID == memberID {
			return true
		}
	}
	return false
}

// MemberIDs returns the ids of all current members.
func (g *Group) MemberIDs() []string {
	ids := make([]string, len(g.Members))
	for i, m := range g.Members {
		ids[i] = m.ID
	}
	return ids
}
