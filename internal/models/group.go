package models

import (
	"slices"
	"strings"
)

// Group is a set of members sharing a ledger of expenses and payments.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group (e.g., "Roommates", "Goa Trip").
	Name string

	// MemberEmails is the ordered, duplicate-free list of member emails.
	// Order matters: equal splits hand leftover cents to the first members.
	MemberEmails []string

	// CreatedBy is the email of the member who created the group.
	// Only the creator may delete it.
	CreatedBy string

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64

	// Expenses is the group's expense ledger in recording order.
	Expenses []Expense

	// Payments is the group's payment ledger in recording order.
	// Groups recorded before payments existed have none; it is never nil
	// once loaded from storage.
	Payments []Payment
}

// HasMember reports whether email belongs to the group.
func (g *Group) HasMember(email string) bool {
	return slices.Contains(g.MemberEmails, email)
}

// NormalizeMembers drops blanks and duplicates from a member list, keeping
// first-seen order. The creator always comes first.
func NormalizeMembers(creator string, emails []string) []string {
	seen := make(map[string]bool, len(emails)+1)
	out := make([]string, 0, len(emails)+1)
	if creator != "" {
		seen[creator] = true
		out = append(out, creator)
	}
	for _, e := range emails {
		e = strings.TrimSpace(e)
		if e == "" || seen[e] {
			continue
		}
		seen[e] = true
		out = append(out, e)
	}
	return out
}
