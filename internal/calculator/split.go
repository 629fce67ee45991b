package calculator

import (
	"errors"
	"slices"
	"strings"
)

var (
	ErrEmptyDescription = errors.New("enter a description")
	ErrInvalidAmount    = errors.New("enter a valid positive amount")
	ErrInvalidPayer     = errors.New("select a valid payer")
)

// EqualSplit divides amount (in cents) across members without losing a cent.
// Every member gets amount/n; the first amount%n members in list order get
// one extra cent. Input is assumed validated; no members yields an empty split.
func EqualSplit(amount int64, members []string) map[string]int64 {
	split := make(map[string]int64, len(members))
	n := int64(len(members))
	if n == 0 {
		return split
	}

	base := amount / n
	remainder := amount % n
	for idx, m := range members {
		cents := base
		if int64(idx) < remainder {
			cents++
		}
		split[m] = cents
	}
	return split
}

// ValidateExpense checks the fields of a new expense before it is constructed.
func ValidateExpense(description string, amount int64, paidBy string, members []string) error {
	if strings.TrimSpace(description) == "" {
		return ErrEmptyDescription
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if paidBy == "" || !slices.Contains(members, paidBy) {
		return ErrInvalidPayer
	}
	return nil
}

// DefaultPayer picks the payer for a new expense when none is given: the acting
// member if they belong to the group, otherwise the first member.
func DefaultPayer(actor string, members []string) string {
	if actor != "" && slices.Contains(members, actor) {
		return actor
	}
	if len(members) > 0 {
		return members[0]
	}
	return ""
}
