package models

// Expense is an amount fronted by one member on behalf of the group.
// Expenses are immutable once recorded.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// GroupID is the group whose ledger this expense belongs to.
	GroupID string

	// Description is what the money was spent on (never empty).
	Description string

	// Amount is the total paid, in cents.
	Amount int64

	// PaidBy is the email of the member who paid.
	PaidBy string

	// Split maps member email to that member's share in cents.
	// Shares sum to Amount.
	Split map[string]int64

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64

	// CreatedBy is the email of the member who recorded the expense.
	CreatedBy string
}
