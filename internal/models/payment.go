package models

// Payment represents money handed from one group member to another to clear debts.
type Payment struct {
	// ID is the unique identifier for the payment (UUID format).
	ID string

	// GroupID is the group this payment belongs to.
	GroupID string

	// From is the member who paid (debtor settling up).
	From string

	// To is the member who received the payment (creditor being paid).
	To string

	// Amount is the payment amount in cents.
	Amount int64

	// ExpenseDescription optionally ties the payment to one expense's share.
	ExpenseDescription string

	// CreatedAt is the Unix timestamp when the payment was recorded.
	CreatedAt int64

	// CreatedBy is the email of the member who recorded this payment.
	CreatedBy string
}
