package rpc

// Group is a group with its ledger.
type Group struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	MemberEmails []string   `json:"member_emails"`
	CreatedBy    string     `json:"created_by"`
	CreatedAt    int64      `json:"created_at"`
	Expenses     []*Expense `json:"expenses,omitempty"`
	Payments     []*Payment `json:"payments,omitempty"`
}

// Expense is a recorded expense. Split values are decimal strings.
type Expense struct {
	ID          string            `json:"id"`
	Description string            `json:"description"`
	Amount      string            `json:"amount"`
	PaidBy      string            `json:"paid_by"`
	Split       map[string]string `json:"split"`
	CreatedAt   int64             `json:"created_at"`
	CreatedBy   string            `json:"created_by"`
}

// Payment is a recorded settling payment.
type Payment struct {
	ID                 string `json:"id"`
	From               string `json:"from"`
	To                 string `json:"to"`
	Amount             string `json:"amount"`
	ExpenseDescription string `json:"expense_description,omitempty"`
	CreatedAt          int64  `json:"created_at"`
	CreatedBy          string `json:"created_by"`
}

// MemberBalance is one member's derived position.
type MemberBalance struct {
	Member string `json:"member"`
	Net    string `json:"net"`
	Paid   string `json:"paid"`
	Owed   string `json:"owed"`
	Status string `json:"status"`
	IsYou  bool   `json:"is_you,omitempty"`
}

// Transfer is a suggested settle-up payment.
type Transfer struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount string `json:"amount"`
}

type CreateGroupRequest struct {
	Name         string   `json:"name"`
	MemberEmails []string `json:"member_emails"`
}

type CreateGroupResponse struct {
	Group *Group `json:"group"`
}

type GetGroupRequest struct {
	GroupID string `json:"group_id"`
}

type GetGroupResponse struct {
	Group *Group `json:"group"`
}

type ListGroupsRequest struct{}

type ListGroupsResponse struct {
	Groups []*Group `json:"groups"`
}

type DeleteGroupRequest struct {
	GroupID string `json:"group_id"`
}

type DeleteGroupResponse struct{}

type PreviewSplitRequest struct {
	GroupID string `json:"group_id"`
	Amount  string `json:"amount"`
}

type PreviewSplitResponse struct {
	Amount string            `json:"amount"`
	Split  map[string]string `json:"split"`
}

type AddExpenseRequest struct {
	GroupID     string `json:"group_id"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	// PaidBy defaults to the caller if they are a member, else the first member.
	PaidBy string `json:"paid_by,omitempty"`
}

type AddExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

type RecordPaymentRequest struct {
	GroupID            string `json:"group_id"`
	From               string `json:"from"`
	To                 string `json:"to"`
	Amount             string `json:"amount"`
	ExpenseDescription string `json:"expense_description,omitempty"`
}

type RecordPaymentResponse struct {
	Payment *Payment `json:"payment"`
}

type GetGroupBalancesRequest struct {
	GroupID string `json:"group_id"`
}

type GetGroupBalancesResponse struct {
	Balances        []*MemberBalance `json:"balances"`
	Settlements     []*Transfer      `json:"settlements"`
	YourSettlements []*Transfer      `json:"your_settlements"`
}
