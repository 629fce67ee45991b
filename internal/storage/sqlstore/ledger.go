package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/HrisheekeshS/Bill-Split/internal/models"
)

type expenseRow struct {
	ID          string `db:"id"`
	GroupID     string `db:"group_id"`
	Description string `db:"description"`
	Amount      int64  `db:"amount"`
	PaidBy      string `db:"paid_by"`
	CreatedAt   int64  `db:"created_at"`
	CreatedBy   string `db:"created_by"`
}

type shareRow struct {
	ExpenseID string `db:"expense_id"`
	Email     string `db:"email"`
	Amount    int64  `db:"amount"`
}

type paymentRow struct {
	ID                 string `db:"id"`
	GroupID            string `db:"group_id"`
	From               string `db:"from_email"`
	To                 string `db:"to_email"`
	Amount             int64  `db:"amount"`
	ExpenseDescription string `db:"expense_description"`
	CreatedAt          int64  `db:"created_at"`
	CreatedBy          string `db:"created_by"`
}

// AppendExpense inserts an expense and its shares in one transaction.
func (s *Store) AppendExpense(ctx context.Context, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, tx.Rebind(
		`INSERT INTO expenses (id, group_id, description, amount, paid_by, created_at, created_by)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`),
		expense.ID, expense.GroupID, expense.Description, expense.Amount,
		expense.PaidBy, expense.CreatedAt, expense.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	for email, amount := range expense.Split {
		_, err = tx.ExecContext(ctx, tx.Rebind(
			"INSERT INTO expense_shares (expense_id, email, amount) VALUES (?, ?, ?)"),
			expense.ID, email, amount,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense share: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListExpenses retrieves a group's expenses with their splits, in recording order.
func (s *Store) ListExpenses(ctx context.Context, groupID string) ([]models.Expense, error) {
	var rows []expenseRow
	err := s.db.SelectContext(ctx, &rows, s.db.Rebind(`
		SELECT id, group_id, description, amount, paid_by, created_at, created_by
		FROM expenses WHERE group_id = ? ORDER BY seq`), groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	var shares []shareRow
	err = s.db.SelectContext(ctx, &shares, s.db.Rebind(`
		SELECT s.expense_id, s.email, s.amount
		FROM expense_shares s
		JOIN expenses e ON e.id = s.expense_id
		WHERE e.group_id = ?`), groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense shares: %w", err)
	}

	splits := make(map[string]map[string]int64, len(rows))
	for _, sh := range shares {
		if splits[sh.ExpenseID] == nil {
			splits[sh.ExpenseID] = make(map[string]int64)
		}
		splits[sh.ExpenseID][sh.Email] = sh.Amount
	}

	expenses := make([]models.Expense, len(rows))
	for i, r := range rows {
		split := splits[r.ID]
		if split == nil {
			split = map[string]int64{}
		}
		expenses[i] = models.Expense{
			ID:          r.ID,
			GroupID:     r.GroupID,
			Description: r.Description,
			Amount:      r.Amount,
			PaidBy:      r.PaidBy,
			Split:       split,
			CreatedAt:   r.CreatedAt,
			CreatedBy:   r.CreatedBy,
		}
	}
	return expenses, nil
}

// AppendPayment inserts a payment into a group's ledger.
func (s *Store) AppendPayment(ctx context.Context, payment *models.Payment) error {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	if payment.CreatedAt == 0 {
		payment.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx, s.db.Rebind(
		`INSERT INTO payments (id, group_id, from_email, to_email, amount, expense_description, created_at, created_by)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`),
		payment.ID, payment.GroupID, payment.From, payment.To, payment.Amount,
		payment.ExpenseDescription, payment.CreatedAt, payment.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}
	return nil
}

// ListPayments retrieves a group's payments in recording order.
func (s *Store) ListPayments(ctx context.Context, groupID string) ([]models.Payment, error) {
	var rows []paymentRow
	err := s.db.SelectContext(ctx, &rows, s.db.Rebind(`
		SELECT id, group_id, from_email, to_email, amount, expense_description, created_at, created_by
		FROM payments WHERE group_id = ? ORDER BY seq`), groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	payments := make([]models.Payment, len(rows))
	for i, r := range rows {
		payments[i] = models.Payment{
			ID:                 r.ID,
			GroupID:            r.GroupID,
			From:               r.From,
			To:                 r.To,
			Amount:             r.Amount,
			ExpenseDescription: r.ExpenseDescription,
			CreatedAt:          r.CreatedAt,
			CreatedBy:          r.CreatedBy,
		}
	}
	return payments, nil
}
