package service

import (
	"github.com/HrisheekeshS/Bill-Split/internal/calculator"
	"github.com/HrisheekeshS/Bill-Split/internal/models"
	"github.com/HrisheekeshS/Bill-Split/pkg/rpc"
)

func toRPCGroup(group *models.Group) *rpc.Group {
	out := &rpc.Group{
		ID:           group.ID,
		Name:         group.Name,
		MemberEmails: group.MemberEmails,
		CreatedBy:    group.CreatedBy,
		CreatedAt:    group.CreatedAt,
	}
	for i := range group.Expenses {
		out.Expenses = append(out.Expenses, toRPCExpense(&group.Expenses[i]))
	}
	for i := range group.Payments {
		out.Payments = append(out.Payments, toRPCPayment(&group.Payments[i]))
	}
	return out
}

func toRPCExpense(expense *models.Expense) *rpc.Expense {
	return &rpc.Expense{
		ID:          expense.ID,
		Description: expense.Description,
		Amount:      calculator.FormatCents(expense.Amount),
		PaidBy:      expense.PaidBy,
		Split:       formatSplit(expense.Split),
		CreatedAt:   expense.CreatedAt,
		CreatedBy:   expense.CreatedBy,
	}
}

func toRPCPayment(payment *models.Payment) *rpc.Payment {
	return &rpc.Payment{
		ID:                 payment.ID,
		From:               payment.From,
		To:                 payment.To,
		Amount:             calculator.FormatCents(payment.Amount),
		ExpenseDescription: payment.ExpenseDescription,
		CreatedAt:          payment.CreatedAt,
		CreatedBy:          payment.CreatedBy,
	}
}

func formatSplit(split map[string]int64) map[string]string {
	out := make(map[string]string, len(split))
	for member, cents := range split {
		out[member] = calculator.FormatCents(cents)
	}
	return out
}

func toRPCBalances(balances []calculator.MemberBalance, actor string) []*rpc.MemberBalance {
	out := make([]*rpc.MemberBalance, len(balances))
	for i, b := range balances {
		out[i] = &rpc.MemberBalance{
			Member: b.Member,
			Net:    calculator.FormatCents(b.Net),
			Paid:   calculator.FormatCents(b.Paid),
			Owed:   calculator.FormatCents(b.Owed),
			Status: b.Status(),
			IsYou:  b.Member == actor,
		}
	}
	return out
}

func toRPCTransfers(transfers []calculator.Transfer) []*rpc.Transfer {
	out := make([]*rpc.Transfer, len(transfers))
	for i, t := range transfers {
		out[i] = &rpc.Transfer{
			From:   t.From,
			To:     t.To,
			Amount: calculator.FormatCents(t.Amount),
		}
	}
	return out
}

// ledgerEntries projects stored ledger records onto the calculator's inputs.
func ledgerEntries(expenses []models.Expense, payments []models.Payment) ([]calculator.Expense, []calculator.Payment) {
	calcExpenses := make([]calculator.Expense, len(expenses))
	for i, e := range expenses {
		calcExpenses[i] = calculator.Expense{PaidBy: e.PaidBy, Amount: e.Amount, Split: e.Split}
	}
	calcPayments := make([]calculator.Payment, len(payments))
	for i, p := range payments {
		calcPayments[i] = calculator.Payment{From: p.From, To: p.To, Amount: p.Amount}
	}
	return calcExpenses, calcPayments
}
