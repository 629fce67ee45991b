package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/HrisheekeshS/Bill-Split/internal/calculator"
	"github.com/HrisheekeshS/Bill-Split/internal/models"
	"github.com/HrisheekeshS/Bill-Split/pkg/rpc"
)

// parsePositive parses a decimal amount and rejects anything that is not a
// strictly positive number of cents.
func parsePositive(amount string) (int64, error) {
	cents, err := calculator.ParseAmount(amount)
	if err != nil {
		return 0, err
	}
	if cents <= 0 {
		return 0, calculator.ErrInvalidAmount
	}
	return cents, nil
}

// PreviewSplit shows how an amount would be divided equally across the group
// without recording anything.
func (s *GroupService) PreviewSplit(ctx context.Context, req *connect.Request[rpc.PreviewSplitRequest]) (*connect.Response[rpc.PreviewSplitResponse], error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}

	group, err := s.memberGroup(ctx, req.Msg.GroupID, actor)
	if err != nil {
		return nil, toConnectError(err)
	}
	amount, err := parsePositive(req.Msg.Amount)
	if err != nil {
		return nil, toConnectError(err)
	}

	split := calculator.EqualSplit(amount, group.MemberEmails)

	slog.Debug("PreviewSplit",
		"group_id", group.ID,
		"amount", amount,
		"members", len(group.MemberEmails),
	)

	return connect.NewResponse(&rpc.PreviewSplitResponse{
		Amount: calculator.FormatCents(amount),
		Split:  formatSplit(split),
	}), nil
}

// AddExpense validates and appends an equally split expense to a group ledger.
func (s *GroupService) AddExpense(ctx context.Context, req *connect.Request[rpc.AddExpenseRequest]) (*connect.Response[rpc.AddExpenseResponse], error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}

	slog.Info("AddExpense request received",
		"group_id", req.Msg.GroupID,
		"description", req.Msg.Description,
		"amount", req.Msg.Amount,
	)

	group, err := s.memberGroup(ctx, req.Msg.GroupID, actor)
	if err != nil {
		slog.Warn("AddExpense rejected", "group_id", req.Msg.GroupID, "error", err)
		return nil, toConnectError(err)
	}

	amount, err := calculator.ParseAmount(req.Msg.Amount)
	if err != nil {
		return nil, toConnectError(err)
	}
	paidBy := req.Msg.PaidBy
	if paidBy == "" {
		paidBy = calculator.DefaultPayer(actor, group.MemberEmails)
	}
	description := strings.TrimSpace(req.Msg.Description)
	if err := calculator.ValidateExpense(description, amount, paidBy, group.MemberEmails); err != nil {
		return nil, toConnectError(err)
	}

	expense := &models.Expense{
		GroupID:     group.ID,
		Description: description,
		Amount:      amount,
		PaidBy:      paidBy,
		Split:       calculator.EqualSplit(amount, group.MemberEmails),
		CreatedBy:   actor,
	}

	if err := s.store.AppendExpense(ctx, expense); err != nil {
		slog.Error("AddExpense failed", "group_id", group.ID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Expense added",
		"group_id", group.ID,
		"expense_id", expense.ID,
		"paid_by", paidBy,
		"amount", amount,
	)

	return connect.NewResponse(&rpc.AddExpenseResponse{Expense: toRPCExpense(expense)}), nil
}

// RecordPayment appends a settling payment between two members. The caller
// must be one of the two parties.
func (s *GroupService) RecordPayment(ctx context.Context, req *connect.Request[rpc.RecordPaymentRequest]) (*connect.Response[rpc.RecordPaymentResponse], error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}

	slog.Info("RecordPayment request received",
		"group_id", req.Msg.GroupID,
		"from", req.Msg.From,
		"to", req.Msg.To,
		"amount", req.Msg.Amount,
	)

	group, err := s.memberGroup(ctx, req.Msg.GroupID, actor)
	if err != nil {
		slog.Warn("RecordPayment rejected", "group_id", req.Msg.GroupID, "error", err)
		return nil, toConnectError(err)
	}

	amount, err := parsePositive(req.Msg.Amount)
	if err != nil {
		return nil, toConnectError(err)
	}
	if !group.HasMember(req.Msg.From) || !group.HasMember(req.Msg.To) {
		return nil, toConnectError(ErrUnknownMember)
	}
	if req.Msg.From == req.Msg.To {
		return nil, toConnectError(ErrSelfPayment)
	}
	if actor != req.Msg.From && actor != req.Msg.To {
		return nil, toConnectError(ErrNotParty)
	}

	payment := &models.Payment{
		GroupID:            group.ID,
		From:               req.Msg.From,
		To:                 req.Msg.To,
		Amount:             amount,
		ExpenseDescription: strings.TrimSpace(req.Msg.ExpenseDescription),
		CreatedBy:          actor,
	}

	if err := s.store.AppendPayment(ctx, payment); err != nil {
		slog.Error("RecordPayment failed", "group_id", group.ID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Payment recorded", "group_id", group.ID, "payment_id", payment.ID)

	return connect.NewResponse(&rpc.RecordPaymentResponse{Payment: toRPCPayment(payment)}), nil
}

// GetGroupBalances recomputes every member's balance and the suggested
// settle-up transfers from the group's current ledger.
func (s *GroupService) GetGroupBalances(ctx context.Context, req *connect.Request[rpc.GetGroupBalancesRequest]) (*connect.Response[rpc.GetGroupBalancesResponse], error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}

	slog.Info("GetGroupBalances request received", "group_id", req.Msg.GroupID)

	group, err := s.memberGroup(ctx, req.Msg.GroupID, actor)
	if err != nil {
		slog.Warn("GetGroupBalances rejected", "group_id", req.Msg.GroupID, "error", err)
		return nil, toConnectError(err)
	}
	if err := s.loadLedger(ctx, group); err != nil {
		slog.Error("Failed to load ledger", "group_id", group.ID, "error", err)
		return nil, toConnectError(err)
	}

	expenses, payments := ledgerEntries(group.Expenses, group.Payments)
	balances := calculator.ComputeBalances(group.MemberEmails, expenses, payments)
	if gap := calculator.Imbalance(balances); gap != 0 {
		// Entries naming departed members were skipped.
		slog.Warn("Ledger does not balance over current members",
			"group_id", group.ID,
			"imbalance_cents", gap,
		)
	}
	settlements := calculator.ComputeSettlements(balances)

	slog.Info("GetGroupBalances successful",
		"group_id", group.ID,
		"members", len(balances),
		"settlements", len(settlements),
	)

	return connect.NewResponse(&rpc.GetGroupBalancesResponse{
		Balances:        toRPCBalances(balances, actor),
		Settlements:     toRPCTransfers(settlements),
		YourSettlements: toRPCTransfers(calculator.ForMember(actor, settlements)),
	}), nil
}
