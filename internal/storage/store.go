// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/HrisheekeshS/Bill-Split/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the interface for group and ledger storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
//
// Ledgers are append-only: expenses and payments can be appended and listed in
// recording order, but never updated.
type Store interface {
	// CreateGroup persists a new group with its ordered member list.
	// The group.ID and group.CreatedAt fields will be populated by the store.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup retrieves a group's metadata and members, without its ledger.
	// Returns ErrNotFound if the group does not exist.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// ListGroupsByMember retrieves every group the email belongs to.
	ListGroupsByMember(ctx context.Context, email string) ([]*models.Group, error)

	// DeleteGroup removes a group together with its ledger.
	// Returns ErrNotFound if the group does not exist.
	DeleteGroup(ctx context.Context, groupID string) error

	// AppendExpense atomically appends an expense and its split to a group ledger.
	// The expense.ID and expense.CreatedAt fields will be populated by the store.
	AppendExpense(ctx context.Context, expense *models.Expense) error

	// ListExpenses returns a group's expenses in recording order.
	ListExpenses(ctx context.Context, groupID string) ([]models.Expense, error)

	// AppendPayment appends a payment to a group ledger.
	// The payment.ID and payment.CreatedAt fields will be populated by the store.
	AppendPayment(ctx context.Context, payment *models.Payment) error

	// ListPayments returns a group's payments in recording order.
	// The result is empty, not nil, for groups without payments.
	ListPayments(ctx context.Context, groupID string) ([]models.Payment, error)

	// Close releases any resources held by the store.
	Close() error
}
