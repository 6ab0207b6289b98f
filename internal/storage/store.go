// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/pairshare/pairshare/internal/models"
)

// Store defines the interface for ledger persistence. This abstraction
// allows swapping storage backends (SQLite, PostgreSQL, in-memory) without
// changing the service layer, and is what the ingestion pipeline receives
// as its persistence collaborator.
type Store interface {
	// CreateExpense persists a new expense. ID and CreatedAt are
	// populated if unset.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// ListExpenses returns all expenses, newest date first.
	ListExpenses(ctx context.Context) ([]*models.Expense, error)

	// DeleteExpense removes an expense by ID. Deleting is safe because
	// balances are always recomputed from the remaining history.
	DeleteExpense(ctx context.Context, id string) error

	// CreateSettlement persists a new settlement. ID and CreatedAt are
	// populated if unset.
	CreateSettlement(ctx context.Context, settlement *models.Settlement) error

	// ListSettlements returns all settlements, newest date first.
	ListSettlements(ctx context.Context) ([]*models.Settlement, error)

	// Close releases any resources held by the store.
	Close() error
}
