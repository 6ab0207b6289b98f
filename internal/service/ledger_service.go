// Package service wires the engine packages to the persistence collaborator
// and the event publisher. Services validate input, delegate arithmetic to
// the calculator, and never cache derived state.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pairshare/pairshare/internal/calculator"
	"github.com/pairshare/pairshare/internal/events"
	"github.com/pairshare/pairshare/internal/models"
	"github.com/pairshare/pairshare/internal/storage"
)

// LedgerService manages expenses, settlements and the derived balance.
type LedgerService struct {
	store     storage.Store
	publisher events.Publisher
}

// NewLedgerService creates a LedgerService with the given collaborators.
func NewLedgerService(store storage.Store, publisher events.Publisher) *LedgerService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &LedgerService{store: store, publisher: publisher}
}

// CreateExpense validates and persists an expense, then publishes an event.
func (s *LedgerService) CreateExpense(ctx context.Context, expense *models.Expense) (*models.Expense, error) {
	if err := expense.Validate(); err != nil {
		return nil, fmt.Errorf("invalid expense: %w", err)
	}
	if err := s.store.CreateExpense(ctx, expense); err != nil {
		return nil, err
	}
	s.publish(events.TopicExpenseCreated, expense)
	return expense, nil
}

// ListExpenses returns the full expense history.
func (s *LedgerService) ListExpenses(ctx context.Context) ([]*models.Expense, error) {
	return s.store.ListExpenses(ctx)
}

// DeleteExpense removes an expense. The balance self-corrects on the next
// read since it is always recomputed from the remaining history.
func (s *LedgerService) DeleteExpense(ctx context.Context, id string) error {
	return s.store.DeleteExpense(ctx, id)
}

// CreateSettlement validates and persists a settlement, then publishes an
// event.
func (s *LedgerService) CreateSettlement(ctx context.Context, settlement *models.Settlement) (*models.Settlement, error) {
	if err := settlement.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settlement: %w", err)
	}
	if err := s.store.CreateSettlement(ctx, settlement); err != nil {
		return nil, err
	}
	s.publish(events.TopicSettlementCreated, settlement)
	return settlement, nil
}

// ListSettlements returns the full settlement history.
func (s *LedgerService) ListSettlements(ctx context.Context) ([]*models.Settlement, error) {
	return s.store.ListSettlements(ctx)
}

// Balance recomputes the net position from the full history.
func (s *LedgerService) Balance(ctx context.Context) (models.Balance, error) {
	expenses, err := s.store.ListExpenses(ctx)
	if err != nil {
		return models.Balance{}, err
	}
	settlements, err := s.store.ListSettlements(ctx)
	if err != nil {
		return models.Balance{}, err
	}
	return calculator.Reconcile(expenses, settlements), nil
}

// MonthlyReport groups the expense history by month.
func (s *LedgerService) MonthlyReport(ctx context.Context) ([]calculator.MonthGroup, error) {
	expenses, err := s.store.ListExpenses(ctx)
	if err != nil {
		return nil, err
	}
	return calculator.GroupByMonth(expenses), nil
}

// CategoryReport sums the expense history per category.
func (s *LedgerService) CategoryReport(ctx context.Context) ([]calculator.CategoryTotal, error) {
	expenses, err := s.store.ListExpenses(ctx)
	if err != nil {
		return nil, err
	}
	return calculator.CategoryTotals(expenses), nil
}

// publish sends an event and logs failures without propagating them: a
// broker outage must never fail a ledger write.
func (s *LedgerService) publish(topic string, event any) {
	if err := s.publisher.Publish(topic, event); err != nil {
		slog.Warn("failed to publish event", "topic", topic, "error", err)
	}
}
