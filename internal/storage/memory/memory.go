// Package memory provides an in-memory storage.Store for tests and local
// experimentation. It is safe for concurrent use.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/pairshare/pairshare/internal/models"
	"github.com/pairshare/pairshare/internal/storage"
)

var _ storage.Store = (*MemoryStore)(nil)

// MemoryStore implements storage.Store with in-process maps.
type MemoryStore struct {
	mu          sync.RWMutex
	expenses    map[string]*models.Expense
	settlements map[string]*models.Settlement

	// CreateExpenseHook, when set, runs before each CreateExpense and may
	// return an error to simulate a remote write failure.
	CreateExpenseHook func(expense *models.Expense) error
}

// New returns an empty MemoryStore.
func New() *MemoryStore {
	return &MemoryStore{
		expenses:    make(map[string]*models.Expense),
		settlements: make(map[string]*models.Settlement),
	}
}

// CreateExpense stores a copy of the expense.
func (s *MemoryStore) CreateExpense(_ context.Context, expense *models.Expense) error {
	if s.CreateExpenseHook != nil {
		if err := s.CreateExpenseHook(expense); err != nil {
			return err
		}
	}

	expense.EnsureID()
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *expense
	s.expenses[expense.ID] = &cp
	return nil
}

// ListExpenses returns all expenses, newest date first.
func (s *MemoryStore) ListExpenses(_ context.Context) ([]*models.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Expense, 0, len(s.expenses))
	for _, e := range s.expenses {
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out, nil
}

// DeleteExpense removes an expense by ID.
func (s *MemoryStore) DeleteExpense(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.expenses[id]; !ok {
		return fmt.Errorf("expense not found: %s", id)
	}
	delete(s.expenses, id)
	return nil
}

// CreateSettlement stores a copy of the settlement.
func (s *MemoryStore) CreateSettlement(_ context.Context, settlement *models.Settlement) error {
	settlement.EnsureID()
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *settlement
	s.settlements[settlement.ID] = &cp
	return nil
}

// ListSettlements returns all settlements, newest date first.
func (s *MemoryStore) ListSettlements(_ context.Context) ([]*models.Settlement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Settlement, 0, len(s.settlements))
	for _, st := range s.settlements {
		cp := *st
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out, nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error { return nil }
