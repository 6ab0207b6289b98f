package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pairshare/pairshare/internal/models"
)

func TestSQLiteStore(t *testing.T) {
	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "pairshare-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	dbPath := filepath.Join(tempDir, "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	t.Run("CreateExpense generates ID and timestamp", func(t *testing.T) {
		expense := &models.Expense{
			Description: "Dinner",
			Amount:      1234,
			PaidBy:      models.PartyA,
			SplitType:   models.SplitEqual,
			PartyAShare: 50,
			PartyBShare: 50,
			Category:    models.CategoryFood,
			Date:        "2025-01-02",
		}

		if err := store.CreateExpense(ctx, expense); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}

		if expense.ID == "" {
			t.Error("Expected expense ID to be generated")
		}
		if expense.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
	})

	t.Run("ListExpenses returns stored fields newest first", func(t *testing.T) {
		older := &models.Expense{
			Description: "Groceries",
			Amount:      105500,
			PaidBy:      models.PartyB,
			SplitType:   models.SplitPercentage,
			PartyAShare: 70,
			PartyBShare: 30,
			Category:    models.CategoryGroceries,
			Date:        "2024-12-31",
			Note:        "weekly run",
		}
		if err := store.CreateExpense(ctx, older); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}

		expenses, err := store.ListExpenses(ctx)
		if err != nil {
			t.Fatalf("ListExpenses failed: %v", err)
		}
		if len(expenses) != 2 {
			t.Fatalf("Expected 2 expenses, got %d", len(expenses))
		}
		if expenses[0].Date < expenses[1].Date {
			t.Errorf("Expected newest first, got dates %s then %s", expenses[0].Date, expenses[1].Date)
		}

		last := expenses[len(expenses)-1]
		if last.ID != older.ID {
			t.Errorf("ID mismatch: got %s, want %s", last.ID, older.ID)
		}
		if last.Amount != older.Amount {
			t.Errorf("Amount mismatch: got %d, want %d", last.Amount, older.Amount)
		}
		if last.PaidBy != models.PartyB {
			t.Errorf("PaidBy mismatch: got %s", last.PaidBy)
		}
		if last.SplitType != models.SplitPercentage {
			t.Errorf("SplitType mismatch: got %s", last.SplitType)
		}
		if last.PartyAShare != 70 || last.PartyBShare != 30 {
			t.Errorf("Shares mismatch: got %v/%v", last.PartyAShare, last.PartyBShare)
		}
		if last.Category != models.CategoryGroceries {
			t.Errorf("Category mismatch: got %s", last.Category)
		}
		if last.Note != "weekly run" {
			t.Errorf("Note mismatch: got %q", last.Note)
		}
	})

	t.Run("Empty note round-trips as empty string", func(t *testing.T) {
		expenses, err := store.ListExpenses(ctx)
		if err != nil {
			t.Fatalf("ListExpenses failed: %v", err)
		}
		for _, e := range expenses {
			if e.Description == "Dinner" && e.Note != "" {
				t.Errorf("Expected empty note, got %q", e.Note)
			}
		}
	})

	t.Run("DeleteExpense removes the row", func(t *testing.T) {
		expense := &models.Expense{
			Description: "To delete",
			Amount:      100,
			PaidBy:      models.PartyA,
			SplitType:   models.SplitEqual,
			Category:    models.CategoryOther,
			Date:        "2025-02-01",
		}
		if err := store.CreateExpense(ctx, expense); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}

		if err := store.DeleteExpense(ctx, expense.ID); err != nil {
			t.Fatalf("DeleteExpense failed: %v", err)
		}

		expenses, err := store.ListExpenses(ctx)
		if err != nil {
			t.Fatalf("ListExpenses failed: %v", err)
		}
		for _, e := range expenses {
			if e.ID == expense.ID {
				t.Error("Expected expense to be deleted")
			}
		}
	})

	t.Run("DeleteExpense returns error for nonexistent ID", func(t *testing.T) {
		if err := store.DeleteExpense(ctx, "nonexistent-id"); err == nil {
			t.Error("Expected error for nonexistent expense, got nil")
		}
	})

	t.Run("Settlements round-trip newest first", func(t *testing.T) {
		first := &models.Settlement{
			Amount: 5000,
			PaidBy: models.PartyB,
			PaidTo: models.PartyA,
			Date:   "2025-01-10",
			Note:   "venmo",
		}
		second := &models.Settlement{
			Amount: 2500,
			PaidBy: models.PartyA,
			PaidTo: models.PartyB,
			Date:   "2025-01-20",
		}

		if err := store.CreateSettlement(ctx, first); err != nil {
			t.Fatalf("CreateSettlement failed: %v", err)
		}
		if err := store.CreateSettlement(ctx, second); err != nil {
			t.Fatalf("CreateSettlement failed: %v", err)
		}

		settlements, err := store.ListSettlements(ctx)
		if err != nil {
			t.Fatalf("ListSettlements failed: %v", err)
		}
		if len(settlements) != 2 {
			t.Fatalf("Expected 2 settlements, got %d", len(settlements))
		}
		if settlements[0].ID != second.ID {
			t.Errorf("Expected newest settlement first, got %s", settlements[0].ID)
		}

		got := settlements[1]
		if got.Amount != 5000 {
			t.Errorf("Amount mismatch: got %d, want 5000", got.Amount)
		}
		if got.PaidBy != models.PartyB || got.PaidTo != models.PartyA {
			t.Errorf("Direction mismatch: %s -> %s", got.PaidBy, got.PaidTo)
		}
		if got.Note != "venmo" {
			t.Errorf("Note mismatch: got %q", got.Note)
		}
		if settlements[0].Note != "" {
			t.Errorf("Expected empty note, got %q", settlements[0].Note)
		}
	})
}
