// Package postgres provides a PostgreSQL-backed implementation of the
// storage.Store interface, used when DATABASE_URL is configured.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/pairshare/pairshare/internal/models"
	"github.com/pairshare/pairshare/internal/storage"
)

var _ storage.Store = (*PostgresStore)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS expenses (
    id TEXT PRIMARY KEY,
    description TEXT NOT NULL,
    amount BIGINT NOT NULL,
    paid_by TEXT NOT NULL,
    split_type TEXT NOT NULL,
    party_a_share DOUBLE PRECISION NOT NULL,
    party_b_share DOUBLE PRECISION NOT NULL,
    category TEXT NOT NULL,
    date TEXT NOT NULL,
    note TEXT,
    created_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS settlements (
    id TEXT PRIMARY KEY,
    amount BIGINT NOT NULL,
    paid_by TEXT NOT NULL,
    paid_to TEXT NOT NULL,
    date TEXT NOT NULL,
    note TEXT,
    created_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_expenses_date ON expenses(date);
CREATE INDEX IF NOT EXISTS idx_settlements_date ON settlements(date);
`

// PostgresStore implements storage.Store using PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// New opens a connection using the given DSN and ensures the schema exists.
func New(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

// Close closes the database connection.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// CreateExpense persists a new expense to the database.
func (s *PostgresStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	expense.EnsureID()

	var note interface{}
	if expense.Note != "" {
		note = expense.Note
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO expenses (id, description, amount, paid_by, split_type, party_a_share, party_b_share, category, date, note, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		expense.ID, expense.Description, expense.Amount, string(expense.PaidBy), string(expense.SplitType),
		expense.PartyAShare, expense.PartyBShare, string(expense.Category), expense.Date, note, expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}
	return nil
}

// ListExpenses retrieves all expenses, newest date first.
func (s *PostgresStore) ListExpenses(ctx context.Context) ([]*models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, description, amount, paid_by, split_type, party_a_share, party_b_share, category, date, note, created_at
		 FROM expenses ORDER BY date DESC, created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		e := &models.Expense{}
		var paidBy, splitType, cat string
		var note sql.NullString
		if err := rows.Scan(&e.ID, &e.Description, &e.Amount, &paidBy, &splitType,
			&e.PartyAShare, &e.PartyBShare, &cat, &e.Date, &note, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		e.PaidBy = models.Party(paidBy)
		e.SplitType = models.SplitType(splitType)
		e.Category = models.Category(cat)
		if note.Valid {
			e.Note = note.String
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}
	return expenses, nil
}

// DeleteExpense removes an expense by ID.
func (s *PostgresStore) DeleteExpense(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("expense not found: %s", id)
	}
	return nil
}

// CreateSettlement persists a new settlement to the database.
func (s *PostgresStore) CreateSettlement(ctx context.Context, settlement *models.Settlement) error {
	settlement.EnsureID()

	var note interface{}
	if settlement.Note != "" {
		note = settlement.Note
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settlements (id, amount, paid_by, paid_to, date, note, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		settlement.ID, settlement.Amount, string(settlement.PaidBy), string(settlement.PaidTo),
		settlement.Date, note, settlement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert settlement: %w", err)
	}
	return nil
}

// ListSettlements retrieves all settlements, newest date first.
func (s *PostgresStore) ListSettlements(ctx context.Context) ([]*models.Settlement, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, amount, paid_by, paid_to, date, note, created_at
		 FROM settlements ORDER BY date DESC, created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}
	defer rows.Close()

	var settlements []*models.Settlement
	for rows.Next() {
		st := &models.Settlement{}
		var paidBy, paidTo string
		var note sql.NullString
		if err := rows.Scan(&st.ID, &st.Amount, &paidBy, &paidTo, &st.Date, &note, &st.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan settlement: %w", err)
		}
		st.PaidBy = models.Party(paidBy)
		st.PaidTo = models.Party(paidTo)
		if note.Valid {
			st.Note = note.String
		}
		settlements = append(settlements, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate settlements: %w", err)
	}
	return settlements, nil
}
