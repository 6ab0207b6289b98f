package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pairshare/pairshare/internal/models"
)

// CreateSettlement persists a new settlement to the database.
func (s *SQLiteStore) CreateSettlement(ctx context.Context, settlement *models.Settlement) error {
	settlement.EnsureID()

	var note interface{}
	if settlement.Note != "" {
		note = settlement.Note
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settlements (id, amount, paid_by, paid_to, date, note, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		settlement.ID, settlement.Amount, string(settlement.PaidBy), string(settlement.PaidTo),
		settlement.Date, note, settlement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert settlement: %w", err)
	}
	return nil
}

// ListSettlements retrieves all settlements, newest date first.
func (s *SQLiteStore) ListSettlements(ctx context.Context) ([]*models.Settlement, error) {
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
