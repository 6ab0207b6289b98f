package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Settlement represents a real-world payment between the partners that
// reduces the payer's outstanding owed balance.
type Settlement struct {
	// ID is the unique identifier for the settlement (UUID format).
	ID string `json:"id"`

	// Amount is the payment amount in minor units. Always > 0.
	Amount int64 `json:"amount"`

	// PaidBy is the partner who made the transfer (the debtor settling up).
	PaidBy Party `json:"paidBy"`

	// PaidTo is the partner who received it. Always the other party.
	PaidTo Party `json:"paidTo"`

	// Date is the calendar date of the transfer in YYYY-MM-DD form.
	Date string `json:"date"`

	// Note is an optional free-form annotation.
	Note string `json:"note,omitempty"`

	// CreatedAt is the Unix timestamp when the settlement was recorded.
	CreatedAt int64 `json:"createdAt"`
}

// Validate checks the settlement invariants.
func (s *Settlement) Validate() error {
	if s.Amount <= 0 {
		return fmt.Errorf("amount must be positive, got %d", s.Amount)
	}
	if !s.PaidBy.Valid() {
		return fmt.Errorf("paidBy must be %q or %q", PartyA, PartyB)
	}
	if s.PaidTo != s.PaidBy.Other() {
		return fmt.Errorf("paidTo must be the party other than paidBy")
	}
	if s.Date == "" {
		return fmt.Errorf("date is required")
	}
	return nil
}

// EnsureID populates ID and CreatedAt if they are not set.
func (s *Settlement) EnsureID() {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.CreatedAt == 0 {
		s.CreatedAt = time.Now().Unix()
	}
}

// Balance is the derived net position between the partners. It is never
// stored; it is recomputed from the full history on every read.
type Balance struct {
	// Net is the outstanding amount in minor units.
	// Positive means PartyB owes PartyA; negative the reverse.
	Net int64 `json:"net"`

	// PartyATotalPaid is everything PartyA has paid across all expenses.
	PartyATotalPaid int64 `json:"partner1Total"`

	// PartyBTotalPaid is everything PartyB has paid across all expenses.
	PartyBTotalPaid int64 `json:"partner2Total"`
}
