package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Party identifies one of the two partners sharing the ledger.
type Party string

const (
	// PartyA is the first partner (the account owner in the original app).
	PartyA Party = "partner1"
	// PartyB is the second partner.
	PartyB Party = "partner2"
)

// Other returns the opposite party.
func (p Party) Other() Party {
	if p == PartyA {
		return PartyB
	}
	return PartyA
}

// Valid reports whether p is one of the two known parties.
func (p Party) Valid() bool {
	return p == PartyA || p == PartyB
}

// SplitType is the policy governing how an expense is divided.
type SplitType string

const (
	// SplitEqual divides the amount 50/50 regardless of stored shares.
	SplitEqual SplitType = "equal"
	// SplitPercentage divides by percentage shares summing to 100.
	SplitPercentage SplitType = "percentage"
	// SplitExact uses shares that are already minor-unit amounts.
	SplitExact SplitType = "exact"
)

// Expense represents a shared cost paid by one partner.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string `json:"id"`

	// Description is the human-readable label (e.g. "Dinner").
	Description string `json:"description"`

	// Amount is the total cost in minor units (cents). Always > 0.
	Amount int64 `json:"amount"`

	// PaidBy is the partner who paid the full amount up front.
	PaidBy Party `json:"paidBy"`

	// SplitType selects the division policy.
	SplitType SplitType `json:"splitType"`

	// PartyAShare and PartyBShare are interpreted per SplitType:
	// percentages summing to 100 for SplitPercentage, minor-unit amounts
	// summing to Amount for SplitExact, ignored for SplitEqual.
	PartyAShare float64 `json:"partner1Share"`
	PartyBShare float64 `json:"partner2Share"`

	// Category is the classified expense category.
	Category Category `json:"category"`

	// Date is the calendar date of the expense in YYYY-MM-DD form.
	Date string `json:"date"`

	// Note is an optional free-form annotation.
	Note string `json:"note,omitempty"`

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64 `json:"createdAt"`
}

// Validate checks the invariants an expense must hold before it enters
// the ledger. Shares are checked against the split type; SplitEqual
// ignores stored shares entirely.
func (e *Expense) Validate() error {
	if e.Description == "" {
		return fmt.Errorf("description is required")
	}
	if e.Amount <= 0 {
		return fmt.Errorf("amount must be positive, got %d", e.Amount)
	}
	if !e.PaidBy.Valid() {
		return fmt.Errorf("paidBy must be %q or %q", PartyA, PartyB)
	}
	switch e.SplitType {
	case SplitEqual:
		// Shares are implicit.
	case SplitPercentage:
		if e.PartyAShare+e.PartyBShare != 100 {
			return fmt.Errorf("percentage shares must sum to 100, got %v + %v", e.PartyAShare, e.PartyBShare)
		}
	case SplitExact:
		if int64(e.PartyAShare)+int64(e.PartyBShare) != e.Amount {
			return fmt.Errorf("exact shares must sum to the amount %d, got %v + %v", e.Amount, e.PartyAShare, e.PartyBShare)
		}
	default:
		return fmt.Errorf("unknown split type %q", e.SplitType)
	}
	if e.Date == "" {
		return fmt.Errorf("date is required")
	}
	return nil
}

// EnsureID populates ID and CreatedAt if they are not set.
func (e *Expense) EnsureID() {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt == 0 {
		e.CreatedAt = time.Now().Unix()
	}
}
