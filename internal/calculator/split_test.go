package calculator

import (
	"testing"

	"github.com/pairshare/pairshare/internal/models"
)

func TestComputeOwed(t *testing.T) {
	tests := []struct {
		name      string
		expense   models.Expense
		wantAOwes int64
		wantBOwes int64
	}{
		{
			name:      "equal even amount",
			expense:   models.Expense{Amount: 1000, PaidBy: models.PartyA, SplitType: models.SplitEqual},
			wantAOwes: 500,
			wantBOwes: 500,
		},
		{
			name:      "equal odd amount payer A keeps remainder off own share",
			expense:   models.Expense{Amount: 101, PaidBy: models.PartyA, SplitType: models.SplitEqual},
			wantAOwes: 50,
			wantBOwes: 51,
		},
		{
			name:      "equal odd amount payer B",
			expense:   models.Expense{Amount: 101, PaidBy: models.PartyB, SplitType: models.SplitEqual},
			wantAOwes: 51,
			wantBOwes: 50,
		},
		{
			name:      "equal ignores stored shares",
			expense:   models.Expense{Amount: 1000, PaidBy: models.PartyA, SplitType: models.SplitEqual, PartyAShare: 90, PartyBShare: 10},
			wantAOwes: 500,
			wantBOwes: 500,
		},
		{
			name:      "percentage 70/30",
			expense:   models.Expense{Amount: 1000, PaidBy: models.PartyA, SplitType: models.SplitPercentage, PartyAShare: 70, PartyBShare: 30},
			wantAOwes: 700,
			wantBOwes: 300,
		},
		{
			name:      "percentage rounding stays exact",
			expense:   models.Expense{Amount: 1001, PaidBy: models.PartyA, SplitType: models.SplitPercentage, PartyAShare: 33, PartyBShare: 67},
			wantAOwes: 330, // round(330.33)
			wantBOwes: 671, // the exact remainder, never rounded independently
		},
		{
			name:      "percentage fractional shares",
			expense:   models.Expense{Amount: 999, PaidBy: models.PartyB, SplitType: models.SplitPercentage, PartyAShare: 12.5, PartyBShare: 87.5},
			wantAOwes: 125, // round(124.875)
			wantBOwes: 874,
		},
		{
			name:      "exact passthrough",
			expense:   models.Expense{Amount: 1234, PaidBy: models.PartyB, SplitType: models.SplitExact, PartyAShare: 1000, PartyBShare: 234},
			wantAOwes: 1000,
			wantBOwes: 234,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeOwed(&tt.expense)
			if got.PartyAOwes != tt.wantAOwes || got.PartyBOwes != tt.wantBOwes {
				t.Errorf("ComputeOwed() = {A: %d, B: %d}, want {A: %d, B: %d}",
					got.PartyAOwes, got.PartyBOwes, tt.wantAOwes, tt.wantBOwes)
			}
			if tt.expense.SplitType != models.SplitExact {
				if sum := got.PartyAOwes + got.PartyBOwes; sum != tt.expense.Amount {
					t.Errorf("shares sum to %d, want %d", sum, tt.expense.Amount)
				}
			}
		})
	}
}

// Shares must sum to the amount for every valid percentage pair and any
// amount, including ones where both naive roundings would drift.
func TestComputeOwedPercentageSumInvariant(t *testing.T) {
	for _, share := range []float64{0, 1, 12.5, 33, 50, 66.7, 99, 100} {
		for _, amount := range []int64{1, 3, 99, 101, 1001, 123457} {
			e := models.Expense{
				Amount:      amount,
				PaidBy:      models.PartyA,
				SplitType:   models.SplitPercentage,
				PartyAShare: share,
				PartyBShare: 100 - share,
			}
			got := ComputeOwed(&e)
			if got.PartyAOwes+got.PartyBOwes != amount {
				t.Errorf("share %v of %d: %d + %d != %d", share, amount, got.PartyAOwes, got.PartyBOwes, amount)
			}
			if got.PartyAOwes < 0 || got.PartyBOwes < 0 {
				t.Errorf("share %v of %d: negative share {A: %d, B: %d}", share, amount, got.PartyAOwes, got.PartyBOwes)
			}
		}
	}
}
