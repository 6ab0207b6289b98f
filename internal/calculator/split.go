// Package calculator holds the pure arithmetic of the ledger: how an
// expense divides between the two partners and how the full history folds
// into a net balance. Everything here is deterministic and side-effect free.
package calculator

import (
	"math"

	"github.com/pairshare/pairshare/internal/models"
)

// Shares is the per-partner division of one expense, in minor units.
// PartyAOwes + PartyBOwes always equals the expense amount exactly.
type Shares struct {
	PartyAOwes int64
	PartyBOwes int64
}

// ComputeOwed computes each partner's share of an expense according to its
// split type.
//
// Equal: integer-divide by two; the leftover cent of an odd amount goes to
// whichever partner did not pay, so the payer never under-collects.
//
// Percentage: party A's share is rounded; party B gets the exact remainder.
// B is never rounded independently, which is what keeps the sum invariant
// exact for any valid percentage pair.
//
// Exact: shares are already minor-unit amounts and pass through as-is.
//
// ComputeOwed trusts its input: share validation (percentages summing to 100,
// exact shares summing to the amount) is the ingestion pipeline's job.
func ComputeOwed(e *models.Expense) Shares {
	switch e.SplitType {
	case models.SplitPercentage:
		aOwes := int64(math.Round(float64(e.Amount) * e.PartyAShare / 100))
		return Shares{
			PartyAOwes: aOwes,
			PartyBOwes: e.Amount - aOwes,
		}
	case models.SplitExact:
		return Shares{
			PartyAOwes: int64(e.PartyAShare),
			PartyBOwes: int64(e.PartyBShare),
		}
	default: // models.SplitEqual, regardless of stored shares
		half := e.Amount / 2
		remainder := e.Amount % 2
		s := Shares{PartyAOwes: half, PartyBOwes: half}
		if e.PaidBy == models.PartyA {
			s.PartyBOwes += remainder
		} else {
			s.PartyAOwes += remainder
		}
		return s
	}
}
