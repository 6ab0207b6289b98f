package calculator

import (
	"github.com/pairshare/pairshare/internal/models"
)

// Reconcile folds the full expense and settlement history into a net
// balance. It is recomputed from scratch on every call: O(n) in history
// size, stateless, and therefore trivially consistent with the ledger.
//
// Algorithm:
//   - For each expense, the payer's total-paid grows by the full amount and
//     the non-payer accumulates their computed share. The payer's own share
//     is implicitly covered by having paid.
//   - Each settlement reduces the paying partner's outstanding owed amount,
//     clamped at zero. Overpayment is absorbed, not carried as credit; the
//     result is invariant under settlement reordering.
//   - Net is partyBOwes - partyAOwes: positive means B owes A.
func Reconcile(expenses []*models.Expense, settlements []*models.Settlement) models.Balance {
	var aPaid, bPaid, aOwes, bOwes int64

	for _, e := range expenses {
		shares := ComputeOwed(e)
		if e.PaidBy == models.PartyA {
			aPaid += e.Amount
			bOwes += shares.PartyBOwes
		} else {
			bPaid += e.Amount
			aOwes += shares.PartyAOwes
		}
	}

	for _, s := range settlements {
		if s.PaidBy == models.PartyA {
			aOwes = max(0, aOwes-s.Amount)
		} else {
			bOwes = max(0, bOwes-s.Amount)
		}
	}

	return models.Balance{
		Net:             bOwes - aOwes,
		PartyATotalPaid: aPaid,
		PartyBTotalPaid: bPaid,
	}
}
