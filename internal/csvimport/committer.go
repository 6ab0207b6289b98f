package csvimport

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/pairshare/pairshare/internal/models"
)

// ExpenseCreator is the narrow slice of the persistence collaborator the
// committer needs: one create call per draft. Any returned error is treated
// as a per-row failure; error subtypes are not interpreted here.
type ExpenseCreator interface {
	CreateExpense(ctx context.Context, expense *models.Expense) error
}

// Draft pairs a validated expense with its source row for diagnostics.
type Draft struct {
	RowNumber int
	Expense   *models.Expense
}

// Result is the batch commit outcome. Created + Failed + Skipped equals the
// total number of parsed rows.
type Result struct {
	Created int `json:"created"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

// Committer writes drafts through an ExpenseCreator with a bounded number
// of in-flight calls. Concurrency 1 (the default) is a strictly sequential
// loop: each row's outcome is observable before the next begins, which is
// what keeps the partial-failure semantics simple. Validation does not
// depend on row order, so higher concurrency changes latency, not results.
type Committer struct {
	Creator     ExpenseCreator
	Concurrency int
}

// Commit attempts every draft. A failed create increments the failed count
// and is logged with its row number; it never aborts the batch. The context
// is passed to each create call: cancelling it makes the remaining creates
// fail fast, still accounted per row, rather than abandoning the batch
// accounting mid-way.
func (c *Committer) Commit(ctx context.Context, drafts []Draft) Result {
	limit := c.Concurrency
	if limit < 1 {
		limit = 1
	}

	var created, failed atomic.Int64
	sem := make(chan struct{}, limit)
	var wg sync.WaitGroup

	for _, draft := range drafts {
		sem <- struct{}{}
		wg.Add(1)
		go func(d Draft) {
			defer wg.Done()
			defer func() { <-sem }()

			if err := c.Creator.CreateExpense(ctx, d.Expense); err != nil {
				failed.Add(1)
				commitFailedTotal.Inc()
				slog.Warn("csv import: row commit failed",
					"row", d.RowNumber,
					"description", d.Expense.Description,
					"error", err,
				)
				return
			}
			created.Add(1)
			commitCreatedTotal.Inc()
		}(draft)
	}
	wg.Wait()

	return Result{Created: int(created.Load()), Failed: int(failed.Load())}
}
