package calculator

import (
	"sort"

	"github.com/pairshare/pairshare/internal/models"
)

// MonthGroup is one month of expenses, keyed YYYY-MM.
type MonthGroup struct {
	Month    string            `json:"month"`
	Expenses []*models.Expense `json:"expenses"`
	Total    int64             `json:"total"`
}

// GroupByMonth buckets expenses by calendar month, newest month first.
// Expenses whose date is shorter than YYYY-MM (malformed history) are
// grouped under their raw date rather than dropped.
func GroupByMonth(expenses []*models.Expense) []MonthGroup {
	byMonth := make(map[string]*MonthGroup)
	for _, e := range expenses {
		key := e.Date
		if len(key) >= 7 {
			key = key[:7]
		}
		g, ok := byMonth[key]
		if !ok {
			g = &MonthGroup{Month: key}
			byMonth[key] = g
		}
		g.Expenses = append(g.Expenses, e)
		g.Total += e.Amount
	}

	groups := make([]MonthGroup, 0, len(byMonth))
	for _, g := range byMonth {
		groups = append(groups, *g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Month > groups[j].Month })
	return groups
}

// CategoryTotal is the spend in one category across the given expenses.
type CategoryTotal struct {
	Category models.Category `json:"category"`
	Total    int64           `json:"total"`
	Count    int             `json:"count"`
}

// CategoryTotals sums expenses per category, largest total first.
func CategoryTotals(expenses []*models.Expense) []CategoryTotal {
	byCat := make(map[models.Category]*CategoryTotal)
	for _, e := range expenses {
		t, ok := byCat[e.Category]
		if !ok {
			t = &CategoryTotal{Category: e.Category}
			byCat[e.Category] = t
		}
		t.Total += e.Amount
		t.Count++
	}

	totals := make([]CategoryTotal, 0, len(byCat))
	for _, t := range byCat {
		totals = append(totals, *t)
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Total != totals[j].Total {
			return totals[i].Total > totals[j].Total
		}
		return totals[i].Category < totals[j].Category
	})
	return totals
}
