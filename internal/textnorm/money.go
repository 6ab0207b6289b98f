// Package textnorm converts free-form text from receipts, spreadsheets and
// user input into canonical money (integer minor units) and calendar-date
// values. It is the single place where untrusted numeric text is interpreted;
// everything downstream works with int64 cents and ISO dates.
package textnorm

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// MoneyToMinorUnits parses free-form money text ("$1,234.50", "12.34", "12")
// into minor units (cents). It strips currency symbols and thousands
// separators, parses the remainder as decimal dollars, and rounds to the
// nearest cent. The second return value is false when the text contains no
// parseable amount.
func MoneyToMinorUnits(text string) (int64, bool) {
	var b strings.Builder
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9', r == '.', r == ',', r == '-':
			b.WriteRune(r)
		}
	}
	cleaned := strings.ReplaceAll(b.String(), ",", "")
	if cleaned == "" {
		return 0, false
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, false
	}
	return d.Shift(2).Round(0).IntPart(), true
}

// FormatMinorUnits renders minor units as a display string ("$12.34").
func FormatMinorUnits(amount int64) string {
	return money.New(amount, money.USD).Display()
}
