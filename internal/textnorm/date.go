package textnorm

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ISODateFormat is the canonical YYYY-MM-DD form all dates normalize to.
const ISODateFormat = "2006-01-02"

// genericLayouts are unambiguous formats tried before any slash-numeric
// interpretation. Numeric slash forms are deliberately absent: those go
// through the ordered month-first/day-first stages below.
var genericLayouts = []string{
	"2006-01-02",
	"2006-1-2",
	time.RFC3339,
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
	"Jan 2 2006",
	"2 Jan 2006",
	"2 January 2006",
	"02 Jan 2006",
}

var numericDate = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{2}|\d{4})$`)

// DateToISO normalizes free-form date text to YYYY-MM-DD. It tries, in order:
// a generic calendar parse, then M/D/Y (with a 2-digit-year pivot, <=50 means
// 2000s), then D/M/Y only when the first numeric group exceeds 12 so the
// day-first reading is unambiguous. The ordering is load-bearing: receipts
// and spreadsheets from different locales use incompatible conventions, and
// guessing wrong corrupts financial history, so ambiguous dates like
// 03/04/2025 always resolve month-first. Returns false when every stage fails.
func DateToISO(text string) (string, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return "", false
	}

	for _, layout := range genericLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(ISODateFormat), true
		}
	}

	m := numericDate.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	first, _ := strconv.Atoi(m[1])
	second, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	if len(m[3]) == 2 {
		if year <= 50 {
			year += 2000
		} else {
			year += 1900
		}
	}

	// Month-first reading wins whenever it is a real date.
	if iso, ok := ymd(year, first, second); ok {
		return iso, true
	}
	// Day-first only when the first group cannot be a month.
	if first > 12 {
		if iso, ok := ymd(year, second, first); ok {
			return iso, true
		}
	}
	return "", false
}

// ymd validates a year/month/day triple by round-tripping through time.Date,
// which normalizes overflow (e.g. Feb 30 becomes Mar 2).
func ymd(year, month, day int) (string, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return "", false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return "", false
	}
	return t.Format(ISODateFormat), true
}
