package csvimport

import (
	"strings"
)

// Field is one expense field a CSV column can map onto.
type Field string

const (
	FieldDescription Field = "description"
	FieldAmount      Field = "amount"
	FieldDate        Field = "date"
	FieldCategory    Field = "category"
	FieldPaidBy      Field = "paidBy"
	FieldNote        Field = "note"
)

// RequiredFields are the fields a mapping must bind before validation can
// produce any draft.
var RequiredFields = []Field{FieldDescription, FieldAmount, FieldDate}

// ColumnMapping is the confirmed correspondence between spreadsheet columns
// and expense fields. Values are source column names; empty means unmapped.
type ColumnMapping struct {
	Description string `json:"description,omitempty"`
	Amount      string `json:"amount,omitempty"`
	Date        string `json:"date,omitempty"`
	Category    string `json:"category,omitempty"`
	PaidBy      string `json:"paidBy,omitempty"`
	Note        string `json:"note,omitempty"`
}

// Column returns the source column mapped to the given field.
func (m ColumnMapping) Column(f Field) string {
	switch f {
	case FieldDescription:
		return m.Description
	case FieldAmount:
		return m.Amount
	case FieldDate:
		return m.Date
	case FieldCategory:
		return m.Category
	case FieldPaidBy:
		return m.PaidBy
	case FieldNote:
		return m.Note
	}
	return ""
}

// MissingRequired lists the required fields the mapping leaves unbound.
func (m ColumnMapping) MissingRequired() []Field {
	var missing []Field
	for _, f := range RequiredFields {
		if m.Column(f) == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

// candidate header names per field, in priority order.
var fieldCandidates = map[Field][]string{
	FieldDescription: {"description", "merchant", "name", "what", "item", "vendor"},
	FieldAmount:      {"amount", "total", "price", "cost", "value"},
	FieldDate:        {"date", "when", "time", "purchased", "purchase date", "transaction date"},
	FieldCategory:    {"category", "type"},
	FieldPaidBy:      {"paid by", "payer", "paid", "who", "owner"},
	FieldNote:        {"note", "notes", "memo", "comment", "details"},
}

// normHeader collapses a header to lowercase alphanumeric words so "Paid-By"
// and "paid by" compare equal.
func normHeader(s string) string {
	var b strings.Builder
	lastSpace := true
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastSpace = false
		} else if !lastSpace {
			b.WriteRune(' ')
			lastSpace = true
		}
	}
	return strings.TrimSpace(b.String())
}

// GuessMapping proposes a column mapping from header names: exact normalized
// matches first, then substring matches, following each field's candidate
// list in priority order. Unmatched fields are left unmapped.
func GuessMapping(headers []string) ColumnMapping {
	byNorm := make(map[string]string, len(headers))
	var norms []string
	for _, h := range headers {
		n := normHeader(h)
		if n == "" {
			continue
		}
		if _, exists := byNorm[n]; !exists {
			byNorm[n] = h
			norms = append(norms, n)
		}
	}

	pick := func(candidates []string) string {
		for _, c := range candidates {
			if h, ok := byNorm[normHeader(c)]; ok {
				return h
			}
		}
		for _, c := range candidates {
			n := normHeader(c)
			for _, k := range norms {
				if strings.Contains(k, n) || strings.Contains(n, k) {
					return byNorm[k]
				}
			}
		}
		return ""
	}

	return ColumnMapping{
		Description: pick(fieldCandidates[FieldDescription]),
		Amount:      pick(fieldCandidates[FieldAmount]),
		Date:        pick(fieldCandidates[FieldDate]),
		Category:    pick(fieldCandidates[FieldCategory]),
		PaidBy:      pick(fieldCandidates[FieldPaidBy]),
		Note:        pick(fieldCandidates[FieldNote]),
	}
}
