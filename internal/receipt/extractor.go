package receipt

import (
	"math"
	"strconv"
	"strings"

	"github.com/pairshare/pairshare/internal/textnorm"
)

// LowConfidenceThreshold is the aggregate confidence below which callers
// should ask the user to confirm the extraction rather than apply it.
const LowConfidenceThreshold = 0.70

// BestField is the winning candidate for one wanted field type.
type BestField struct {
	TypeText   string
	ValueText  string
	Confidence float64 // 0-100, as reported by the analysis service
}

// LineItemExtraction is one normalized line item. Price is nil when no
// parseable price was found; Quantity is zero when absent.
type LineItemExtraction struct {
	Description string `json:"description,omitempty"`
	Price       *int64 `json:"price,omitempty"`
	Quantity    int    `json:"quantity,omitempty"`
}

// Extraction is the normalized result of a receipt analysis. Absent fields
// stay nil/empty: extraction never fabricates a value.
type Extraction struct {
	MerchantName string               `json:"merchantName,omitempty"`
	Total        *int64               `json:"totalAmount,omitempty"`
	Date         string               `json:"date,omitempty"`
	Confidence   float64              `json:"confidence"` // 0-1
	LineItems    []LineItemExtraction `json:"lineItems,omitempty"`
}

// NeedsReview reports whether the extraction is confident enough to apply
// without human confirmation.
func (e Extraction) NeedsReview() bool {
	return e.Confidence < LowConfidenceThreshold
}

// PickBestField selects the highest-confidence field whose type label is in
// the wanted set and that carries a non-empty value. Ties keep the earlier
// field. Returns nil when nothing matches.
func PickBestField(fields []SummaryField, wantedTypes ...string) *BestField {
	var best *BestField
	for i := range fields {
		f := &fields[i]
		typeText := strings.ToUpper(f.typeText())
		valueText := f.valueText()
		if typeText == "" || valueText == "" {
			continue
		}
		wanted := false
		for _, w := range wantedTypes {
			if typeText == w {
				wanted = true
				break
			}
		}
		if !wanted {
			continue
		}
		if best == nil || f.confidence() > best.Confidence {
			best = &BestField{TypeText: typeText, ValueText: valueText, Confidence: f.confidence()}
		}
	}
	return best
}

// PickBestTotal prefers an actual total or amount-due field; a subtotal is
// only used when no total-type field exists at all, because subtotal
// excludes tax and would systematically under-report the amount owed.
func PickBestTotal(fields []SummaryField) *BestField {
	if total := PickBestField(fields, "TOTAL", "AMOUNT_DUE"); total != nil {
		return total
	}
	return PickBestField(fields, "SUBTOTAL")
}

// Extract normalizes the first expense document of an analysis result.
// A nil or empty result yields a zero-confidence empty extraction.
func Extract(result *AnalyzeExpenseResult) Extraction {
	var out Extraction
	if result == nil || len(result.ExpenseDocuments) == 0 {
		return out
	}
	doc := result.ExpenseDocuments[0]

	total := PickBestTotal(doc.SummaryFields)
	vendor := PickBestField(doc.SummaryFields, "VENDOR_NAME")
	date := PickBestField(doc.SummaryFields, "INVOICE_RECEIPT_DATE", "TRANSACTION_DATE")

	if total != nil {
		if cents, ok := textnorm.MoneyToMinorUnits(total.ValueText); ok {
			out.Total = &cents
		}
	}
	if vendor != nil {
		out.MerchantName = strings.TrimSpace(vendor.ValueText)
	}
	if date != nil {
		if iso, ok := textnorm.DateToISO(date.ValueText); ok {
			out.Date = iso
		}
	}

	// Average only the confidences of fields that were found: a receipt
	// missing one field is common and should not drag the whole score down.
	var sum float64
	var found int
	for _, f := range []*BestField{total, vendor, date} {
		if f != nil {
			sum += f.Confidence
			found++
		}
	}
	if found > 0 {
		out.Confidence = sum / float64(found) / 100
	}

	for _, group := range doc.LineItemGroups {
		for _, item := range group.LineItems {
			if li, ok := extractLineItem(item); ok {
				out.LineItems = append(out.LineItems, li)
			}
		}
	}
	return out
}

// extractLineItem scans an item's sub-fields for description, price and
// quantity. An item is kept only if it has a description or a parseable
// price; quantity is floored to a non-negative integer.
func extractLineItem(item LineItem) (LineItemExtraction, bool) {
	var out LineItemExtraction

	if desc := PickBestField(item.LineItemExpenseFields, "ITEM", "DESCRIPTION"); desc != nil {
		out.Description = strings.TrimSpace(desc.ValueText)
	}
	if price := PickBestField(item.LineItemExpenseFields, "PRICE", "AMOUNT", "UNIT_PRICE"); price != nil {
		if cents, ok := textnorm.MoneyToMinorUnits(price.ValueText); ok {
			out.Price = &cents
		}
	}
	if qty := PickBestField(item.LineItemExpenseFields, "QUANTITY"); qty != nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(qty.ValueText), 64); err == nil {
			if q := int(math.Floor(v)); q > 0 {
				out.Quantity = q
			}
		}
	}

	return out, out.Description != "" || out.Price != nil
}
