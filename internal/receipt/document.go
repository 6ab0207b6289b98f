// Package receipt extracts expense fields from the document-analysis
// structure returned by the OCR collaborator (AnalyzeExpense-shaped JSON).
// The schema is not under our control: every field is optional by
// construction (pointers, nil-safe accessors) and extraction degrades
// gracefully instead of erroring on absent pieces.
package receipt

// AnalyzeExpenseResult is the top-level document-analysis response.
type AnalyzeExpenseResult struct {
	ExpenseDocuments []ExpenseDocument `json:"ExpenseDocuments"`
}

// ExpenseDocument is one analyzed receipt: labeled summary fields plus
// optional grouped line items.
type ExpenseDocument struct {
	SummaryFields  []SummaryField  `json:"SummaryFields"`
	LineItemGroups []LineItemGroup `json:"LineItemGroups"`
}

// SummaryField is one labeled field with a detected value and confidence.
type SummaryField struct {
	Type           *FieldType `json:"Type,omitempty"`
	LabelDetection *Detection `json:"LabelDetection,omitempty"`
	ValueDetection *Detection `json:"ValueDetection,omitempty"`
}

// FieldType carries the field's type label (e.g. "TOTAL", "VENDOR_NAME").
type FieldType struct {
	Text       string  `json:"Text"`
	Confidence float64 `json:"Confidence"`
}

// Detection is a piece of recognized text with a 0-100 confidence score.
type Detection struct {
	Text       string  `json:"Text"`
	Confidence float64 `json:"Confidence"`
}

// LineItemGroup is a table of line items on the receipt.
type LineItemGroup struct {
	LineItems []LineItem `json:"LineItems"`
}

// LineItem is one row of a line-item table; its sub-fields reuse the
// summary-field shape with item-level type labels (ITEM, PRICE, QUANTITY).
type LineItem struct {
	LineItemExpenseFields []SummaryField `json:"LineItemExpenseFields"`
}

// typeText returns the field's type label, empty when absent.
func (f *SummaryField) typeText() string {
	if f.Type == nil {
		return ""
	}
	return f.Type.Text
}

// valueText returns the detected value text, empty when absent.
func (f *SummaryField) valueText() string {
	if f.ValueDetection == nil {
		return ""
	}
	return f.ValueDetection.Text
}

// confidence returns the value detection's confidence, falling back to the
// type label's confidence when the value carries none.
func (f *SummaryField) confidence() float64 {
	if f.ValueDetection != nil && f.ValueDetection.Confidence > 0 {
		return f.ValueDetection.Confidence
	}
	if f.Type != nil {
		return f.Type.Confidence
	}
	return 0
}
