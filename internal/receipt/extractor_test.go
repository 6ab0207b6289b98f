package receipt

import (
	"encoding/json"
	"math"
	"testing"
)

func field(typeText, valueText string, confidence float64) SummaryField {
	return SummaryField{
		Type:           &FieldType{Text: typeText, Confidence: confidence},
		ValueDetection: &Detection{Text: valueText, Confidence: confidence},
	}
}

func TestPickBestField(t *testing.T) {
	tests := []struct {
		name   string
		fields []SummaryField
		wanted []string
		want   string // expected value text, "" means nil
	}{
		{
			name: "highest confidence wins",
			fields: []SummaryField{
				field("VENDOR_NAME", "WALMRT", 60),
				field("VENDOR_NAME", "WALMART", 95),
			},
			wanted: []string{"VENDOR_NAME"},
			want:   "WALMART",
		},
		{
			name: "ties keep input order",
			fields: []SummaryField{
				field("VENDOR_NAME", "first", 80),
				field("VENDOR_NAME", "second", 80),
			},
			wanted: []string{"VENDOR_NAME"},
			want:   "first",
		},
		{
			name: "type label matching is case insensitive",
			fields: []SummaryField{
				{Type: &FieldType{Text: "vendor_name"}, ValueDetection: &Detection{Text: "Target", Confidence: 90}},
			},
			wanted: []string{"VENDOR_NAME"},
			want:   "Target",
		},
		{
			name: "empty values are skipped",
			fields: []SummaryField{
				field("TOTAL", "", 99),
				field("TOTAL", "12.00", 50),
			},
			wanted: []string{"TOTAL"},
			want:   "12.00",
		},
		{
			name: "absent type is skipped",
			fields: []SummaryField{
				{ValueDetection: &Detection{Text: "orphan", Confidence: 99}},
			},
			wanted: []string{"TOTAL"},
			want:   "",
		},
		{
			name:   "no fields",
			fields: nil,
			wanted: []string{"TOTAL"},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PickBestField(tt.fields, tt.wanted...)
			if tt.want == "" {
				if got != nil {
					t.Fatalf("PickBestField() = %+v, want nil", got)
				}
				return
			}
			if got == nil {
				t.Fatalf("PickBestField() = nil, want value %q", tt.want)
			}
			if got.ValueText != tt.want {
				t.Errorf("PickBestField().ValueText = %q, want %q", got.ValueText, tt.want)
			}
		})
	}
}

func TestPickBestTotalPrefersTotalOverSubtotal(t *testing.T) {
	fields := []SummaryField{
		field("SUBTOTAL", "90.00", 99),
		field("TOTAL", "99.50", 60),
	}
	got := PickBestTotal(fields)
	if got == nil || got.ValueText != "99.50" {
		t.Fatalf("PickBestTotal() = %+v, want the TOTAL field despite lower confidence", got)
	}

	// Subtotal is used only when no total-type field exists at all.
	got = PickBestTotal([]SummaryField{field("SUBTOTAL", "90.00", 80)})
	if got == nil || got.ValueText != "90.00" {
		t.Fatalf("PickBestTotal() = %+v, want the SUBTOTAL fallback", got)
	}
}

func TestExtract(t *testing.T) {
	result := &AnalyzeExpenseResult{
		ExpenseDocuments: []ExpenseDocument{{
			SummaryFields: []SummaryField{
				field("VENDOR_NAME", "Whole Foods Market", 90),
				field("TOTAL", "$42.80", 80),
				field("INVOICE_RECEIPT_DATE", "12/09/25", 70),
			},
			LineItemGroups: []LineItemGroup{{
				LineItems: []LineItem{
					{LineItemExpenseFields: []SummaryField{
						field("ITEM", "Organic Apples", 88),
						field("PRICE", "4.99", 91),
						field("QUANTITY", "2", 85),
					}},
					{LineItemExpenseFields: []SummaryField{
						field("PRICE", "10.00", 75),
					}},
					{LineItemExpenseFields: []SummaryField{
						field("QUANTITY", "3", 99), // neither description nor price: dropped
					}},
				},
			}},
		}},
	}

	got := Extract(result)

	if got.MerchantName != "Whole Foods Market" {
		t.Errorf("MerchantName = %q", got.MerchantName)
	}
	if got.Total == nil || *got.Total != 4280 {
		t.Errorf("Total = %v, want 4280", got.Total)
	}
	if got.Date != "2025-12-09" {
		t.Errorf("Date = %q, want 2025-12-09", got.Date)
	}
	if want := (90.0 + 80.0 + 70.0) / 3 / 100; math.Abs(got.Confidence-want) > 1e-9 {
		t.Errorf("Confidence = %v, want %v", got.Confidence, want)
	}
	if got.NeedsReview() {
		t.Error("NeedsReview() = true for 0.8 confidence")
	}

	if len(got.LineItems) != 2 {
		t.Fatalf("LineItems = %d, want 2", len(got.LineItems))
	}
	first := got.LineItems[0]
	if first.Description != "Organic Apples" || first.Price == nil || *first.Price != 499 || first.Quantity != 2 {
		t.Errorf("first line item = %+v", first)
	}
	second := got.LineItems[1]
	if second.Description != "" || second.Price == nil || *second.Price != 1000 {
		t.Errorf("second line item = %+v", second)
	}
}

// Missing fields lower nothing: the average covers only found fields.
func TestExtractConfidenceLeniency(t *testing.T) {
	result := &AnalyzeExpenseResult{
		ExpenseDocuments: []ExpenseDocument{{
			SummaryFields: []SummaryField{
				field("TOTAL", "10.00", 90),
			},
		}},
	}
	got := Extract(result)
	if math.Abs(got.Confidence-0.9) > 1e-9 {
		t.Errorf("Confidence = %v, want 0.9 when only the total was found", got.Confidence)
	}
}

func TestExtractDegradesGracefully(t *testing.T) {
	if got := Extract(nil); got.Confidence != 0 || got.Total != nil {
		t.Errorf("Extract(nil) = %+v, want empty", got)
	}
	if got := Extract(&AnalyzeExpenseResult{}); got.Confidence != 0 {
		t.Errorf("Extract(empty) = %+v, want empty", got)
	}

	// Unparseable money and date stay absent instead of erroring.
	result := &AnalyzeExpenseResult{
		ExpenseDocuments: []ExpenseDocument{{
			SummaryFields: []SummaryField{
				field("TOTAL", "N/A", 90),
				field("TRANSACTION_DATE", "sometime", 90),
			},
		}},
	}
	got := Extract(result)
	if got.Total != nil {
		t.Errorf("Total = %v, want nil for unparseable text", got.Total)
	}
	if got.Date != "" {
		t.Errorf("Date = %q, want empty for unparseable text", got.Date)
	}
	// The fields were still found; their confidence still counts.
	if math.Abs(got.Confidence-0.9) > 1e-9 {
		t.Errorf("Confidence = %v, want 0.9", got.Confidence)
	}
}

// The upstream schema carries many fields we ignore; decoding must not choke.
func TestAnalyzeExpenseResultDecodesLooseJSON(t *testing.T) {
	raw := `{
		"ExpenseDocuments": [{
			"ExpenseIndex": 1,
			"SummaryFields": [
				{"Type": {"Text": "TOTAL", "Confidence": 97.1},
				 "ValueDetection": {"Text": "$12.34", "Confidence": 96.5, "Geometry": {}},
				 "LabelDetection": {"Text": "Total", "Confidence": 93.0}}
			],
			"LineItemGroups": [{"LineItemGroupIndex": 1, "LineItems": []}]
		}]
	}`
	var result AnalyzeExpenseResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	got := Extract(&result)
	if got.Total == nil || *got.Total != 1234 {
		t.Errorf("Total = %v, want 1234", got.Total)
	}
}
