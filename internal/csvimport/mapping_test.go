package csvimport

import (
	"reflect"
	"testing"
)

func TestGuessMapping(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		want    ColumnMapping
	}{
		{
			name:    "exact names",
			headers: []string{"description", "amount", "date"},
			want:    ColumnMapping{Description: "description", Amount: "amount", Date: "date"},
		},
		{
			name:    "case and punctuation ignored",
			headers: []string{"Description", "AMOUNT", "Paid-By"},
			want:    ColumnMapping{Description: "Description", Amount: "AMOUNT", PaidBy: "Paid-By"},
		},
		{
			name:    "synonyms",
			headers: []string{"Merchant", "Total", "Transaction Date", "Memo"},
			want:    ColumnMapping{Description: "Merchant", Amount: "Total", Date: "Transaction Date", Note: "Memo"},
		},
		{
			name:    "substring matches",
			headers: []string{"Item Description", "Total Cost", "Purchase Date"},
			want:    ColumnMapping{Description: "Item Description", Amount: "Total Cost", Date: "Purchase Date"},
		},
		{
			name:    "exact beats substring",
			headers: []string{"Amount Due", "Amount"},
			want:    ColumnMapping{Amount: "Amount"},
		},
		{
			name:    "unmatched left empty",
			headers: []string{"foo", "bar"},
			want:    ColumnMapping{},
		},
		{
			name:    "no headers",
			headers: nil,
			want:    ColumnMapping{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GuessMapping(tt.headers); got != tt.want {
				t.Errorf("GuessMapping(%v) = %+v, want %+v", tt.headers, got, tt.want)
			}
		})
	}
}

func TestMissingRequired(t *testing.T) {
	tests := []struct {
		name    string
		mapping ColumnMapping
		want    []Field
	}{
		{
			name:    "complete",
			mapping: ColumnMapping{Description: "a", Amount: "b", Date: "c"},
			want:    nil,
		},
		{
			name:    "optional fields do not count",
			mapping: ColumnMapping{Description: "a", Amount: "b", Date: "c", Category: "", Note: ""},
			want:    nil,
		},
		{
			name:    "missing date",
			mapping: ColumnMapping{Description: "a", Amount: "b"},
			want:    []Field{FieldDate},
		},
		{
			name:    "missing all",
			mapping: ColumnMapping{Note: "memo"},
			want:    []Field{FieldDescription, FieldAmount, FieldDate},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mapping.MissingRequired(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MissingRequired() = %v, want %v", got, tt.want)
			}
		})
	}
}
