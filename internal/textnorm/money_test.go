package textnorm

import "testing"

func TestMoneyToMinorUnits(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int64
		ok   bool
	}{
		{"dollars and cents", "12.34", 1234, true},
		{"currency symbol", "$12.34", 1234, true},
		{"thousands separators", "$1,234.50", 123450, true},
		{"whole dollars", "12", 1200, true},
		{"rounds half up", "0.125", 13, true},
		{"rounds down", "0.124", 12, true},
		{"negative", "-5.00", -500, true},
		{"surrounding text", "Total: $7.89 USD", 789, true},
		{"empty", "", 0, false},
		{"letters only", "abc", 0, false},
		{"lone separator", ".", 0, false},
		{"double decimal point", "12.34.56", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MoneyToMinorUnits(tt.text)
			if ok != tt.ok {
				t.Fatalf("MoneyToMinorUnits(%q) ok = %v, want %v", tt.text, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("MoneyToMinorUnits(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestFormatMinorUnits(t *testing.T) {
	if got := FormatMinorUnits(123450); got != "$1,234.50" {
		t.Errorf("FormatMinorUnits(123450) = %q, want %q", got, "$1,234.50")
	}
	if got := FormatMinorUnits(-500); got != "-$5.00" {
		t.Errorf("FormatMinorUnits(-500) = %q, want %q", got, "-$5.00")
	}
}
