package textnorm

import "testing"

func TestDateToISO(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{"iso passthrough", "2025-01-02", "2025-01-02", true},
		{"iso single digits", "2025-1-2", "2025-01-02", true},
		{"textual month", "Jan 2, 2006", "2006-01-02", true},
		{"day first textual", "2 Jan 2006", "2006-01-02", true},
		{"month first slash", "3/4/2025", "2025-03-04", true},
		{"month first two digit year", "12/09/25", "2025-12-09", true},
		{"two digit year pivot low", "1/1/50", "2050-01-01", true},
		{"two digit year pivot high", "1/1/51", "1951-01-01", true},
		{"ambiguous resolves month first", "03/04/2025", "2025-03-04", true},
		{"unambiguous day first", "25/12/2025", "2025-12-25", true},
		{"day first with dashes", "25-12-2025", "2025-12-25", true},
		{"impossible both ways", "13/13/2025", "", false},
		{"invalid day", "2/30/2025", "", false},
		{"empty", "", "", false},
		{"garbage", "not a date", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DateToISO(tt.text)
			if ok != tt.ok {
				t.Fatalf("DateToISO(%q) ok = %v, want %v", tt.text, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("DateToISO(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
