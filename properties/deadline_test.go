package properties

import (
	"testing"
	"time"
)

func TestParseDeadline_Formats(t *testing.T) {
	tests := []struct {
		raw  string
		want string // expected date as 2006-01-02, empty means unparseable
	}{
		{"2025-01-15", "2025-01-15"},
		{"4/3/2025", "2025-04-03"},
		{"12/31/2024", "2024-12-31"},
		{"8/18/25", "2025-08-18"},
		{"12/31/99", "1999-12-31"},
		{"4-3-2025", "2025-04-03"},
		{"8-18-25", "2025-08-18"},
		{"6/1/51", "1951-06-01"},
		{"6/1/50", "2050-06-01"}, // pivot: 50 is not above 50
		{"13/45/99", ""},
		{"2/30/2025", ""},
		{"0/10/2025", ""},
		{"2025/01/15", ""},
		{"01-15", ""},
		{"soon", ""},
		{"N/A", ""},
		{"", ""},
	}

	for _, tt := range tests {
		got, ok := ParseDeadline(tt.raw)
		if tt.want == "" {
			if ok {
				t.Errorf("ParseDeadline(%q) = %v, want unparseable", tt.raw, got)
			}
			continue
		}
		if !ok {
			t.Errorf("ParseDeadline(%q) unparseable, want %s", tt.raw, tt.want)
			continue
		}
		if got.Format("2006-01-02") != tt.want {
			t.Errorf("ParseDeadline(%q) = %s, want %s", tt.raw, got.Format("2006-01-02"), tt.want)
		}
	}
}

func TestParseDeadline_LocalTime(t *testing.T) {
	d, ok := ParseDeadline("2025-06-15")
	if !ok {
		t.Fatal("expected parseable date")
	}
	if d.Location() != time.Local {
		t.Errorf("expected local time, got %v", d.Location())
	}
	if d.Hour() != 0 || d.Minute() != 0 {
		t.Errorf("expected midnight, got %v", d)
	}
}
