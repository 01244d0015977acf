package spreadsheet

import "testing"

func TestParseNetValue(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"1234.5", 1234.5, true},
		{"100", 100, true},
		{"1.2E+3", 1200, true},
		{"1.234", 1.234, true},
		{"R$ 1.234,56", 1234.56, true},
		{"1.234.567,89", 1234567.89, true},
		{"1,234.56", 1234.56, true},
		{"1.234.567", 1234567, true},
		{"10,5", 10.5, true},
		{"R$ 250,00", 250, true},
		{"", 0, true},
		{"   ", 0, true},
		{"abc", 0, false},
		{"-5", 0, false},
		{"(10,00)", 0, false},
		{"NaN", 0, false},
		{"1e400", 0, false},
		{"12abc", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseNetValue(tt.in)
			if ok != tt.wantOK {
				t.Errorf("ParseNetValue(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("ParseNetValue(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
