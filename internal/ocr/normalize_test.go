package ocr

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"crlf", "a\r\nb\rc", "a\nb\nc"},
		{"tabs and runs", "a\t\tb   c", "a b c"},
		{"blank line collapse", "a\n\n\n\n\nb", "a\n\nb"},
		{"trailing spaces", "a   \nb", "a\nb"},
		{"surrounding whitespace", "\n\n  certificate  \n", "certificate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	in := "line one\r\n\r\n\r\n\tline   two   "
	once := Normalize(in)
	twice := Normalize(once)
	if once != twice {
		t.Fatalf("Normalize not idempotent: %q vs %q", once, twice)
	}
}
