package utils

import "testing"

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2024-02-29")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if parsed.Year() != 2024 || parsed.Month() != 2 || parsed.Day() != 29 {
		t.Fatalf("unexpected date: %v", parsed)
	}

	for _, bad := range []string{"", "2024-13-01", "01/02/2024", "2024-2-1x"} {
		if _, err := ParseDate(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestSanitizeInput(t *testing.T) {
	if got := SanitizeInput("  hello\x00 world  "); got != "hello world" {
		t.Fatalf("unexpected result %q", got)
	}
}
