package ui

import (
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"cut", "hello world", 8, "hello w…"},
		{"one", "hello", 1, "…"},
		{"zero", "hello", 0, ""},
		{"empty", "", 4, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := truncate(tc.in, tc.max); got != tc.want {
				t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 5); got != "ab   " {
		t.Fatalf("padRight = %q, want %q", got, "ab   ")
	}
	if got := padRight("abcdef", 4); lineWidth(got) != 4 {
		t.Fatalf("padRight overflow width = %d, want 4", lineWidth(got))
	}
}

func TestWrap(t *testing.T) {
	lines := wrap("one two three four five", 9)
	if len(lines) == 0 {
		t.Fatal("wrap returned nothing")
	}
	for _, l := range lines {
		if lineWidth(l) > 9 {
			t.Fatalf("line %q wider than 9 cells", l)
		}
	}
	if joined := strings.Join(lines, " "); joined != "one two three four five" {
		t.Fatalf("wrap lost words: %q", joined)
	}
}

func TestWrap_Degenerate(t *testing.T) {
	if got := wrap("", 10); got != nil {
		t.Fatalf("wrap empty = %v, want nil", got)
	}
	if got := wrap("text", 0); got != nil {
		t.Fatalf("wrap zero width = %v, want nil", got)
	}
}
