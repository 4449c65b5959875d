package cmd

import (
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short ascii", "liberty", 36, "liberty"},
		{"exact fit", "abcdef", 6, "abcdef"},
		{"long ascii", "abcdefghij", 8, "abcde..."},
		{"short korean", "기본권, 평등권", 36, "기본권, 평등권"},
		{"long korean", "기본권과 평등권과 자유권과 참정권과 청구권", 12, "기본권과 평등권과..."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := truncate(tc.in, tc.max)
			if got != tc.want {
				t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
			}
			if !utf8.ValidString(got) {
				t.Fatalf("truncate(%q, %d) produced invalid UTF-8: %q", tc.in, tc.max, got)
			}
		})
	}
}
