package common

import (
	"strings"
	"testing"
)

func TestStripSeparators(t *testing.T) {
	for _, c := range []struct {
		in  string
		out string
	}{
		{"", ""},
		{"AB CD", "ABCD"},
		{"AB CD\nEF", "ABCDEF"},
		{"  \n\n ", ""},
		{"A\tB", "A\tB"},
	} {
		got := StripSeparators(c.in)
		if got != c.out {
			t.Errorf("StripSeparators(%q) => %q != %q", c.in, got, c.out)
		}
	}
}

func TestIsHexDigit(t *testing.T) {
	hex := "0123456789abcdefABCDEF"
	for i := 0; i < 256; i++ {
		c := byte(i)
		want := strings.IndexByte(hex, c) >= 0
		if got := IsHexDigit(c); got != want {
			t.Errorf("IsHexDigit(%q) => %v != %v", c, got, want)
		}
	}
}

func TestIsInvalidInput(t *testing.T) {
	err := error(NewInvalidInputErr(OddLength, 4, 'a'))

	if !IsInvalidInput(err, OddLength) {
		t.Fatalf("expected OddLength, got %v", err)
	}
	if IsInvalidInput(err, NonHexDigit) {
		t.Fatalf("OddLength error should not match NonHexDigit")
	}

	want := `invalid input, Odd Length, dangling 'a' at 4`
	if err.Error() != want {
		t.Fatalf("Error() => %s != %s", err.Error(), want)
	}

	if IsInvalidInput(nil, OddLength) {
		t.Fatalf("nil error should not match")
	}
}
