package utils

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatReais(t *testing.T) {
	cases := map[string]string{
		"0":          "R$ 0,00",
		"55":         "R$ 55,00",
		"241.6":      "R$ 241,60",
		"1234.5":     "R$ 1.234,50",
		"1234567.89": "R$ 1.234.567,89",
		"-10":        "-R$ 10,00",
		"0.005":      "R$ 0,01",
	}
	for in, want := range cases {
		if got := FormatReais(decimal.RequireFromString(in)); got != want {
			t.Errorf("FormatReais(%s) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(decimal.RequireFromString("40.00")); got != "40" {
		t.Fatalf("got %q", got)
	}
	if got := FormatPercent(decimal.RequireFromString("12.5")); got != "12,5" {
		t.Fatalf("got %q", got)
	}
}

func TestParseDecimal(t *testing.T) {
	cases := map[string]string{
		"55.00":     "55",
		"55,50":     "55.5",
		"1.234,56":  "1234.56",
		"R$ 27,00":  "27",
		" 40 ":      "40",
	}
	for in, want := range cases {
		got, err := ParseDecimal(in)
		if err != nil {
			t.Fatalf("ParseDecimal(%q) error: %v", in, err)
		}
		if !got.Equal(decimal.RequireFromString(want)) {
			t.Errorf("ParseDecimal(%q) = %s, want %s", in, got, want)
		}
	}

	for _, bad := range []string{"", "abc", "R$"} {
		if _, err := ParseDecimal(bad); err == nil {
			t.Errorf("ParseDecimal(%q) expected error", bad)
		}
	}
}
