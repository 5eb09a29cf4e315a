package utils

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestAmountToWords(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "zero reais"},
		{"1", "um real"},
		{"2", "dois reais"},
		{"10", "dez reais"},
		{"15", "quinze reais"},
		{"21", "vinte e um reais"},
		{"100", "cem reais"},
		{"101", "cento e um reais"},
		{"115", "cento e quinze reais"},
		{"125.10", "cento e vinte e cinco reais e dez centavos"},
		{"200", "duzentos reais"},
		{"241.60", "duzentos e quarenta e um reais e sessenta centavos"},
		{"999", "novecentos e noventa e nove reais"},
		{"1000", "mil reais"},
		{"1001", "mil e um reais"},
		{"1500", "mil e quinhentos reais"},
		{"2000", "dois mil reais"},
		{"100000", "cem mil reais"},
		{"115300", "cento e quinze mil e trezentos reais"},
		{"1000000", "um milhão de reais"},
		{"2500000", "dois milhões e quinhentos mil reais"},
		{"0.01", "um centavo"},
		{"0.5", "cinquenta centavos"},
		{"3.005", "três reais e um centavo"},
		{"-7", "sete reais"},
	}
	for _, tc := range cases {
		got := AmountToWords(decimal.RequireFromString(tc.in))
		if got != tc.want {
			t.Errorf("AmountToWords(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestAmountToWordsHundredIsCem(t *testing.T) {
	got := AmountToWords(decimal.NewFromInt(100))
	if strings.Contains(got, "cento") {
		t.Fatalf("100 must render as cem, got %q", got)
	}
}

func TestAmountToWordsTeensDoNotCompound(t *testing.T) {
	got := AmountToWords(decimal.NewFromInt(115))
	if !strings.HasPrefix(got, "cento e quinze") {
		t.Fatalf("got %q", got)
	}
	if strings.Contains(got, "dez e cinco") {
		t.Fatalf("teens rendered as tens+units: %q", got)
	}
}

func TestAmountToWordsBareMil(t *testing.T) {
	got := AmountToWords(decimal.NewFromInt(1000))
	if strings.Contains(got, "um mil") {
		t.Fatalf("1000 must render bare mil, got %q", got)
	}
}

func TestAmountToWordsOmitsZeroCentavos(t *testing.T) {
	got := AmountToWords(decimal.RequireFromString("362.00"))
	if strings.Contains(got, "centavo") {
		t.Fatalf("zero centavos should be omitted, got %q", got)
	}
}

func TestIntegerToWords(t *testing.T) {
	if got := IntegerToWords(0); got != "zero" {
		t.Fatalf("IntegerToWords(0) = %q", got)
	}
	if got := IntegerToWords(19); got != "dezenove" {
		t.Fatalf("IntegerToWords(19) = %q", got)
	}
	if got := IntegerToWords(-40); got != "quarenta" {
		t.Fatalf("IntegerToWords(-40) = %q", got)
	}
}
