package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatReais renders an amount the Brazilian way: "R$ 1.234,56".
func FormatReais(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	return fmt.Sprintf("%sR$ %s", sign, FormatDecimalBR(amount))
}

// FormatDecimalBR renders an amount with 2 places, "." for thousands and "," for decimals.
func FormatDecimalBR(amount decimal.Decimal) string {
	s := amount.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	return sign + formatThousand(intPart) + "," + frac
}

// FormatPercent renders a percentage without trailing zeros: 40 -> "40", 12.5 -> "12,5".
func FormatPercent(p decimal.Decimal) string {
	return strings.Replace(p.String(), ".", ",", 1)
}

// ParseDecimal parses "55.00", "55,00", "1.234,56" or "R$ 55,00".
func ParseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "R$")
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if s == "" {
		return decimal.Zero, fmt.Errorf("valor vazio")
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	return decimal.NewFromString(s)
}

func formatThousand(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var out strings.Builder
	for i, c := range digits {
		if i != 0 && (len(digits)-i)%3 == 0 {
			out.WriteByte('.')
		}
		out.WriteRune(c)
	}
	return out.String()
}
