package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	wordUnits    = []string{"", "um", "dois", "três", "quatro", "cinco", "seis", "sete", "oito", "nove"}
	wordTeens    = []string{"dez", "onze", "doze", "treze", "quatorze", "quinze", "dezesseis", "dezessete", "dezoito", "dezenove"}
	wordTens     = []string{"", "", "vinte", "trinta", "quarenta", "cinquenta", "sessenta", "setenta", "oitenta", "noventa"}
	wordHundreds = []string{"", "cento", "duzentos", "trezentos", "quatrocentos", "quinhentos", "seiscentos", "setecentos", "oitocentos", "novecentos"}
)

// AmountToWords spells a monetary amount in Portuguese for legal documents,
// e.g. 125.10 -> "cento e vinte e cinco reais e dez centavos".
// The amount is rounded to centavos first; the sign is ignored.
func AmountToWords(amount decimal.Decimal) string {
	cents := amount.Abs().Shift(2).Round(0).IntPart()
	reais := cents / 100
	centavos := cents % 100

	parts := make([]string, 0, 2)
	if reais > 0 {
		parts = append(parts, integerWords(reais)+currencyNoun(reais))
	}
	if centavos > 0 {
		noun := " centavos"
		if centavos == 1 {
			noun = " centavo"
		}
		parts = append(parts, integerWords(centavos)+noun)
	}
	if len(parts) == 0 {
		return "zero reais"
	}
	return strings.Join(parts, " e ")
}

// IntegerToWords spells a whole number ("zero" for 0).
func IntegerToWords(n int64) string {
	if n < 0 {
		n = -n
	}
	if n == 0 {
		return "zero"
	}
	return integerWords(n)
}

func currencyNoun(reais int64) string {
	switch {
	case reais == 1:
		return " real"
	case reais >= 1_000_000 && reais%1_000_000 == 0:
		// "um milhão de reais"
		return " de reais"
	default:
		return " reais"
	}
}

func integerWords(n int64) string {
	switch {
	case n >= 1_000_000:
		millions, rest := n/1_000_000, n%1_000_000
		head := "um milhão"
		if millions > 1 {
			head = integerWords(millions) + " milhões"
		}
		if rest == 0 {
			return head
		}
		return head + " e " + integerWords(rest)
	case n >= 1000:
		thousands, rest := n/1000, n%1000
		head := "mil"
		if thousands > 1 {
			head = integerWords(thousands) + " mil"
		}
		if rest == 0 {
			return head
		}
		return head + " e " + integerWords(rest)
	default:
		return hundredsWords(n)
	}
}

// hundredsWords handles 1..999.
func hundredsWords(n int64) string {
	if n == 100 {
		return "cem"
	}

	parts := make([]string, 0, 3)
	if h := n / 100; h > 0 {
		parts = append(parts, wordHundreds[h])
	}

	rest := n % 100
	switch {
	case rest >= 20:
		parts = append(parts, wordTens[rest/10])
		if u := rest % 10; u > 0 {
			parts = append(parts, wordUnits[u])
		}
	case rest >= 10:
		parts = append(parts, wordTeens[rest-10])
	case rest > 0:
		parts = append(parts, wordUnits[rest])
	}
	return strings.Join(parts, " e ")
}
