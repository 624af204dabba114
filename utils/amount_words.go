package utils

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	thousand = 1000
	lakh     = 100000
	crore    = 10000000
)

var (
	ErrNegativeAmount = errors.New("amount must not be negative")
	ErrInvalidWords   = errors.New("not an amount in words")
)

var (
	onesWords  = [...]string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine"}
	tensWords  = [...]string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}
	teensWords = [...]string{"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
		"Sixteen", "Seventeen", "Eighteen", "Nineteen"}
)

// AmountToWords spells a rupee amount using the Indian grouping
// (Hundred, Thousand, Lakh, Crore), e.g. 1234567 ->
// "Twelve Lakh Thirty Four Thousand Five Hundred Sixty Seven".
func AmountToWords(n int64) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: %d", ErrNegativeAmount, n)
	}
	if n == 0 {
		return "Zero", nil
	}
	return indianWords(n), nil
}

func indianWords(n int64) string {
	parts := make([]string, 0, 4)

	// crore multiples can exceed 999, so they go through the whole converter again
	if crores := n / crore; crores > 0 {
		parts = append(parts, indianWords(crores)+" Crore")
		n %= crore
	}
	if lakhs := n / lakh; lakhs > 0 {
		parts = append(parts, hundredsWords(lakhs)+" Lakh")
		n %= lakh
	}
	if thousands := n / thousand; thousands > 0 {
		parts = append(parts, hundredsWords(thousands)+" Thousand")
		n %= thousand
	}
	if n > 0 {
		parts = append(parts, hundredsWords(n))
	}

	return strings.Join(parts, " ")
}

// hundredsWords handles 0..999.
func hundredsWords(n int64) string {
	switch {
	case n == 0:
		return ""
	case n < 10:
		return onesWords[n]
	case n < 20:
		return teensWords[n-10]
	case n < 100:
		if n%10 != 0 {
			return tensWords[n/10] + " " + onesWords[n%10]
		}
		return tensWords[n/10]
	default:
		if n%100 != 0 {
			return onesWords[n/100] + " Hundred " + hundredsWords(n%100)
		}
		return onesWords[n/100] + " Hundred"
	}
}

var wordValues = func() map[string]int64 {
	m := make(map[string]int64, 30)
	for i, w := range onesWords {
		if w != "" {
			m[strings.ToLower(w)] = int64(i)
		}
	}
	for i, w := range teensWords {
		m[strings.ToLower(w)] = int64(10 + i)
	}
	for i, w := range tensWords {
		if w != "" {
			m[strings.ToLower(w)] = int64(i * 10)
		}
	}
	return m
}()

// WordsToAmount parses text produced by AmountToWords back into a number.
func WordsToAmount(s string) (int64, error) {
	tokens := strings.Fields(strings.ToLower(s))
	if len(tokens) == 0 {
		return 0, ErrInvalidWords
	}
	if len(tokens) == 1 && tokens[0] == "zero" {
		return 0, nil
	}

	var total, current int64
	for _, tok := range tokens {
		if v, ok := wordValues[tok]; ok {
			current += v
			continue
		}
		switch tok {
		case "hundred":
			if current == 0 {
				return 0, fmt.Errorf("%w: %q", ErrInvalidWords, s)
			}
			current *= 100
		case "thousand":
			total += current * thousand
			current = 0
		case "lakh":
			total += current * lakh
			current = 0
		case "crore":
			total = (total + current) * crore
			current = 0
		default:
			return 0, fmt.Errorf("%w: unknown word %q", ErrInvalidWords, tok)
		}
	}

	return total + current, nil
}

// TitleWords title-cases an amount in words for the closing line of a receipt.
func TitleWords(s string) string {
	return cases.Title(language.English).String(s)
}
