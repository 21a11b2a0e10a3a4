// Package words renders currency amounts as Indian-numbering-system words
// (crore/lakh/thousand) for the printed invoice.
package words

import (
	"strings"

	"github.com/shopspring/decimal"
)

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
}

var teens = []string{
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// hundreds renders 0-999. Zero renders as the empty string; callers skip
// zero groups entirely.
func hundreds(n int64) string {
	var b strings.Builder
	if n >= 100 {
		b.WriteString(ones[n/100])
		b.WriteString(" Hundred ")
		n %= 100
	}
	switch {
	case n >= 10 && n <= 19:
		b.WriteString(teens[n-10])
	default:
		if n >= 20 {
			b.WriteString(tens[n/10])
			b.WriteString(" ")
			n %= 10
		}
		if n > 0 {
			b.WriteString(ones[n])
		}
	}
	return strings.TrimSpace(b.String())
}

// integerWords decomposes n on the Indian scale (crore, lakh, thousand,
// then hundreds), most significant group first. The crore group is
// unbounded, so it recurses through the same scale when it exceeds 999.
func integerWords(n int64) string {
	crore := n / 10_000_000
	n %= 10_000_000
	lakh := n / 100_000
	n %= 100_000
	thousand := n / 1_000
	rest := n % 1_000

	var b strings.Builder
	if crore > 0 {
		if crore > 999 {
			b.WriteString(integerWords(crore))
		} else {
			b.WriteString(hundreds(crore))
		}
		b.WriteString(" Crore ")
	}
	if lakh > 0 {
		b.WriteString(hundreds(lakh))
		b.WriteString(" Lakh ")
	}
	if thousand > 0 {
		b.WriteString(hundreds(thousand))
		b.WriteString(" Thousand ")
	}
	if rest > 0 {
		b.WriteString(hundreds(rest))
	}
	return strings.TrimSpace(b.String())
}

// Words converts a currency amount to words. The amount is rounded to two
// decimals; the integer part renders on the Indian scale and a non-zero
// paise remainder is appended as "and <words> Paise". A zero amount
// renders as "Zero". An amount with only paise renders the suffix without
// any leading scale words.
func Words(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(2)
	if d.IsZero() {
		return "Zero"
	}

	integer := d.Floor().IntPart()
	paise := d.Sub(d.Floor()).Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	var b strings.Builder
	if integer > 0 {
		b.WriteString(integerWords(integer))
	}
	if paise > 0 {
		b.WriteString(" and ")
		b.WriteString(hundreds(paise))
		b.WriteString(" Paise")
	}
	return strings.TrimSpace(b.String())
}
