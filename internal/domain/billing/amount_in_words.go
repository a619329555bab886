// Package billing holds pure billing domain logic with no I/O.
package billing

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ones  = []string{"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}
	teens = []string{"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen", "seventeen", "eighteen", "nineteen"}
	tens  = []string{"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety"}
)

// AmountInWords renders a currency amount as English words on the Indian
// numbering scale (thousand, lakh, crore) with a paise remainder, e.g.
// "one lakh twenty three thousand rupees and fifty paise only".
func AmountInWords(amount decimal.Decimal) string {
	whole := amount.Floor().IntPart()
	paise := amount.Sub(amount.Floor()).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	if paise == 100 { // .995 and above rounds into the next rupee
		whole++
		paise = 0
	}

	wholeStr := "zero"
	if whole != 0 {
		wholeStr = toWords(whole)
	}
	rupees := wholeStr + " rupee"
	if whole != 1 {
		rupees += "s"
	}
	if paise > 0 {
		return rupees + " and " + toWords(paise) + " paise only"
	}
	return rupees + " only"
}

// toWords converts a positive integer to words, grouping by hundreds, then
// thousand (10^3), lakh (10^5) and crore (10^7), recursing on the remainder.
func toWords(n int64) string {
	switch {
	case n == 0:
		return ""
	case n < 10:
		return ones[n]
	case n < 20:
		return teens[n-10]
	case n < 100:
		return strings.TrimSpace(tens[n/10] + " " + ones[n%10])
	case n < 1000:
		s := ""
		if n/100 > 0 {
			s = ones[n/100] + " hundred"
		}
		return strings.TrimSpace(s + " " + toWords(n%100))
	case n < 100000:
		return strings.TrimSpace(toWords(n/1000) + " thousand " + toWords(n%1000))
	case n < 10000000:
		return strings.TrimSpace(toWords(n/100000) + " lakh " + toWords(n%100000))
	default:
		return strings.TrimSpace(toWords(n/10000000) + " crore " + toWords(n%10000000))
	}
}
