package invoice

import "strings"

// placeholderTokens are glyphs an invoice prints in the tax-amount column when
// the cell carries no value of its own.
var placeholderTokens = map[string]bool{
	"":    true,
	"***": true,
	"＊＊＊": true,
	"--":  true,
	"-":   true,
	"—":   true,
	"―":   true,
	"*":   true,
}

// zeroRateKeywords are the rate-column phrases that independently prove a
// zero-tax condition.
var zeroRateKeywords = []string{"免税", "不征", "零税率", "0%"}

// ResolveTaxAmount decides the tax amount for one line. Explicit data wins: a
// numeric token is returned as-is. A placeholder token is only inferable as
// zero when the rate text proves a zero-tax condition; anything else stays
// unknown, because fabricating a value would corrupt downstream totals.
func ResolveTaxAmount(token, taxRate string) (float64, bool) {
	tok := strings.TrimSpace(token)
	rate := strings.TrimSpace(taxRate)

	if v, ok := ParseNumber(tok); ok {
		return v, true
	}

	if placeholderTokens[tok] {
		for _, kw := range zeroRateKeywords {
			if strings.Contains(rate, kw) {
				return 0, true
			}
		}
	}

	return 0, false
}
