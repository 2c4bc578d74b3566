package report

import (
	"math"

	"github.com/hechen2/fapiaosum/internal/invoice"
)

// AmountColumn selects which money column feeds the aggregations. Gross
// (tax-inclusive) is preferred whenever it exists in the schema.
type AmountColumn int

const (
	// AmountGross sums the tax-inclusive total. Default.
	AmountGross AmountColumn = iota
	// AmountNet sums the amount excluding tax.
	AmountNet
)

// ParseAmountColumn maps the external column name to an AmountColumn; any
// value other than "net" selects gross.
func ParseAmountColumn(s string) AmountColumn {
	if s == "net" {
		return AmountNet
	}
	return AmountGross
}

func (c AmountColumn) value(r invoice.LineRecord) (float64, bool) {
	switch c {
	case AmountNet:
		if r.NetAmount != nil {
			return *r.NetAmount, true
		}
	default:
		if r.GrossAmount != nil {
			return *r.GrossAmount, true
		}
	}
	return 0, false
}

// Total sums the chosen column over all records. An unknown amount
// contributes nothing; it is never guessed.
func Total(records []invoice.LineRecord, col AmountColumn) float64 {
	var sum float64
	for _, r := range records {
		if v, ok := col.value(r); ok {
			sum += v
		}
	}
	return sum
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
