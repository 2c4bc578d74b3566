package report

import (
	"sort"

	"github.com/hechen2/fapiaosum/internal/invoice"
)

// TotalLabel names the synthetic total row and column of the pivot views.
const TotalLabel = "合计"

// RollupRow is one category bucket of a rollup.
type RollupRow struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// Rollup is a per-category sum of the chosen amount column, sorted descending
// by sum. Scope names the secondary-dimension value the rollup is restricted
// to, when any.
type Rollup struct {
	Scope string      `json:"scope,omitempty"`
	Rows  []RollupRow `json:"rows"`
	Total float64     `json:"total"`
}

// CategoryRollup groups the records by category and sums the chosen amount
// column. Ties keep first-seen category order.
func CategoryRollup(records []invoice.LineRecord, col AmountColumn) Rollup {
	sums := make(map[string]float64)
	var order []string
	for _, r := range records {
		if _, seen := sums[r.Category]; !seen {
			order = append(order, r.Category)
		}
		if v, ok := col.value(r); ok {
			sums[r.Category] += v
		} else {
			sums[r.Category] += 0
		}
	}

	rows := make([]RollupRow, 0, len(order))
	var total float64
	for _, cat := range order {
		rows = append(rows, RollupRow{Label: cat, Amount: sums[cat]})
		total += sums[cat]
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Amount > rows[j].Amount })

	return Rollup{Rows: rows, Total: total}
}

// ScopedRollup restricts the rollup to records whose secondary-dimension
// value equals scope.
func ScopedRollup(records []invoice.LineRecord, col AmountColumn, dim Dimension, scope string) Rollup {
	var subset []invoice.LineRecord
	for _, r := range records {
		if dim.valueOf(r) == scope {
			subset = append(subset, r)
		}
	}
	rollup := CategoryRollup(subset, col)
	rollup.Scope = scope
	return rollup
}
