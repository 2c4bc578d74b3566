package report

import (
	"sort"

	"github.com/hechen2/fapiaosum/internal/invoice"
)

// Dimension is the secondary grouping axis of a cross-tabulation: the short
// issue date when the batch carries dates, otherwise the source file name.
type Dimension int

const (
	DimDate Dimension = iota
	DimFile
)

// Label returns the display name of the axis.
func (d Dimension) Label() string {
	if d == DimFile {
		return "发票文件"
	}
	return "开票日期"
}

func (d Dimension) valueOf(r invoice.LineRecord) string {
	if d == DimFile {
		return r.File
	}
	return invoice.ShortDate(r.Header.IssueDate)
}

// DimensionFor picks the cross-tab axis for a record set: issue date when any
// record carries one, source file otherwise.
func DimensionFor(records []invoice.LineRecord) Dimension {
	for _, r := range records {
		if r.Header.IssueDate != "" {
			return DimDate
		}
	}
	return DimFile
}

// PivotRow is one row of a pivot: its label, one value per column, and the
// row total.
type PivotRow struct {
	Label  string    `json:"label"`
	Values []float64 `json:"values"`
	Total  float64   `json:"total"`
}

// Pivot is a fully materialized matrix of sums with an appended total row and
// total column. Rows excludes the total row; it is carried separately so the
// grand total sits at TotalRow.Total.
type Pivot struct {
	Index    string     `json:"index"`
	Columns  []string   `json:"columns"`
	Rows     []PivotRow `json:"rows"`
	TotalRow PivotRow   `json:"total_row"`
}

// CrossTabResult is the outcome of a cross-tabulation. With two or more
// distinct secondary values both pivot views are populated; with exactly one
// the result degenerates to a plain category rollup scoped to that value and
// the pivots stay nil. Values lists the distinct secondary values in sorted
// order.
type CrossTabResult struct {
	Dimension   string   `json:"dimension"`
	Values      []string `json:"values"`
	Single      *Rollup  `json:"single,omitempty"`
	ByCategory  *Pivot   `json:"by_category,omitempty"`
	ByDimension *Pivot   `json:"by_dimension,omitempty"`
}

// CrossTab builds the category × dimension matrix of summed amounts plus its
// transposed view, each with a total row and column. Records with an empty
// dimension value do not enter the matrix.
func CrossTab(records []invoice.LineRecord, col AmountColumn, dim Dimension) CrossTabResult {
	values := distinctValues(records, dim)
	result := CrossTabResult{Dimension: dim.Label(), Values: values}

	if len(values) == 0 {
		return result
	}
	if len(values) == 1 {
		single := ScopedRollup(records, col, dim, values[0])
		result.Single = &single
		return result
	}

	categories := distinctCategories(records)

	// sums[category][value]
	sums := make(map[string]map[string]float64)
	for _, r := range records {
		val := dim.valueOf(r)
		if val == "" {
			continue
		}
		if sums[r.Category] == nil {
			sums[r.Category] = make(map[string]float64)
		}
		if v, ok := col.value(r); ok {
			sums[r.Category][val] += v
		}
	}

	byCategory := buildPivot("类别", categories, values, func(row, column string) float64 {
		return sums[row][column]
	})
	byDimension := buildPivot(dim.Label(), values, categories, func(row, column string) float64 {
		return sums[column][row]
	})

	result.ByCategory = &byCategory
	result.ByDimension = &byDimension
	return result
}

func buildPivot(index string, rowLabels, colLabels []string, cell func(row, column string) float64) Pivot {
	p := Pivot{Index: index, Columns: colLabels}
	colTotals := make([]float64, len(colLabels))
	var grand float64

	for _, rl := range rowLabels {
		row := PivotRow{Label: rl, Values: make([]float64, len(colLabels))}
		for i, cl := range colLabels {
			v := cell(rl, cl)
			row.Values[i] = v
			row.Total += v
			colTotals[i] += v
		}
		grand += row.Total
		p.Rows = append(p.Rows, row)
	}

	p.TotalRow = PivotRow{Label: TotalLabel, Values: colTotals, Total: grand}
	return p
}

func distinctValues(records []invoice.LineRecord, dim Dimension) []string {
	set := make(map[string]struct{})
	for _, r := range records {
		if v := dim.valueOf(r); v != "" {
			set[v] = struct{}{}
		}
	}
	values := make([]string, 0, len(set))
	for v := range set {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

func distinctCategories(records []invoice.LineRecord) []string {
	set := make(map[string]struct{})
	for _, r := range records {
		set[r.Category] = struct{}{}
	}
	categories := make([]string, 0, len(set))
	for c := range set {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories
}
