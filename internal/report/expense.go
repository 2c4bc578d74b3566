package report

import (
	"github.com/hechen2/fapiaosum/internal/invoice"
)

// ExpenseBucket is one reimbursement line: a display name and the invoice
// categories that fold into it.
type ExpenseBucket struct {
	Name       string   `yaml:"name" json:"name"`
	Categories []string `yaml:"categories" json:"categories"`
}

// ExpenseMapping is the fixed many-to-one category → reimbursement-bucket
// table. Bucket order is display order. The scope is intentionally small;
// deployments with a different taxonomy supply their own mapping file rather
// than a rules engine.
type ExpenseMapping struct {
	Buckets []ExpenseBucket `yaml:"buckets" json:"buckets"`
}

// DefaultExpenseMapping returns the built-in meal-expense table.
func DefaultExpenseMapping() ExpenseMapping {
	return ExpenseMapping{Buckets: []ExpenseBucket{
		{Name: "肉蛋禽", Categories: []string{"畜禽产品", "肉及肉制品"}},
		{Name: "粮油", Categories: []string{"植物油", "调味品", "谷物加工品", "谷物细粉"}},
		{Name: "海鲜", Categories: []string{"海水产品"}},
		{Name: "蔬菜", Categories: []string{"蔬菜", "水果"}},
	}}
}

func (m ExpenseMapping) bucketOf(category string) (string, bool) {
	for _, b := range m.Buckets {
		for _, c := range b.Categories {
			if c == category {
				return b.Name, true
			}
		}
	}
	return "", false
}

// ExpenseRow is one reimbursement line with its display sequence number.
type ExpenseRow struct {
	Seq    int     `json:"seq"`
	Bucket string  `json:"bucket"`
	Amount float64 `json:"amount"`
}

// ExpenseTable is the reimbursement rollup: every bucket of the mapping in
// display order, zero-filled when nothing mapped into it.
type ExpenseTable struct {
	Dates []string     `json:"dates,omitempty"`
	Rows  []ExpenseRow `json:"rows"`
	Total float64      `json:"total"`
}

// ExpenseRollup keeps only the records whose category maps to a bucket,
// groups them by bucket and sums the chosen amount column, rounded to cents.
// A non-empty dates slice restricts the rollup to those short issue dates;
// empty means all records.
func ExpenseRollup(records []invoice.LineRecord, col AmountColumn, m ExpenseMapping, dates []string) ExpenseTable {
	wanted := make(map[string]bool, len(dates))
	for _, d := range dates {
		wanted[d] = true
	}

	sums := make(map[string]float64)
	for _, r := range records {
		bucket, ok := m.bucketOf(r.Category)
		if !ok {
			continue
		}
		if len(wanted) > 0 && !wanted[invoice.ShortDate(r.Header.IssueDate)] {
			continue
		}
		if v, known := col.value(r); known {
			sums[bucket] += v
		}
	}

	table := ExpenseTable{Dates: dates}
	for i, b := range m.Buckets {
		amount := round2(sums[b.Name])
		table.Rows = append(table.Rows, ExpenseRow{Seq: i + 1, Bucket: b.Name, Amount: amount})
		table.Total += amount
	}
	table.Total = round2(table.Total)
	return table
}
