package report

import (
	"testing"

	"github.com/hechen2/fapiaosum/internal/invoice"
)

func TestExpenseRollup_MapsAndZeroFills(t *testing.T) {
	records := []invoice.LineRecord{
		rec("a.pdf", "畜禽产品", "鲜鸡蛋", 120, "2024年1月5日"),
		rec("a.pdf", "肉及肉制品", "五花肉", 80, "2024年1月5日"),
		rec("a.pdf", "蔬菜", "芥兰苗", 360, "2024年1月5日"),
		rec("a.pdf", "办公用品", "打印纸", 999, "2024年1月5日"), // not reimbursable
	}
	table := ExpenseRollup(records, AmountGross, DefaultExpenseMapping(), nil)

	if len(table.Rows) != 4 {
		t.Fatalf("expected 4 buckets, got %d", len(table.Rows))
	}
	want := []struct {
		bucket string
		amount float64
	}{
		{"肉蛋禽", 200},
		{"粮油", 0}, // zero-filled
		{"海鲜", 0}, // zero-filled
		{"蔬菜", 360},
	}
	for i, w := range want {
		row := table.Rows[i]
		if row.Seq != i+1 {
			t.Errorf("row %d: seq %d", i, row.Seq)
		}
		if row.Bucket != w.bucket || row.Amount != w.amount {
			t.Errorf("row %d: got (%s, %v), want (%s, %v)", i, row.Bucket, row.Amount, w.bucket, w.amount)
		}
	}
	if table.Total != 560 {
		t.Errorf("total: expected 560 (unmapped category excluded), got %v", table.Total)
	}
}

func TestExpenseRollup_DateFilter(t *testing.T) {
	records := []invoice.LineRecord{
		rec("a.pdf", "蔬菜", "芥兰苗", 100, "2024年1月5日"),
		rec("b.pdf", "蔬菜", "上海青", 200, "2024年1月6日"),
	}
	table := ExpenseRollup(records, AmountGross, DefaultExpenseMapping(), []string{"2024-01-06"})
	if table.Total != 200 {
		t.Errorf("filtered total: expected 200, got %v", table.Total)
	}

	// Empty filter means all dates.
	all := ExpenseRollup(records, AmountGross, DefaultExpenseMapping(), nil)
	if all.Total != 300 {
		t.Errorf("unfiltered total: expected 300, got %v", all.Total)
	}
}

func TestExpenseRollup_RoundsToCents(t *testing.T) {
	records := []invoice.LineRecord{
		rec("a.pdf", "水果", "砂糖橘", 10.375, ""),
	}
	table := ExpenseRollup(records, AmountGross, DefaultExpenseMapping(), nil)
	if table.Rows[3].Amount != 10.38 {
		t.Errorf("expected 10.38, got %v", table.Rows[3].Amount)
	}
}

func TestExpenseMapping_CustomBuckets(t *testing.T) {
	m := ExpenseMapping{Buckets: []ExpenseBucket{
		{Name: "饮品", Categories: []string{"乳制品", "饮料"}},
	}}
	records := []invoice.LineRecord{
		rec("a.pdf", "乳制品", "鲜奶", 30, ""),
		rec("a.pdf", "蔬菜", "芥兰苗", 100, ""),
	}
	table := ExpenseRollup(records, AmountGross, m, nil)
	if len(table.Rows) != 1 || table.Rows[0].Bucket != "饮品" || table.Rows[0].Amount != 30 {
		t.Errorf("custom mapping: got %+v", table.Rows)
	}
}
