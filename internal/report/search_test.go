package report

import (
	"testing"

	"github.com/hechen2/fapiaosum/internal/invoice"
)

func searchFixture() []invoice.LineRecord {
	qty1, qty2 := 72.0, 30.0
	price1, price2 := 5.0, 4.0
	records := []invoice.LineRecord{
		rec("a.pdf", "蔬菜", "芥兰苗", 360, "2024年1月5日"),
		rec("b.pdf", "蔬菜", "上海青", 120, "2024年1月6日"),
		rec("b.pdf", "水果", "砂糖橘", 90, "2024年1月6日"),
	}
	records[0].Unit, records[0].Quantity, records[0].UnitPrice = "斤", &qty1, &price1
	records[1].Unit, records[1].Quantity, records[1].UnitPrice = "斤", &qty2, &price2
	return records
}

func TestSearch_MatchesCategoryOrItem(t *testing.T) {
	records := searchFixture()

	byCategory := Search(records, "蔬菜")
	if len(byCategory) != 2 {
		t.Errorf("category match: expected 2, got %d", len(byCategory))
	}
	byItem := Search(records, "砂糖")
	if len(byItem) != 1 || byItem[0].Item != "砂糖橘" {
		t.Errorf("item match: got %+v", byItem)
	}
}

func TestSearch_EmptyQueryIsIdentity(t *testing.T) {
	records := searchFixture()
	got := Search(records, "")
	if len(got) != len(records) {
		t.Fatalf("expected identity, got %d records", len(got))
	}
	// Whitespace-only behaves the same.
	if got := Search(records, "   "); len(got) != len(records) {
		t.Fatalf("whitespace query: expected identity, got %d records", len(got))
	}
}

func TestSearch_IsCaseSensitive(t *testing.T) {
	records := []invoice.LineRecord{rec("a.pdf", "Fruit", "Apple", 10, "")}
	if got := Search(records, "apple"); len(got) != 0 {
		t.Errorf("expected case-sensitive miss, got %d records", len(got))
	}
	if got := Search(records, "Apple"); len(got) != 1 {
		t.Errorf("expected exact-case hit, got %d records", len(got))
	}
}

func TestSearch_NoMatches(t *testing.T) {
	if got := Search(searchFixture(), "海鲜"); len(got) != 0 {
		t.Errorf("expected no matches, got %d", len(got))
	}
}

func TestStats_Summarizes(t *testing.T) {
	matched := Search(searchFixture(), "蔬菜")
	stats := Stats(matched, AmountGross)

	if stats.Invoices != 2 {
		t.Errorf("invoices: expected 2, got %d", stats.Invoices)
	}
	if stats.Records != 2 {
		t.Errorf("records: expected 2, got %d", stats.Records)
	}
	if stats.TotalQuantity != 102 {
		t.Errorf("total quantity: expected 102, got %v", stats.TotalQuantity)
	}
	if stats.AvgQuantity != 51 {
		t.Errorf("avg quantity: expected 51, got %v", stats.AvgQuantity)
	}
	if stats.TotalAmount != 480 {
		t.Errorf("total amount: expected 480, got %v", stats.TotalAmount)
	}
	if stats.AvgPrice == nil || *stats.AvgPrice != 4.5 {
		t.Errorf("avg price: expected 4.5, got %v", stats.AvgPrice)
	}
	if stats.MaxPrice == nil || *stats.MaxPrice != 5 {
		t.Errorf("max price: expected 5, got %v", stats.MaxPrice)
	}
	if stats.MinPrice == nil || *stats.MinPrice != 4 {
		t.Errorf("min price: expected 4, got %v", stats.MinPrice)
	}
	if stats.Unit != "斤" {
		t.Errorf("unit: expected 斤, got %q", stats.Unit)
	}
}

func TestStats_MixedUnitsYieldNoLabel(t *testing.T) {
	records := searchFixture()
	records[1].Unit = "箱"
	stats := Stats(Search(records, "蔬菜"), AmountGross)
	if stats.Unit != "" {
		t.Errorf("expected no unit label for mixed units, got %q", stats.Unit)
	}
}

func TestStats_NoKnownPrices(t *testing.T) {
	stats := Stats([]invoice.LineRecord{rec("a.pdf", "蔬菜", "芥兰苗", 100, "")}, AmountGross)
	if stats.AvgPrice != nil || stats.MaxPrice != nil || stats.MinPrice != nil {
		t.Errorf("expected nil price stats, got %+v", stats)
	}
}

func TestGroupByInvoice(t *testing.T) {
	records := searchFixture()
	groups := GroupByInvoice(records, AmountGross)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].File != "a.pdf" || groups[0].Total != 360 {
		t.Errorf("group 0: got %+v", groups[0])
	}
	if groups[1].File != "b.pdf" || len(groups[1].Records) != 2 || groups[1].Total != 210 {
		t.Errorf("group 1: file=%s records=%d total=%v", groups[1].File, len(groups[1].Records), groups[1].Total)
	}
	if groups[0].DateShort != "2024-01-05" {
		t.Errorf("group 0 date: got %q", groups[0].DateShort)
	}
}
