package report

import (
	"strings"

	"github.com/hechen2/fapiaosum/internal/invoice"
)

// Search returns the records whose category or item contains the query as a
// substring. Matching is case-sensitive by project convention. An empty (or
// all-whitespace) query is the identity and returns the input unchanged.
func Search(records []invoice.LineRecord, query string) []invoice.LineRecord {
	q := strings.TrimSpace(query)
	if q == "" {
		return records
	}
	var matched []invoice.LineRecord
	for _, r := range records {
		if strings.Contains(r.Category, q) || strings.Contains(r.Item, q) {
			matched = append(matched, r)
		}
	}
	return matched
}

// SearchStats summarizes a query's matches: how many invoices and records are
// involved, the quantity and gross totals, and the unit-price spread. Price
// figures stay nil when no match carries a known price.
type SearchStats struct {
	Invoices      int      `json:"invoices"`
	Records       int      `json:"records"`
	TotalQuantity float64  `json:"total_quantity"`
	AvgQuantity   float64  `json:"avg_quantity"`
	TotalAmount   float64  `json:"total_amount"`
	AvgPrice      *float64 `json:"avg_price,omitempty"`
	MaxPrice      *float64 `json:"max_price,omitempty"`
	MinPrice      *float64 `json:"min_price,omitempty"`

	// Unit is the single distinct unit of the matches, or "" when they mix.
	Unit string `json:"unit,omitempty"`
}

// Stats computes SearchStats over a matched record set.
func Stats(records []invoice.LineRecord, col AmountColumn) SearchStats {
	stats := SearchStats{Records: len(records)}

	files := make(map[string]struct{})
	units := make(map[string]struct{})
	var priceSum float64
	var priceCount int

	for _, r := range records {
		files[r.File] = struct{}{}
		if r.Unit != "" {
			units[r.Unit] = struct{}{}
		}
		if r.Quantity != nil {
			stats.TotalQuantity += *r.Quantity
		}
		if v, ok := col.value(r); ok {
			stats.TotalAmount += v
		}
		if r.UnitPrice != nil {
			p := *r.UnitPrice
			priceSum += p
			priceCount++
			if stats.MaxPrice == nil || p > *stats.MaxPrice {
				stats.MaxPrice = &p
			}
			if stats.MinPrice == nil || p < *stats.MinPrice {
				stats.MinPrice = &p
			}
		}
	}

	stats.Invoices = len(files)
	if len(records) > 0 {
		stats.AvgQuantity = stats.TotalQuantity / float64(len(records))
	}
	if priceCount > 0 {
		avg := priceSum / float64(priceCount)
		stats.AvgPrice = &avg
	}
	if len(units) == 1 {
		for u := range units {
			stats.Unit = u
		}
	}
	return stats
}
