package report

import (
	"github.com/hechen2/fapiaosum/internal/invoice"
)

// InvoiceGroup collects the records of one physical invoice for detail
// display, keyed by file plus the header tuple.
type InvoiceGroup struct {
	File      string               `json:"file"`
	Header    invoice.Header       `json:"header"`
	DateShort string               `json:"date_short,omitempty"`
	Records   []invoice.LineRecord `json:"records"`
	Total     float64              `json:"total"`
}

// GroupByInvoice partitions records into per-invoice groups, preserving the
// order in which invoices first appear in the record set.
func GroupByInvoice(records []invoice.LineRecord, col AmountColumn) []InvoiceGroup {
	index := make(map[string]int)
	var groups []InvoiceGroup

	for _, r := range records {
		key := r.File + "\x1f" + r.Header.InvoiceNo + "\x1f" + r.Header.IssueDate +
			"\x1f" + r.Header.BuyerName + "\x1f" + r.Header.SellerName
		i, seen := index[key]
		if !seen {
			i = len(groups)
			index[key] = i
			groups = append(groups, InvoiceGroup{
				File:      r.File,
				Header:    r.Header,
				DateShort: invoice.ShortDate(r.Header.IssueDate),
			})
		}
		groups[i].Records = append(groups[i].Records, r)
		if v, ok := col.value(r); ok {
			groups[i].Total += v
		}
	}
	return groups
}
