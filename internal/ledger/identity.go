package ledger

import (
	"strings"

	"github.com/hechen2/fapiaosum/internal/invoice"
)

// keySep never occurs in extracted header text, so joined tuples cannot
// collide across field boundaries.
const keySep = "\x1f"

// IdentityKey derives the deduplication key for one document's record set:
// the (invoice no, issue date, buyer, seller) tuple built from the first
// non-empty value found per field across the records. A document with no
// header information at all falls back to a distinguished file-name key, so
// it can only collide with an identically named file.
func IdentityKey(file string, records []invoice.LineRecord) string {
	var no, date, buyer, seller string
	for _, r := range records {
		if no == "" {
			no = r.Header.InvoiceNo
		}
		if date == "" {
			date = r.Header.IssueDate
		}
		if buyer == "" {
			buyer = r.Header.BuyerName
		}
		if seller == "" {
			seller = r.Header.SellerName
		}
	}
	if no == "" && date == "" && buyer == "" && seller == "" {
		return "file" + keySep + file
	}
	return strings.Join([]string{no, date, buyer, seller}, keySep)
}
