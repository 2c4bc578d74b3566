package invoice

// Header holds the document-level metadata scraped from the first page of an
// e-invoice. Every field is optional and extracted independently; a missing
// label never blocks the others.
type Header struct {
	InvoiceNo   string `json:"invoice_no,omitempty"`
	IssueDate   string `json:"issue_date,omitempty"` // raw localized form, e.g. "2024年1月5日"
	BuyerName   string `json:"buyer_name,omitempty"`
	SellerName  string `json:"seller_name,omitempty"`
	BuyerTaxID  string `json:"buyer_tax_id,omitempty"`
	SellerTaxID string `json:"seller_tax_id,omitempty"`
}

// Empty reports whether no header field was extracted at all.
func (h Header) Empty() bool {
	return h == Header{}
}

// LineRecord is one parsed purchase line. Numeric fields are pointers because
// "unknown" is a first-class outcome of extraction: a field the line did not
// prove stays nil rather than being invented. In particular NetAmount is only
// ever taken from its positional slot, never derived from quantity × price.
type LineRecord struct {
	File     string `json:"file"`
	Page     int    `json:"page"`
	Category string `json:"category"`
	Item     string `json:"item"`

	Unit      string   `json:"unit,omitempty"` // "" when unknown
	Quantity  *float64 `json:"quantity,omitempty"`
	UnitPrice *float64 `json:"unit_price,omitempty"`

	NetAmount *float64 `json:"net_amount,omitempty"`
	TaxRate   string   `json:"tax_rate"` // raw cell text, matched against keywords but never parsed
	TaxAmount *float64 `json:"tax_amount,omitempty"`

	// GrossAmount is net + tax when both are known, net alone when only the
	// tax is unknown, and nil when the net itself is unknown.
	GrossAmount *float64 `json:"gross_amount,omitempty"`

	// RawItem keeps the original name token for audit.
	RawItem string `json:"raw_item"`

	Header Header `json:"header"`
}
