package invoice

import "regexp"

var (
	invoiceNoRe = regexp.MustCompile(`发票号码[:：]\s*(\d+)`)
	issueDateRe = regexp.MustCompile(`开票日期[:：]\s*([0-9]{4}年[0-9]{1,2}月[0-9]{1,2}日)`)
	partyNameRe = regexp.MustCompile(`名称[:：]\s*(\S+)`)
	taxIDRe     = regexp.MustCompile(`统一社会信用代码/纳税人识别号[:：]\s*([0-9A-Z]+)`)
)

// ParseHeader scans the raw text of a document's first page for the labeled
// header fields. Party names and tax codes appear twice on an invoice; the
// first occurrence is the buyer, the second the seller. No field is required.
func ParseHeader(text string) Header {
	var h Header
	if text == "" {
		return h
	}

	if m := invoiceNoRe.FindStringSubmatch(text); m != nil {
		h.InvoiceNo = m[1]
	}
	if m := issueDateRe.FindStringSubmatch(text); m != nil {
		h.IssueDate = m[1]
	}

	names := partyNameRe.FindAllStringSubmatch(text, 2)
	if len(names) >= 1 {
		h.BuyerName = names[0][1]
	}
	if len(names) >= 2 {
		h.SellerName = names[1][1]
	}

	codes := taxIDRe.FindAllStringSubmatch(text, 2)
	if len(codes) >= 1 {
		h.BuyerTaxID = codes[0][1]
	}
	if len(codes) >= 2 {
		h.SellerTaxID = codes[1][1]
	}

	return h
}
