package invoice

import "testing"

const samplePage = `电子发票（普通发票）
发票号码：24312000000012345678
开票日期：2024年1月5日
购买方 名称：某某实业有限公司
统一社会信用代码/纳税人识别号：91310000MA1FL0000X
销售方 名称：某某农产品批发部
统一社会信用代码/纳税人识别号：92310000MA1GK1111Y
项目名称 单位 数量 单价 金额 税率/征收率 税额`

func TestParseHeader_AllFields(t *testing.T) {
	h := ParseHeader(samplePage)
	if h.InvoiceNo != "24312000000012345678" {
		t.Errorf("invoice no: got %q", h.InvoiceNo)
	}
	if h.IssueDate != "2024年1月5日" {
		t.Errorf("issue date: got %q", h.IssueDate)
	}
	if h.BuyerName != "某某实业有限公司" {
		t.Errorf("buyer: got %q", h.BuyerName)
	}
	if h.SellerName != "某某农产品批发部" {
		t.Errorf("seller: got %q", h.SellerName)
	}
	if h.BuyerTaxID != "91310000MA1FL0000X" {
		t.Errorf("buyer tax id: got %q", h.BuyerTaxID)
	}
	if h.SellerTaxID != "92310000MA1GK1111Y" {
		t.Errorf("seller tax id: got %q", h.SellerTaxID)
	}
}

func TestParseHeader_FieldsAreIndependent(t *testing.T) {
	// Only a date and one party name: the others stay empty.
	h := ParseHeader("开票日期：2023年12月31日\n名称：独立公司")
	if h.IssueDate != "2023年12月31日" {
		t.Errorf("issue date: got %q", h.IssueDate)
	}
	if h.BuyerName != "独立公司" {
		t.Errorf("buyer: got %q", h.BuyerName)
	}
	if h.SellerName != "" || h.InvoiceNo != "" || h.BuyerTaxID != "" {
		t.Errorf("unexpected extra fields: %+v", h)
	}
}

func TestParseHeader_EmptyText(t *testing.T) {
	if h := ParseHeader(""); !h.Empty() {
		t.Errorf("expected empty header, got %+v", h)
	}
}

func TestParseHeader_HalfWidthColon(t *testing.T) {
	h := ParseHeader("发票号码: 123456")
	if h.InvoiceNo != "123456" {
		t.Errorf("expected half-width colon to match, got %q", h.InvoiceNo)
	}
}
