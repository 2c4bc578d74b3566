package report

import (
	"fmt"
	"io"

	"github.com/hechen2/fapiaosum/internal/invoice"
	"github.com/xuri/excelize/v2"
)

var detailHeaders = []string{
	"发票文件", "发票号码", "开票日期", "购买方名称", "销售方名称", "页码",
	"类别", "商品", "单位", "数量", "单价", "金额", "税率", "税额", "含税价",
}

// WriteXLSX renders the detail records and every summary view into one
// workbook: 明细, 按类别, the cross-tab (when the batch pivots) and 报销.
func WriteXLSX(w io.Writer, records []invoice.LineRecord, col AmountColumn, mapping ExpenseMapping) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeDetailSheet(f, records); err != nil {
		return err
	}
	if err := writeRollupSheet(f, CategoryRollup(records, col)); err != nil {
		return err
	}
	dim := DimensionFor(records)
	ct := CrossTab(records, col, dim)
	if ct.ByCategory != nil {
		if err := writePivotSheet(f, "类别×"+dim.Label(), ct.ByCategory); err != nil {
			return err
		}
	}
	if err := writeExpenseSheet(f, ExpenseRollup(records, col, mapping, nil)); err != nil {
		return err
	}

	return f.Write(w)
}

func writeDetailSheet(f *excelize.File, records []invoice.LineRecord) error {
	const sheet = "明细"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := setRow(f, sheet, 1, toCells(detailHeaders)); err != nil {
		return err
	}
	for i, r := range records {
		cells := []any{
			r.File, r.Header.InvoiceNo, r.Header.IssueDate,
			r.Header.BuyerName, r.Header.SellerName, r.Page,
			r.Category, r.Item, r.Unit,
			optCell(r.Quantity), optCell(r.UnitPrice), optCell(r.NetAmount),
			r.TaxRate, optCell(r.TaxAmount), optCell(r.GrossAmount),
		}
		if err := setRow(f, sheet, i+2, cells); err != nil {
			return err
		}
	}
	return nil
}

func writeRollupSheet(f *excelize.File, rollup Rollup) error {
	const sheet = "按类别"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("new sheet %s: %w", sheet, err)
	}
	if err := setRow(f, sheet, 1, []any{"类别", "金额（元）"}); err != nil {
		return err
	}
	row := 2
	for _, r := range rollup.Rows {
		if err := setRow(f, sheet, row, []any{r.Label, round2(r.Amount)}); err != nil {
			return err
		}
		row++
	}
	return setRow(f, sheet, row, []any{TotalLabel, round2(rollup.Total)})
}

func writePivotSheet(f *excelize.File, sheet string, p *Pivot) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("new sheet %s: %w", sheet, err)
	}
	header := append([]any{p.Index}, toCells(p.Columns)...)
	header = append(header, TotalLabel)
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}
	row := 2
	for _, pr := range append(p.Rows, p.TotalRow) {
		cells := []any{pr.Label}
		for _, v := range pr.Values {
			cells = append(cells, round2(v))
		}
		cells = append(cells, round2(pr.Total))
		if err := setRow(f, sheet, row, cells); err != nil {
			return err
		}
		row++
	}
	return nil
}

func writeExpenseSheet(f *excelize.File, table ExpenseTable) error {
	const sheet = "报销"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("new sheet %s: %w", sheet, err)
	}
	if err := setRow(f, sheet, 1, []any{"序号", "报销项目", "金额（元）"}); err != nil {
		return err
	}
	row := 2
	for _, r := range table.Rows {
		if err := setRow(f, sheet, row, []any{r.Seq, r.Bucket, r.Amount}); err != nil {
			return err
		}
		row++
	}
	return setRow(f, sheet, row, []any{"", TotalLabel, table.Total})
}

func setRow(f *excelize.File, sheet string, row int, cells []any) error {
	for i, v := range cells {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("set cell %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}

func toCells(labels []string) []any {
	cells := make([]any, len(labels))
	for i, l := range labels {
		cells[i] = l
	}
	return cells
}

// optCell keeps unknown numeric fields as blank cells instead of zeros.
func optCell(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}
