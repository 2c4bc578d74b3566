package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/hechen2/fapiaosum/internal/config"
	"github.com/hechen2/fapiaosum/internal/invoice"
	"github.com/hechen2/fapiaosum/internal/ledger"
	"github.com/hechen2/fapiaosum/internal/pagetext"
	"github.com/hechen2/fapiaosum/internal/report"
	"github.com/spf13/cobra"
)

var (
	flagNet        bool
	flagQuery      string
	flagXLSX       string
	flagExpenseMap string
	flagDates      []string
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize <file>...",
	Short: "Parse invoice files and print the roll-ups",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSummarize,
}

func init() {
	summarizeCmd.Flags().BoolVar(&flagNet, "net", false, "sum the net amount column instead of gross")
	summarizeCmd.Flags().StringVarP(&flagQuery, "query", "q", "", "only show records whose category or item contains this text")
	summarizeCmd.Flags().StringVar(&flagXLSX, "xlsx", "", "also write an xlsx workbook to this path")
	summarizeCmd.Flags().StringVar(&flagExpenseMap, "expense-map", "", "YAML file overriding the reimbursement buckets")
	summarizeCmd.Flags().StringSliceVar(&flagDates, "date", nil, "restrict the reimbursement table to these dates (YYYY-MM-DD)")
}

func runSummarize(cmd *cobra.Command, args []string) error {
	col := report.AmountGross
	if flagNet {
		col = report.AmountNet
	}

	mapping := report.DefaultExpenseMapping()
	if flagExpenseMap != "" {
		var err error
		mapping, err = config.LoadExpenseMapping(flagExpenseMap)
		if err != nil {
			return err
		}
	}

	sess := ledger.NewSession()
	for _, path := range args {
		doc, err := parseFile(path)
		if err != nil {
			sess.Warn(fmt.Sprintf("%s: %s", filepath.Base(path), err))
			continue
		}
		if err := sess.Add(doc); err != nil {
			sess.Warn(err.Error())
		}
	}
	for _, warning := range sess.Warnings {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning:", warning)
	}
	if err := sess.Finish(); err != nil {
		return err
	}

	records := report.Search(sess.Records, flagQuery)
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%d 个文件，%d 条明细，合计 %.2f 元\n\n", sess.Files, len(records), report.Total(records, col))

	printRollup(out, report.CategoryRollup(records, col))
	printCrossTab(out, records, col)
	printExpenses(out, report.ExpenseRollup(records, col, mapping, flagDates))
	if flagQuery != "" {
		printStats(out, report.Stats(records, col))
	}

	if flagXLSX != "" {
		f, err := os.Create(flagXLSX)
		if err != nil {
			return fmt.Errorf("create %s: %w", flagXLSX, err)
		}
		defer f.Close()
		if err := report.WriteXLSX(f, records, col, mapping); err != nil {
			return fmt.Errorf("write %s: %w", flagXLSX, err)
		}
		fmt.Fprintln(out, "已写入", flagXLSX)
	}
	return nil
}

func parseFile(path string) (ledger.Document, error) {
	name := filepath.Base(path)
	provider, err := pagetext.ForFile(name)
	if err != nil {
		return ledger.Document{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return ledger.Document{}, err
	}
	defer f.Close()

	pages, err := provider.Pages(f, name)
	if err != nil {
		return ledger.Document{}, fmt.Errorf("extract pages: %w", err)
	}
	return ledger.Document{File: name, Records: invoice.BuildRecords(name, pages)}, nil
}

func printRollup(out io.Writer, rollup report.Rollup) {
	fmt.Fprintln(out, "按类别:")
	tw := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	for _, row := range rollup.Rows {
		fmt.Fprintf(tw, "  %s\t%.2f\n", row.Label, row.Amount)
	}
	fmt.Fprintf(tw, "  %s\t%.2f\n", report.TotalLabel, rollup.Total)
	tw.Flush()
	fmt.Fprintln(out)
}

func printCrossTab(out io.Writer, records []invoice.LineRecord, col report.AmountColumn) {
	dim := report.DimensionFor(records)
	ct := report.CrossTab(records, col, dim)
	if ct.Single != nil {
		fmt.Fprintf(out, "按类别（%s）:\n", ct.Single.Scope)
		tw := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
		for _, row := range ct.Single.Rows {
			fmt.Fprintf(tw, "  %s\t%.2f\n", row.Label, row.Amount)
		}
		tw.Flush()
		fmt.Fprintln(out)
		return
	}
	if ct.ByCategory == nil {
		return
	}

	fmt.Fprintf(out, "类别 × %s:\n", ct.Dimension)
	tw := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "  %s", ct.ByCategory.Index)
	for _, c := range ct.ByCategory.Columns {
		fmt.Fprintf(tw, "\t%s", c)
	}
	fmt.Fprintf(tw, "\t%s\n", report.TotalLabel)
	for _, row := range append(ct.ByCategory.Rows, ct.ByCategory.TotalRow) {
		fmt.Fprintf(tw, "  %s", row.Label)
		for _, v := range row.Values {
			fmt.Fprintf(tw, "\t%.2f", v)
		}
		fmt.Fprintf(tw, "\t%.2f\n", row.Total)
	}
	tw.Flush()
	fmt.Fprintln(out)
}

func printExpenses(out io.Writer, table report.ExpenseTable) {
	fmt.Fprintln(out, "报销:")
	tw := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  序号\t报销项目\t金额（元）")
	for _, row := range table.Rows {
		fmt.Fprintf(tw, "  %d\t%s\t%.2f\n", row.Seq, row.Bucket, row.Amount)
	}
	fmt.Fprintf(tw, "  \t%s\t%.2f\n", report.TotalLabel, table.Total)
	tw.Flush()
	fmt.Fprintln(out)
}

func printStats(out io.Writer, stats report.SearchStats) {
	fmt.Fprintf(out, "检索结果: %d 张发票，%d 条明细\n", stats.Invoices, stats.Records)
	unit := stats.Unit
	if unit == "" {
		unit = "（单位不一）"
	}
	fmt.Fprintf(out, "  数量合计 %.2f %s，金额合计 %.2f 元\n", stats.TotalQuantity, unit, stats.TotalAmount)
	if stats.AvgPrice != nil {
		fmt.Fprintf(out, "  单价 平均 %.2f / 最高 %.2f / 最低 %.2f\n", *stats.AvgPrice, *stats.MaxPrice, *stats.MinPrice)
	}
}
