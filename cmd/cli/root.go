package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fapiaosum",
	Short: "Parse Chinese VAT e-invoices and aggregate their amounts",
	Long: `fapiaosum reads electronic VAT invoice files (PDF or extracted text),
recognizes the detail lines, deduplicates repeated invoices and prints
per-category, per-date and reimbursement roll-ups.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(summarizeCmd)
	rootCmd.AddCommand(versionCmd)
}
