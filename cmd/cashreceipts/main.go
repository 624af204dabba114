package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cashreceipts",
	Short: "Turn TY advance sheets into printable cash receipts",
	Long: `Reads work-order rows from a TY advance application workbook and writes
one cash receipt block per row into a new workbook.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(newGenerateCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
