package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repverify",
		Short: "Report verification tool for regenerated spreadsheet reports",
		Long: `Repverify checks a regenerated Excel report against its design-specification workbook.

It classifies every discrepancy it finds: whitespace and casing drift in column
headers, word reordering, near-miss spellings, genuine content divergence,
incomplete case records, and summary counts that no longer add up.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(newVerifyCmd())

	return cmd
}
