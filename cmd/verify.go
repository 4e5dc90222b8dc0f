package cmd

import (
	"github.com/spf13/cobra"

	"github.com/SUKH2022/QIP-91-90-days-extension-FV/internal/verifycmd"
)

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Report verification tools",
		Long: `Verification tools for checking a regenerated report against its design spec.

Supports running the full verification pass, rendering saved results in
several formats, and inspecting a workbook's sheet and header layout.`,
	}

	// Add verify subcommands
	cmd.AddCommand(verifycmd.NewRunCmd())
	cmd.AddCommand(verifycmd.NewReportCmd())
	cmd.AddCommand(verifycmd.NewInspectCmd())

	return cmd
}
