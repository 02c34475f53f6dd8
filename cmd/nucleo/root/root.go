package root

import (
	"github.com/kir-rescomp/nucleo/cmd/nucleo/diagnose"
	"github.com/kir-rescomp/nucleo/cmd/nucleo/gc"
	"github.com/kir-rescomp/nucleo/cmd/nucleo/revcomp"
	"github.com/kir-rescomp/nucleo/cmd/nucleo/run"
	"github.com/kir-rescomp/nucleo/cmd/nucleo/version"
	"github.com/kir-rescomp/nucleo/internal/buildinfo"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for nucleo.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "nucleo",
		Short:   "CLI: DNA sequence analysis - GC content, reverse complements and batch reports",
		Version: buildinfo.Summary(),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help when no subcommand is provided.
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate("nucleo {{.Version}}\n")

	// Subcommands
	cmd.AddCommand(version.New())
	cmd.AddCommand(gc.New())
	cmd.AddCommand(revcomp.New())
	cmd.AddCommand(run.New())
	cmd.AddCommand(diagnose.New())

	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}
