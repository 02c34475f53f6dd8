// Package gc implements `nucleo gc`, the GC content subcommand.
package gc

import (
	"fmt"

	"github.com/kir-rescomp/nucleo/internal/seq"
	"github.com/kir-rescomp/nucleo/internal/seqio"
	"github.com/spf13/cobra"
)

// New creates the `nucleo gc` command.
func New() *cobra.Command {
	var (
		flagFile      string
		flagPrecision int
	)
	cmd := &cobra.Command{
		Use:           "gc [SEQUENCE]",
		Short:         "Compute the GC content of DNA sequences",
		Long:          "Compute the GC content of a sequence given on the command line,\nor of every non-blank line of a file given with --file.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flagPrecision < 0 {
				return fmt.Errorf("invalid precision: %d", flagPrecision)
			}
			literal := ""
			if len(args) > 0 {
				literal = args[0]
			}
			inputs, err := seqio.ResolveInputs(literal, flagFile)
			if err != nil {
				return err
			}
			// Processing stops at the first failing input.
			for _, s := range inputs {
				v, err := seq.GCContent(s)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "GC content: %.*f%%\n", flagPrecision, v); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&flagFile, "file", "f", "", "Path to a file with one sequence per line")
	cmd.Flags().IntVarP(&flagPrecision, "precision", "p", 2, "Decimal places in the printed percentage")
	return cmd
}
