// Package revcomp implements `nucleo revcomp`, the reverse complement
// subcommand.
package revcomp

import (
	"fmt"

	"github.com/kir-rescomp/nucleo/internal/seq"
	"github.com/kir-rescomp/nucleo/internal/seqio"
	"github.com/spf13/cobra"
)

// New creates the `nucleo revcomp` command.
func New() *cobra.Command {
	var flagFile string
	cmd := &cobra.Command{
		Use:           "revcomp [SEQUENCE]",
		Short:         "Print the reverse complement of DNA sequences",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			literal := ""
			if len(args) > 0 {
				literal = args[0]
			}
			inputs, err := seqio.ResolveInputs(literal, flagFile)
			if err != nil {
				return err
			}
			for _, s := range inputs {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), seq.ReverseComplement(s)); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&flagFile, "file", "f", "", "Path to a file with one sequence per line")
	return cmd
}
