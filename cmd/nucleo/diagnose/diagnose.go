// Package diagnose implements `nucleo diagnose`: run the pipeline up to a
// named stage and dump the intermediate envelope for inspection.
package diagnose

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kir-rescomp/nucleo/internal/stage"
	"github.com/spf13/cobra"
)

// diagnoseStages is the inspectable prefix of the run pipeline. Output
// writing is excluded: diagnose always prints the envelope itself.
var diagnoseStages = []string{
	"validate-config",
	"read-input",
	"lua-filter",
	"analyze",
}

// New creates the `nucleo diagnose` command.
func New() *cobra.Command {
	var (
		cfgPath   string
		stopStage string
	)
	cmd := &cobra.Command{
		Use:           "diagnose",
		Short:         "Run the pipeline up to a stage and dump the envelope",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgPath == "" {
				return errors.New("missing required flag: --config")
			}
			if stopStage == "" {
				return errors.New("missing required flag: --stage")
			}
			stop := -1
			for i, name := range diagnoseStages {
				if name == stopStage {
					stop = i
					break
				}
			}
			if stop < 0 {
				return fmt.Errorf("unknown stage: %s", stopStage)
			}

			env := stage.Envelope{Records: []stage.Record{}, Meta: &stage.Meta{ConfigPath: cfgPath}}
			var err error
			for _, name := range diagnoseStages[:stop+1] {
				env, err = stage.Run(cmd.Context(), name, env)
				if err != nil {
					return err
				}
			}
			stage.SortEnvelopeErrors(&env)
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetEscapeHTML(false)
			enc.SetIndent("", "  ")
			return enc.Encode(env)
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to config file (.cue)")
	cmd.Flags().StringVarP(&stopStage, "stage", "s", "", "Last stage to execute")
	return cmd
}
