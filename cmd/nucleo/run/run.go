// Package run implements `nucleo run`, the config-driven batch pipeline.
package run

import (
	"fmt"

	"github.com/spf13/cobra"
)

// New creates the `nucleo run` command.
func New() *cobra.Command {
	var cfgPath string
	cmd := &cobra.Command{
		Use:           "run",
		Short:         "Run a batch analysis defined in a config",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgPath == "" {
				return fmt.Errorf("missing required flag: --config")
			}
			env, err := executePipeline(cmd.Context(), cfgPath)
			if err != nil {
				return err
			}
			return evaluateRunExit(env)
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to config file (.cue)")
	return cmd
}
