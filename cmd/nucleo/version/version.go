package version

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/kir-rescomp/nucleo/internal/buildinfo"
	"github.com/spf13/cobra"
)

// New creates the `nucleo version` command.
func New() *cobra.Command {
	var (
		flagShort bool
		flagJSON  bool
	)
	cmd := &cobra.Command{
		Use:           "version",
		Short:         "Print the CLI version",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flagShort || !flagJSON {
				// Exactly one stable line on stdout.
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "nucleo %s\n", buildinfo.Summary())
				return err
			}

			// JSON requested: diagnostic object on stdout, human line on stderr.
			_, _ = fmt.Fprintf(os.Stderr, "nucleo version: %s\n", buildinfo.Summary())
			out := map[string]any{
				"version":   buildinfo.Version,
				"commit":    buildinfo.Commit,
				"date":      buildinfo.Date,
				"built_by":  buildinfo.BuiltBy,
				"go":        runtime.Version(),
				"go_os":     runtime.GOOS,
				"go_arch":   runtime.GOARCH,
				"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
			}
			return encodeJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().BoolVar(&flagShort, "short", false, "Print only the version string")
	cmd.Flags().BoolVar(&flagJSON, "json", false, "Print detailed JSON version info")
	return cmd
}
