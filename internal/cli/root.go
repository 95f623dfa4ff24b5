// Package cli implements the qrgrid command-line interface.
//
// The main commands are:
//   - generate: render a batch configuration into a printable HTML grid
//   - serve: run the HTTP API
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var version = "v0.1.0"

// Execute runs the qrgrid CLI and returns an error if any command fails.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "qrgrid",
		Short:        "qrgrid renders batches of branded QR codes into printable grids",
		Long:         `qrgrid encodes a batch of (label, URL) pairs into logo-overlaid QR codes and packs them onto fixed-size printable pages as a single self-contained HTML document.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newServeCmd())

	return root.ExecuteContext(context.Background())
}
