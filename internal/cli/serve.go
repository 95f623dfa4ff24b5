package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/youruser/qrgrid/internal/api"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			r := api.NewRouter(logger)
			addr := fmt.Sprintf(":%d", port)
			logger.Info("starting server", "addr", addr)
			return r.Run(addr)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 8080, "listen port")
	return cmd
}
