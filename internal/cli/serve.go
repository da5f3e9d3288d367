package cli

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/skeletonize/internal/server"
)

// newServeCmd creates the serve command, running the MCP server on stdio.
// Logs keep going to stderr; stdout carries the protocol.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server on stdin/stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			srv := server.New(configFromContext(ctx), loggerFromContext(ctx), server.WithVersion(version))
			return srv.Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
