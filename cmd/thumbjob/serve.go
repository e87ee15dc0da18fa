package main

import (
	"context"
	"errors"
	"log"

	"github.com/spf13/cobra"

	"github.com/ironsheep/thumbjob/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server on stdin/stdout",
	Long: "serve communicates via MCP protocol over stdin/stdout.\n" +
		"Configure it in your MCP client (e.g., Claude Desktop).",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if logLevel == "debug" {
			log.Printf("thumbjob MCP server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		}

		srv := server.New(server.WithLogger(debugLogger()))
		err := srv.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		if errors.Is(err, context.Canceled) {
			// Interrupted by SIGINT/SIGTERM.
			return nil
		}
		return err
	},
}
