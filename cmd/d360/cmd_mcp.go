package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	d360mcp "github.com/LuciusCaesar/D360-Client/internal/mcp"
)

func mcpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start the MCP (Model Context Protocol) server over stdio",
		Long: `Starts an MCP JSON-RPC 2.0 server that reads from stdin and writes to stdout.
Diagnostic logs go to stderr.

Tools exposed:
  list_asset_types  asset types of the source or destination instance
  list_fields       custom fields of one asset type
  diff_metamodel    asset types (and optionally assets) to add or remove
  drift_metamodel   asset types whose definition differs`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger()

			srv := d360mcp.NewServer(newSource(logger), newDestination(logger), logger)

			errLogger := log.New(os.Stderr, "mcp: ", log.LstdFlags)

			logger.Info("mcp: d360 MCP server starting", "transport", "stdio")

			return mcpserver.ServeStdio(
				srv.MCPServer(),
				mcpserver.WithErrorLogger(errLogger),
			)
		},
	}
}
