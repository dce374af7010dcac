package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/vyakarana-tools/rupavali/pkg/adapters/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts rupavali as an MCP server on stdio, so AI agents can search the
dhatupatha and derive word forms as tools. Logs go to stderr; stdout
carries only JSON-RPC framing.`,
	Run: func(cmd *cobra.Command, args []string) {
		app, _, logger, err := newApp(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing rupavali: %v\n", err)
			os.Exit(1)
		}

		// Ensure logs don't corrupt JSON-RPC on Stdout
		log.SetOutput(os.Stderr)
		logger.Info("starting rupavali MCP server (stdio)")

		srv := mcp.NewServer(app)
		if err := srv.ServeStdio(); err != nil {
			logger.Error("MCP server execution failed", "error", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
