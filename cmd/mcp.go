package cmd

import (
	"github.com/huangsam/gridiron/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Gridiron MCP server",
	Long:  `Launch an MCP server that allows AI agents to query season rankings via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Chart setup is skipped here; ranking tools only need the shared
		// data and season configuration.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
