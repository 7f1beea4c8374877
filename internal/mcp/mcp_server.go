// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/gridiron/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Gridiron MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Gridiron Ranking Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
	}

	// --- 1. Tool: get_top_passers ---
	s.AddTool(mcp.NewTool("get_top_passers",
		mcp.WithDescription("Rank the top quarterbacks per season by QBR from yearly passing tables."),
		mcp.WithString("data_dir", mcp.Description("Directory containing the yearly CSV tables (defaults to the configured data directory).")),
		mcp.WithNumber("start_year", mcp.Description("First season to include.")),
		mcp.WithNumber("end_year", mcp.Description("Last season to include.")),
		mcp.WithNumber("limit", mcp.Description("Number of players returned per season.")),
	), h.handleGetTopPassers)

	// --- 2. Tool: get_top_rushers ---
	s.AddTool(mcp.NewTool("get_top_rushers",
		mcp.WithDescription("Rank the top running backs per season by composite rushing rating from yearly rushing tables."),
		mcp.WithString("data_dir", mcp.Description("Directory containing the yearly CSV tables.")),
		mcp.WithNumber("start_year", mcp.Description("First season to include.")),
		mcp.WithNumber("end_year", mcp.Description("Last season to include.")),
		mcp.WithNumber("limit", mcp.Description("Number of players returned per season.")),
	), h.handleGetTopRushers)

	return s
}

// StartMCPServer starts the Gridiron MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
