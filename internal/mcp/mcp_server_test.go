package mcp_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/gridiron/internal/contract"
	mcp_internal "github.com/huangsam/gridiron/internal/mcp"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePassingFixture(t *testing.T, dir string, year int) {
	t.Helper()
	content := "Rk,Player,QBR\n" +
		"1,Patrick Mahomes,82.1\n" +
		"2,Josh Allen,76.4\n" +
		"3,Lamar Jackson,74.9\n"
	path := filepath.Join(dir, fmt.Sprintf("%d passing.csv", year))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestMCPServerHandlers(t *testing.T) {
	dataDir := t.TempDir()
	writePassingFixture(t, dataDir, 2023)
	writePassingFixture(t, dataDir, 2024)

	baseCfg := &contract.Config{
		DataDir:   dataDir,
		StartYear: 2023,
		EndYear:   2024,
		TopN:      5,
	}

	s := mcp_internal.NewMCPServer(baseCfg)
	ctx := context.Background()

	t.Run("get_top_passers returns ranked rows", func(t *testing.T) {
		tool := s.GetTool("get_top_passers")
		require.NotNil(t, tool, "Tool get_top_passers should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "get_top_passers",
				Arguments: map[string]any{
					"limit": 2.0,
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		require.False(t, res.IsError)

		text := res.Content[0].(mcp.TextContent).Text
		assert.Contains(t, text, "Mahomes")
		assert.Contains(t, text, "Allen")
		assert.NotContains(t, text, "Jackson", "limit should cap results per season")
	})

	t.Run("get_top_passers inverted window", func(t *testing.T) {
		tool := s.GetTool("get_top_passers")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "get_top_passers",
				Arguments: map[string]any{
					"start_year": 2024.0,
					"end_year":   2023.0,
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "must not exceed")
	})

	t.Run("get_top_rushers missing data", func(t *testing.T) {
		tool := s.GetTool("get_top_rushers")
		require.NotNil(t, tool, "Tool get_top_rushers should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "get_top_rushers",
				Arguments: map[string]any{},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "ranking failed")
	})
}
