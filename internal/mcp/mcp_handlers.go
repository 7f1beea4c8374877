package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huangsam/gridiron/core"
	"github.com/huangsam/gridiron/internal/contract"
	"github.com/huangsam/gridiron/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

// applyCommon copies shared request parameters onto a cloned config and
// returns the season window to rank over.
func (h *toolHandler) applyCommon(request mcp.CallToolRequest) (*contract.Config, schema.Window, error) {
	cfg := h.baseCfg.Clone()
	if d := request.GetString("data_dir", ""); d != "" {
		cfg.DataDir = d
	}
	if n := request.GetInt("limit", 0); n > 0 {
		cfg.TopN = n
	}

	w := schema.Window{Start: cfg.StartYear, End: cfg.EndYear}
	if s := request.GetInt("start_year", 0); s > 0 {
		w.Start = s
	}
	if e := request.GetInt("end_year", 0); e > 0 {
		w.End = e
	}
	if w.Start > w.End {
		return nil, w, fmt.Errorf("start_year %d must not exceed end_year %d", w.Start, w.End)
	}
	return cfg, w, nil
}

func (h *toolHandler) rank(request mcp.CallToolRequest, category schema.StatCategory) (*mcp.CallToolResult, error) {
	cfg, w, err := h.applyCommon(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	ranked, err := core.RankedSelection(cfg, category, w)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("ranking failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(ranked, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetTopPassers(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.rank(request, schema.PassingCategory)
}

func (h *toolHandler) handleGetTopRushers(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.rank(request, schema.RushingCategory)
}
