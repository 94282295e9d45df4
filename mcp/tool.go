package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/spetersoncode/toolcall"
)

// Tool names exposed by the server.
const (
	ToolExtract      = "extract_tool_calls"
	ToolListFamilies = "list_families"
)

func extractTool(registry *toolcall.Registry) mcp.Tool {
	return mcp.NewTool(ToolExtract,
		mcp.WithDescription("Extract structured tool calls from raw model output text"),
		mcp.WithString("family",
			mcp.Required(),
			mcp.Description("Parser family, one of: "+strings.Join(registry.Families(), ", ")),
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Complete model output to scan"),
		),
	)
}

func listFamiliesTool() mcp.Tool {
	return mcp.NewTool(ToolListFamilies,
		mcp.WithDescription("List the registered parser families"),
	)
}

type handlers struct {
	registry *toolcall.Registry
	opts     []toolcall.Option
}

func (h *handlers) extract(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := req.Params.Arguments.(map[string]any)

	family, ok := args["family"].(string)
	if !ok || family == "" {
		return mcp.NewToolResultError("missing required argument: family"), nil
	}
	text, ok := args["text"].(string)
	if !ok {
		return mcp.NewToolResultError("missing required argument: text"), nil
	}

	p, err := h.registry.New(family, h.opts...)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	data, err := json.Marshal(p.Extract(ctx, text))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (h *handlers) listFamilies(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(strings.Join(h.registry.Families(), "\n")), nil
}
