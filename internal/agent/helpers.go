package agent

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// jsonResult renders a value as an indented JSON text payload, the format
// agents consume from every read tool.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding tool result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

const (
	statusEnumHint   = "not_started, in_progress, blocked or completed"
	priorityEnumHint = "P1, P2 or P3"
)
