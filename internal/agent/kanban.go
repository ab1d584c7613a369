package agent

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/teamdash/teamdash/internal/service"
)

// KanbanTool handles the get_kanban MCP tool.
type KanbanTool struct {
	taskService service.TaskService
}

func NewKanbanTool(taskService service.TaskService) *KanbanTool {
	return &KanbanTool{taskService: taskService}
}

func (t *KanbanTool) Definition() mcp.Tool {
	return mcp.NewTool("get_kanban",
		mcp.WithDescription("Get tasks organized by status (kanban board view)"),
		mcp.WithString("team_id",
			mcp.Required(),
			mcp.Description("The team ID"),
		),
	)
}

func (t *KanbanTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	teamID := req.GetString("team_id", "")
	if teamID == "" {
		return mcp.NewToolResultError("team_id is required"), nil
	}

	kanban, err := t.taskService.Kanban(ctx, teamID)
	if err != nil {
		return nil, err
	}
	return jsonResult(kanban)
}
