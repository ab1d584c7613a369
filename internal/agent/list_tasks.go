package agent

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/teamdash/teamdash/internal/domain"
	"github.com/teamdash/teamdash/internal/service"
)

// ListTeamTasksTool handles the list_team_tasks MCP tool.
type ListTeamTasksTool struct {
	taskService service.TaskService
}

func NewListTeamTasksTool(taskService service.TaskService) *ListTeamTasksTool {
	return &ListTeamTasksTool{taskService: taskService}
}

func (t *ListTeamTasksTool) Definition() mcp.Tool {
	return mcp.NewTool("list_team_tasks",
		mcp.WithDescription("Get all tasks for a team, optionally filtered by status or assignee"),
		mcp.WithString("team_id",
			mcp.Required(),
			mcp.Description("The team ID"),
		),
		mcp.WithString("status",
			mcp.Description("Filter by status: "+statusEnumHint),
		),
		mcp.WithString("assignee_id",
			mcp.Description("Filter by assignee"),
		),
	)
}

func (t *ListTeamTasksTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	teamID := req.GetString("team_id", "")
	if teamID == "" {
		return mcp.NewToolResultError("team_id is required"), nil
	}
	status := req.GetString("status", "")
	if status != "" && !domain.TaskStatus(status).Valid() {
		return mcp.NewToolResultError("status must be one of: " + statusEnumHint), nil
	}

	tasks, err := t.taskService.List(ctx, domain.TaskFilter{
		TeamID:     teamID,
		AssigneeID: req.GetString("assignee_id", ""),
		Status:     domain.TaskStatus(status),
	})
	if err != nil {
		return nil, err
	}
	return jsonResult(tasks)
}
