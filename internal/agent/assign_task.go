package agent

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/teamdash/teamdash/internal/domain"
	"github.com/teamdash/teamdash/internal/service"
)

// AssignTaskTool handles the assign_task MCP tool.
type AssignTaskTool struct {
	taskService service.TaskService
}

func NewAssignTaskTool(taskService service.TaskService) *AssignTaskTool {
	return &AssignTaskTool{taskService: taskService}
}

func (t *AssignTaskTool) Definition() mcp.Tool {
	return mcp.NewTool("assign_task",
		mcp.WithDescription("Assign a task to a team member"),
		mcp.WithString("task_id",
			mcp.Required(),
			mcp.Description("The task ID"),
		),
		mcp.WithString("assignee_id",
			mcp.Required(),
			mcp.Description("The user ID to assign the task to"),
		),
	)
}

func (t *AssignTaskTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	taskID := req.GetString("task_id", "")
	if taskID == "" {
		return mcp.NewToolResultError("task_id is required"), nil
	}
	assigneeID := req.GetString("assignee_id", "")
	if assigneeID == "" {
		return mcp.NewToolResultError("assignee_id is required"), nil
	}

	_, err := t.taskService.Update(ctx, taskID, domain.TaskUpdate{
		AssigneeID: domain.Some(assigneeID),
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return mcp.NewToolResultError("Task not found"), nil
		}
		return nil, err
	}
	return mcp.NewToolResultText(fmt.Sprintf("Task assigned to user %s", assigneeID)), nil
}
