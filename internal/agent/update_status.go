package agent

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/teamdash/teamdash/internal/domain"
	"github.com/teamdash/teamdash/internal/service"
)

// UpdateTaskStatusTool handles the update_task_status MCP tool.
type UpdateTaskStatusTool struct {
	taskService service.TaskService
}

func NewUpdateTaskStatusTool(taskService service.TaskService) *UpdateTaskStatusTool {
	return &UpdateTaskStatusTool{taskService: taskService}
}

func (t *UpdateTaskStatusTool) Definition() mcp.Tool {
	return mcp.NewTool("update_task_status",
		mcp.WithDescription("Change the status of a task"),
		mcp.WithString("task_id",
			mcp.Required(),
			mcp.Description("The task ID"),
		),
		mcp.WithString("status",
			mcp.Required(),
			mcp.Description("The new status: "+statusEnumHint),
		),
	)
}

func (t *UpdateTaskStatusTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	taskID := req.GetString("task_id", "")
	if taskID == "" {
		return mcp.NewToolResultError("task_id is required"), nil
	}
	status := domain.TaskStatus(req.GetString("status", ""))
	if !status.Valid() {
		return mcp.NewToolResultError("status must be one of: " + statusEnumHint), nil
	}

	_, err := t.taskService.Update(ctx, taskID, domain.TaskUpdate{
		Status: domain.Some(status),
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return mcp.NewToolResultError("Task not found"), nil
		}
		return nil, err
	}
	return mcp.NewToolResultText(fmt.Sprintf("Task status updated to %s", status)), nil
}
