package agent

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/teamdash/teamdash/internal/domain"
	"github.com/teamdash/teamdash/internal/service"
)

// TaskDetailsTool handles the get_task_details MCP tool. It composes the
// task with its comments and the resolved assignee in one payload.
type TaskDetailsTool struct {
	taskService    service.TaskService
	commentService service.CommentService
	userService    service.UserService
}

func NewTaskDetailsTool(
	taskService service.TaskService,
	commentService service.CommentService,
	userService service.UserService,
) *TaskDetailsTool {
	return &TaskDetailsTool{
		taskService:    taskService,
		commentService: commentService,
		userService:    userService,
	}
}

func (t *TaskDetailsTool) Definition() mcp.Tool {
	return mcp.NewTool("get_task_details",
		mcp.WithDescription("Get a task with its comments and full details"),
		mcp.WithString("task_id",
			mcp.Required(),
			mcp.Description("The task ID"),
		),
	)
}

func (t *TaskDetailsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	taskID := req.GetString("task_id", "")
	if taskID == "" {
		return mcp.NewToolResultError("task_id is required"), nil
	}

	task, err := t.taskService.Get(ctx, taskID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return mcp.NewToolResultError("Task not found"), nil
		}
		return nil, err
	}

	comments, err := t.commentService.List(ctx, taskID)
	if err != nil {
		return nil, err
	}

	// Assignee lookup is best-effort: a dangling reference is tolerated and
	// reported as null.
	var assignee *domain.User
	if task.AssigneeID != nil {
		if u, err := t.userService.Get(ctx, *task.AssigneeID); err == nil {
			assignee = u
		}
	}

	return jsonResult(struct {
		*domain.Task
		Comments []*domain.Comment `json:"comments"`
		Assignee *domain.User      `json:"assignee"`
	}{task, comments, assignee})
}
