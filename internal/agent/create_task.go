package agent

import (
	"context"
	"errors"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/teamdash/teamdash/internal/domain"
	"github.com/teamdash/teamdash/internal/service"
)

// CreateTaskTool handles the create_task MCP tool.
type CreateTaskTool struct {
	taskService service.TaskService
}

func NewCreateTaskTool(taskService service.TaskService) *CreateTaskTool {
	return &CreateTaskTool{taskService: taskService}
}

func (t *CreateTaskTool) Definition() mcp.Tool {
	return mcp.NewTool("create_task",
		mcp.WithDescription("Create a new task for the team"),
		mcp.WithString("team_id",
			mcp.Required(),
			mcp.Description("The team ID"),
		),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Task title"),
		),
		mcp.WithString("created_by_id",
			mcp.Required(),
			mcp.Description("User creating the task"),
		),
		mcp.WithString("description",
			mcp.Description("Task description"),
		),
		mcp.WithString("assignee_id",
			mcp.Description("User to assign the task to"),
		),
		mcp.WithString("priority",
			mcp.Description("Priority level: "+priorityEnumHint),
		),
		mcp.WithString("due_date",
			mcp.Description("Due date in YYYY-MM-DD format"),
		),
	)
}

func (t *CreateTaskTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	teamID := req.GetString("team_id", "")
	title := req.GetString("title", "")
	createdByID := req.GetString("created_by_id", "")
	if teamID == "" || title == "" || createdByID == "" {
		return mcp.NewToolResultError("team_id, title and created_by_id are required"), nil
	}

	priority := req.GetString("priority", "")
	if priority != "" && !domain.TaskPriority(priority).Valid() {
		return mcp.NewToolResultError("priority must be one of: " + priorityEnumHint), nil
	}
	dueDate := req.GetString("due_date", "")
	if dueDate != "" {
		if _, err := time.Parse("2006-01-02", dueDate); err != nil {
			return mcp.NewToolResultError("due_date must be in YYYY-MM-DD format"), nil
		}
	}

	task, err := t.taskService.Create(ctx, domain.CreateTask{
		Title:       title,
		Description: optionalArg(req.GetString("description", "")),
		TeamID:      teamID,
		AssigneeID:  optionalArg(req.GetString("assignee_id", "")),
		Priority:    domain.TaskPriority(priority),
		DueDate:     optionalArg(dueDate),
	}, createdByID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return mcp.NewToolResultError("Team not found"), nil
		}
		return nil, err
	}
	return jsonResult(task)
}

// optionalArg converts an omitted-or-empty tool argument into a nil pointer.
func optionalArg(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
