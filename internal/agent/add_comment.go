package agent

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/teamdash/teamdash/internal/domain"
	"github.com/teamdash/teamdash/internal/service"
)

// AddTaskCommentTool handles the add_task_comment MCP tool. Comments created
// here have no author reference and are recorded as automated.
type AddTaskCommentTool struct {
	commentService service.CommentService
}

func NewAddTaskCommentTool(commentService service.CommentService) *AddTaskCommentTool {
	return &AddTaskCommentTool{commentService: commentService}
}

func (t *AddTaskCommentTool) Definition() mcp.Tool {
	return mcp.NewTool("add_task_comment",
		mcp.WithDescription("Add a comment or status update to a task"),
		mcp.WithString("task_id",
			mcp.Required(),
			mcp.Description("The task ID"),
		),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("The comment content"),
		),
		mcp.WithBoolean("is_automated",
			mcp.Description("Whether this is an automated comment from an agent"),
		),
	)
}

func (t *AddTaskCommentTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	taskID := req.GetString("task_id", "")
	if taskID == "" {
		return mcp.NewToolResultError("task_id is required"), nil
	}
	content := req.GetString("content", "")
	if content == "" {
		return mcp.NewToolResultError("content is required"), nil
	}

	comment, err := t.commentService.Create(ctx, domain.CreateComment{
		TaskID:      taskID,
		Content:     content,
		IsAutomated: req.GetBool("is_automated", false),
	})
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(fmt.Sprintf("Comment added with ID: %s", comment.ID)), nil
}
