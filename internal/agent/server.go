// Package agent exposes the dashboard's operations to automated agents over
// MCP. Each tool validates its input shape and delegates to exactly one
// domain service; errors come back as tagged failure payloads rather than
// protocol-level faults.
package agent

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/teamdash/teamdash/internal/service"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates the MCP server with all dashboard tools registered. This is
// the composition root for the agent boundary; no business logic lives here.
func New(
	teamService service.TeamService,
	userService service.UserService,
	taskService service.TaskService,
	commentService service.CommentService,
) *server.MCPServer {
	s := server.NewMCPServer(
		"team-dashboard",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	listTasks := NewListTeamTasksTool(taskService)
	s.AddTool(listTasks.Definition(), listTasks.Handle)

	taskDetails := NewTaskDetailsTool(taskService, commentService, userService)
	s.AddTool(taskDetails.Definition(), taskDetails.Handle)

	updateStatus := NewUpdateTaskStatusTool(taskService)
	s.AddTool(updateStatus.Definition(), updateStatus.Handle)

	addComment := NewAddTaskCommentTool(commentService)
	s.AddTool(addComment.Definition(), addComment.Handle)

	assignTask := NewAssignTaskTool(taskService)
	s.AddTool(assignTask.Definition(), assignTask.Handle)

	createTask := NewCreateTaskTool(taskService)
	s.AddTool(createTask.Definition(), createTask.Handle)

	kanban := NewKanbanTool(taskService)
	s.AddTool(kanban.Definition(), kanban.Handle)

	members := NewTeamMembersTool(userService)
	s.AddTool(members.Definition(), members.Handle)

	return s
}
