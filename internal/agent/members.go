package agent

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/teamdash/teamdash/internal/service"
)

// TeamMembersTool handles the list_team_members MCP tool.
type TeamMembersTool struct {
	userService service.UserService
}

func NewTeamMembersTool(userService service.UserService) *TeamMembersTool {
	return &TeamMembersTool{userService: userService}
}

func (t *TeamMembersTool) Definition() mcp.Tool {
	return mcp.NewTool("list_team_members",
		mcp.WithDescription("List all members of a team"),
		mcp.WithString("team_id",
			mcp.Required(),
			mcp.Description("The team ID"),
		),
	)
}

func (t *TeamMembersTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	teamID := req.GetString("team_id", "")
	if teamID == "" {
		return mcp.NewToolResultError("team_id is required"), nil
	}

	members, err := t.userService.List(ctx, teamID)
	if err != nil {
		return nil, err
	}
	return jsonResult(members)
}
