package handler

import "github.com/teamdash/teamdash/internal/service"

type Handler struct {
	teamService    service.TeamService
	userService    service.UserService
	taskService    service.TaskService
	commentService service.CommentService
}

func NewHandler(
	teamService service.TeamService,
	userService service.UserService,
	taskService service.TaskService,
	commentService service.CommentService,
) *Handler {
	return &Handler{
		teamService:    teamService,
		userService:    userService,
		taskService:    taskService,
		commentService: commentService,
	}
}
