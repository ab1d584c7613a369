package handler

import (
	"time"

	"github.com/teamdash/teamdash/internal/domain"
)

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func domainTeamToHTTP(team *domain.Team) TeamResponse {
	return TeamResponse{
		ID:          team.ID,
		Name:        team.Name,
		Description: team.Description,
		CreatedAt:   formatTime(team.CreatedAt),
		UpdatedAt:   formatTime(team.UpdatedAt),
	}
}

func domainTeamsToHTTP(teams []*domain.Team) []TeamResponse {
	out := make([]TeamResponse, 0, len(teams))
	for _, t := range teams {
		out = append(out, domainTeamToHTTP(t))
	}
	return out
}

func domainUserToHTTP(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		TeamID:    user.TeamID,
		Role:      string(user.Role),
		CreatedAt: formatTime(user.CreatedAt),
		UpdatedAt: formatTime(user.UpdatedAt),
	}
}

func domainUsersToHTTP(users []*domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, domainUserToHTTP(u))
	}
	return out
}

func domainTaskToHTTP(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		TeamID:      task.TeamID,
		AssigneeID:  task.AssigneeID,
		CreatedByID: task.CreatedByID,
		Status:      string(task.Status),
		Priority:    string(task.Priority),
		DueDate:     task.DueDate,
		CreatedAt:   formatTime(task.CreatedAt),
		UpdatedAt:   formatTime(task.UpdatedAt),
	}
}

func domainTasksToHTTP(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, domainTaskToHTTP(t))
	}
	return out
}

func domainKanbanToHTTP(kanban *domain.Kanban) KanbanResponse {
	return KanbanResponse{
		NotStarted: domainTasksToHTTP(kanban.NotStarted),
		InProgress: domainTasksToHTTP(kanban.InProgress),
		Blocked:    domainTasksToHTTP(kanban.Blocked),
		Completed:  domainTasksToHTTP(kanban.Completed),
	}
}

func domainCommentToHTTP(comment *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:          comment.ID,
		TaskID:      comment.TaskID,
		UserID:      comment.UserID,
		Content:     comment.Content,
		IsAutomated: comment.IsAutomated,
		CreatedAt:   formatTime(comment.CreatedAt),
	}
}

func domainCommentsToHTTP(comments []*domain.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, domainCommentToHTTP(c))
	}
	return out
}

func httpTaskUpdateToDomain(req UpdateTaskRequest) domain.TaskUpdate {
	return domain.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
		Status:      optionalAs[domain.TaskStatus](req.Status),
		Priority:    optionalAs[domain.TaskPriority](req.Priority),
		DueDate:     req.DueDate,
	}
}

func httpUserUpdateToDomain(req UpdateUserRequest) domain.UserUpdate {
	return domain.UserUpdate{
		Email:  req.Email,
		Name:   req.Name,
		TeamID: req.TeamID,
		Role:   optionalAs[domain.UserRole](req.Role),
	}
}

// optionalAs converts a tri-state string field into its typed enum
// counterpart, preserving the absent/null/value distinction.
func optionalAs[T ~string](o domain.Optional[string]) domain.Optional[T] {
	return domain.Optional[T]{Set: o.Set, Valid: o.Valid, Value: T(o.Value)}
}
