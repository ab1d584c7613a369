package handler

import "github.com/teamdash/teamdash/internal/domain"

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type TeamResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type CreateTeamRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type UpdateTeamRequest struct {
	Name        domain.Optional[string] `json:"name"`
	Description domain.Optional[string] `json:"description"`
}

type UserResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	TeamID    *string `json:"team_id"`
	Role      string  `json:"role"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type CreateUserRequest struct {
	Email  string  `json:"email"`
	Name   string  `json:"name"`
	TeamID *string `json:"team_id"`
	Role   string  `json:"role"`
}

type UpdateUserRequest struct {
	Email  domain.Optional[string] `json:"email"`
	Name   domain.Optional[string] `json:"name"`
	TeamID domain.Optional[string] `json:"team_id"`
	Role   domain.Optional[string] `json:"role"`
}

type TaskResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	TeamID      string  `json:"team_id"`
	AssigneeID  *string `json:"assignee_id"`
	CreatedByID string  `json:"created_by_id"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"due_date"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// TaskDetailResponse is a task with its comments embedded, returned by the
// single-task read.
type TaskDetailResponse struct {
	TaskResponse
	Comments []CommentResponse `json:"comments"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	TeamID      string  `json:"team_id"`
	AssigneeID  *string `json:"assignee_id"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"due_date"`
	CreatedByID string  `json:"created_by_id"`
}

type UpdateTaskRequest struct {
	Title       domain.Optional[string] `json:"title"`
	Description domain.Optional[string] `json:"description"`
	AssigneeID  domain.Optional[string] `json:"assignee_id"`
	Status      domain.Optional[string] `json:"status"`
	Priority    domain.Optional[string] `json:"priority"`
	DueDate     domain.Optional[string] `json:"due_date"`
}

type KanbanResponse struct {
	NotStarted []TaskResponse `json:"not_started"`
	InProgress []TaskResponse `json:"in_progress"`
	Blocked    []TaskResponse `json:"blocked"`
	Completed  []TaskResponse `json:"completed"`
}

type CommentResponse struct {
	ID          string  `json:"id"`
	TaskID      string  `json:"task_id"`
	UserID      *string `json:"user_id"`
	Content     string  `json:"content"`
	IsAutomated bool    `json:"is_automated"`
	CreatedAt   string  `json:"created_at"`
}

type CreateCommentRequest struct {
	Content     string  `json:"content"`
	UserID      *string `json:"user_id"`
	IsAutomated bool    `json:"is_automated"`
}
