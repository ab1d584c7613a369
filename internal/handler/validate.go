package handler

import (
	"net/mail"
	"time"

	"github.com/teamdash/teamdash/internal/domain"
)

// Boundary validation: each function checks one request shape and returns a
// VALIDATION error before anything reaches a service. The domain layer never
// sees malformed input and has no knowledge of status codes.

func validateCreateTeam(req CreateTeamRequest) *domain.DomainError {
	if req.Name == "" {
		return domain.NewValidationError("name is required")
	}
	return nil
}

func validateCreateUser(req CreateUserRequest) *domain.DomainError {
	if req.Name == "" {
		return domain.NewValidationError("name is required")
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return domain.NewValidationError("email is invalid")
	}
	if req.Role != "" && !domain.UserRole(req.Role).Valid() {
		return domain.NewValidationError("role must be one of admin, member, viewer")
	}
	return nil
}

func validateUpdateUser(req UpdateUserRequest) *domain.DomainError {
	if req.Email.Set {
		if !req.Email.Valid {
			return domain.NewValidationError("email cannot be null")
		}
		if _, err := mail.ParseAddress(req.Email.Value); err != nil {
			return domain.NewValidationError("email is invalid")
		}
	}
	if req.Name.Set && (!req.Name.Valid || req.Name.Value == "") {
		return domain.NewValidationError("name cannot be empty")
	}
	if req.Role.Set && (!req.Role.Valid || !domain.UserRole(req.Role.Value).Valid()) {
		return domain.NewValidationError("role must be one of admin, member, viewer")
	}
	return nil
}

func validateCreateTask(req CreateTaskRequest) *domain.DomainError {
	if req.Title == "" {
		return domain.NewValidationError("title is required")
	}
	if req.TeamID == "" {
		return domain.NewValidationError("team_id is required")
	}
	if req.Priority != "" && !domain.TaskPriority(req.Priority).Valid() {
		return domain.NewValidationError("priority must be one of P1, P2, P3")
	}
	if req.DueDate != nil && *req.DueDate != "" {
		if _, err := time.Parse("2006-01-02", *req.DueDate); err != nil {
			return domain.NewValidationError("due_date must be in YYYY-MM-DD format")
		}
	}
	return nil
}

func validateUpdateTask(req UpdateTaskRequest) *domain.DomainError {
	if req.Title.Set && (!req.Title.Valid || req.Title.Value == "") {
		return domain.NewValidationError("title cannot be empty")
	}
	if req.Status.Set && (!req.Status.Valid || !domain.TaskStatus(req.Status.Value).Valid()) {
		return domain.NewValidationError("status must be one of not_started, in_progress, blocked, completed")
	}
	if req.Priority.Set && (!req.Priority.Valid || !domain.TaskPriority(req.Priority.Value).Valid()) {
		return domain.NewValidationError("priority must be one of P1, P2, P3")
	}
	if req.DueDate.Set && req.DueDate.Valid && req.DueDate.Value != "" {
		if _, err := time.Parse("2006-01-02", req.DueDate.Value); err != nil {
			return domain.NewValidationError("due_date must be in YYYY-MM-DD format")
		}
	}
	return nil
}

func validateCreateComment(req CreateCommentRequest) *domain.DomainError {
	if req.Content == "" {
		return domain.NewValidationError("content is required")
	}
	return nil
}

func validateListTasksQuery(status, priority string) *domain.DomainError {
	if status != "" && !domain.TaskStatus(status).Valid() {
		return domain.NewValidationError("status must be one of not_started, in_progress, blocked, completed")
	}
	if priority != "" && !domain.TaskPriority(priority).Valid() {
		return domain.NewValidationError("priority must be one of P1, P2, P3")
	}
	return nil
}
