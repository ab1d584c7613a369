package handler

import (
	"net/http"

	"github.com/teamdash/teamdash/internal/domain"
)

func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if err := validateListTasksQuery(q.Get("status"), q.Get("priority")); err != nil {
		h.handleError(w, err)
		return
	}

	tasks, err := h.taskService.List(r.Context(), domain.TaskFilter{
		TeamID:     q.Get("team_id"),
		AssigneeID: q.Get("assignee_id"),
		Status:     domain.TaskStatus(q.Get("status")),
		Priority:   domain.TaskPriority(q.Get("priority")),
	})
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, domainTasksToHTTP(tasks))
}

// GetTask returns the task with its comments embedded.
func (h *Handler) GetTask(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	task, err := h.taskService.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}
	comments, err := h.commentService.List(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, TaskDetailResponse{
		TaskResponse: domainTaskToHTTP(task),
		Comments:     domainCommentsToHTTP(comments),
	})
}

func (h *Handler) GetKanban(w http.ResponseWriter, r *http.Request) {
	kanban, err := h.taskService.Kanban(r.Context(), r.PathValue("teamID"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, domainKanbanToHTTP(kanban))
}

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if err := decodeBody(r, &req); err != nil {
		h.handleError(w, err)
		return
	}
	if err := validateCreateTask(req); err != nil {
		h.handleError(w, err)
		return
	}

	// The creator would come from auth middleware in a real deployment;
	// here it is a body field with a header fallback.
	createdByID := req.CreatedByID
	if createdByID == "" {
		createdByID = r.Header.Get("X-User-Id")
	}
	if createdByID == "" {
		h.handleError(w, domain.NewValidationError("created_by_id is required"))
		return
	}

	task, err := h.taskService.Create(r.Context(), domain.CreateTask{
		Title:       req.Title,
		Description: req.Description,
		TeamID:      req.TeamID,
		AssigneeID:  req.AssigneeID,
		Priority:    domain.TaskPriority(req.Priority),
		DueDate:     req.DueDate,
	}, createdByID)
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, domainTaskToHTTP(task))
}

func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	var req UpdateTaskRequest
	if err := decodeBody(r, &req); err != nil {
		h.handleError(w, err)
		return
	}
	if err := validateUpdateTask(req); err != nil {
		h.handleError(w, err)
		return
	}

	task, err := h.taskService.Update(r.Context(), r.PathValue("id"), httpTaskUpdateToDomain(req))
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, domainTaskToHTTP(task))
}

func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	existed, err := h.taskService.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	if !existed {
		h.handleError(w, domain.NewNotFoundError("task"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
