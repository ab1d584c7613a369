package service

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/teamdash/teamdash/internal/domain"
	"github.com/teamdash/teamdash/internal/repository"
)

type taskService struct {
	taskRepo    repository.TaskRepository
	teamRepo    repository.TeamRepository
	commentRepo repository.CommentRepository
}

// NewTaskService creates a new TaskService instance.
func NewTaskService(
	taskRepo repository.TaskRepository,
	teamRepo repository.TeamRepository,
	commentRepo repository.CommentRepository,
) TaskService {
	return &taskService{
		taskRepo:    taskRepo,
		teamRepo:    teamRepo,
		commentRepo: commentRepo,
	}
}

// sortTasks orders by priority rank ascending (P1 first), then by creation
// time descending so the most recently created task wins ties.
func sortTasks(tasks []*domain.Task) {
	slices.SortFunc(tasks, func(a, b *domain.Task) int {
		if d := a.Priority.Rank() - b.Priority.Rank(); d != 0 {
			return d
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}

func (s *taskService) Create(ctx context.Context, input domain.CreateTask, createdByID string) (*domain.Task, error) {
	if _, err := s.teamRepo.GetByID(ctx, input.TeamID); err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return nil, domain.NewNotFoundError("team with id " + input.TeamID)
		}
		return nil, err
	}

	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityP3
	}

	now := time.Now()
	task := &domain.Task{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: normalizeText(input.Description),
		TeamID:      input.TeamID,
		AssigneeID:  input.AssigneeID,
		CreatedByID: createdByID,
		Status:      domain.StatusNotStarted,
		Priority:    priority,
		DueDate:     normalizeText(input.DueDate),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.taskRepo.Insert(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) Get(ctx context.Context, id string) (*domain.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, domain.NewNotFoundError("task with id " + id)
		}
		return nil, err
	}
	return task, nil
}

func (s *taskService) List(ctx context.Context, filter domain.TaskFilter) ([]*domain.Task, error) {
	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if filter.TeamID != "" && t.TeamID != filter.TeamID {
			continue
		}
		if filter.AssigneeID != "" && (t.AssigneeID == nil || *t.AssigneeID != filter.AssigneeID) {
			continue
		}
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if filter.Priority != "" && t.Priority != filter.Priority {
			continue
		}
		matched = append(matched, t)
	}

	sortTasks(matched)
	return matched, nil
}

func (s *taskService) Kanban(ctx context.Context, teamID string) (*domain.Kanban, error) {
	tasks, err := s.List(ctx, domain.TaskFilter{TeamID: teamID})
	if err != nil {
		return nil, err
	}

	kanban := &domain.Kanban{
		NotStarted: []*domain.Task{},
		InProgress: []*domain.Task{},
		Blocked:    []*domain.Task{},
		Completed:  []*domain.Task{},
	}
	for _, t := range tasks {
		switch t.Status {
		case domain.StatusNotStarted:
			kanban.NotStarted = append(kanban.NotStarted, t)
		case domain.StatusInProgress:
			kanban.InProgress = append(kanban.InProgress, t)
		case domain.StatusBlocked:
			kanban.Blocked = append(kanban.Blocked, t)
		case domain.StatusCompleted:
			kanban.Completed = append(kanban.Completed, t)
		}
	}
	return kanban, nil
}

func (s *taskService) Update(ctx context.Context, id string, update domain.TaskUpdate) (*domain.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, domain.NewNotFoundError("task with id " + id)
		}
		return nil, err
	}

	if update.Empty() {
		return task, nil
	}

	if update.Title.Set && update.Title.Valid {
		task.Title = update.Title.Value
	}
	if update.Description.Set {
		task.Description = pointerOf(update.Description)
	}
	if update.AssigneeID.Set {
		task.AssigneeID = pointerOf(update.AssigneeID)
	}
	if update.Status.Set && update.Status.Valid {
		task.Status = update.Status.Value
	}
	if update.Priority.Set && update.Priority.Valid {
		task.Priority = update.Priority.Value
	}
	if update.DueDate.Set {
		task.DueDate = pointerOf(update.DueDate)
	}
	task.UpdatedAt = time.Now()

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) Delete(ctx context.Context, id string) (bool, error) {
	existed, err := s.taskRepo.Delete(ctx, id)
	if err != nil || !existed {
		return existed, err
	}
	if err := s.commentRepo.DeleteByTask(ctx, id); err != nil {
		return true, err
	}
	return true, nil
}

// pointerOf resolves a tri-state field into a nullable value: explicit null
// clears, a value overwrites.
func pointerOf[T any](o domain.Optional[T]) *T {
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}
