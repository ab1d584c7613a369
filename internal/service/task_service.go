package service

import (
	"context"

	"github.com/teamdash/teamdash/internal/domain"
)

type TaskService interface {
	// Create adds a task. Status is forced to not_started and priority
	// defaults to P3 when absent. The team reference must name an existing
	// team; the creator reference is fixed here and never revisited by
	// Update.
	Create(ctx context.Context, input domain.CreateTask, createdByID string) (*domain.Task, error)

	Get(ctx context.Context, id string) (*domain.Task, error)

	// List returns tasks matching every supplied filter, sorted by priority
	// rank ascending and creation time descending.
	List(ctx context.Context, filter domain.TaskFilter) ([]*domain.Task, error)

	// Kanban partitions the team's sorted task set into the four status
	// buckets. Every bucket is present even when empty.
	Kanban(ctx context.Context, teamID string) (*domain.Kanban, error)

	// Update applies only fields explicitly present in the update; a
	// present-with-null field clears a nullable value. A no-op update with
	// no recognized fields leaves the task (and its updated_at) untouched.
	Update(ctx context.Context, id string, update domain.TaskUpdate) (*domain.Task, error)

	// Delete removes the task and cascades deletion of its comments.
	Delete(ctx context.Context, id string) (bool, error)
}
