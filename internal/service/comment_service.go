package service

import (
	"context"

	"github.com/teamdash/teamdash/internal/domain"
)

type CommentService interface {
	// Create appends a comment to a task. A nil author marks the comment as
	// automated regardless of the supplied flag. Comments are write-once:
	// no update operation exists.
	Create(ctx context.Context, input domain.CreateComment) (*domain.Comment, error)

	Get(ctx context.Context, id string) (*domain.Comment, error)

	// List returns the task's comments ordered by creation time ascending.
	List(ctx context.Context, taskID string) ([]*domain.Comment, error)

	// GetLatest returns the most recently added comment on the task.
	GetLatest(ctx context.Context, taskID string) (*domain.Comment, error)

	Delete(ctx context.Context, id string) (bool, error)
}
