package repository

import (
	"context"

	"github.com/teamdash/teamdash/internal/domain"
)

type CommentRepository interface {
	Insert(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id string) (*domain.Comment, error)

	// ListByTask returns the task's comments in insertion order.
	ListByTask(ctx context.Context, taskID string) ([]*domain.Comment, error)

	Delete(ctx context.Context, id string) (bool, error)

	// DeleteByTask removes every comment referencing the task. Used by the
	// task delete cascade.
	DeleteByTask(ctx context.Context, taskID string) error
}
