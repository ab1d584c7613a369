package repository

import (
	"context"

	"github.com/teamdash/teamdash/internal/domain"
)

type TaskRepository interface {
	Insert(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context) ([]*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id string) (bool, error)
}
