package repository

import (
	"context"

	"github.com/teamdash/teamdash/internal/domain"
)

type TeamRepository interface {
	Insert(ctx context.Context, team *domain.Team) error
	GetByID(ctx context.Context, id string) (*domain.Team, error)
	List(ctx context.Context) ([]*domain.Team, error)
	Update(ctx context.Context, team *domain.Team) error
	Delete(ctx context.Context, id string) (bool, error)
}
