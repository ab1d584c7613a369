package service

import (
	"context"

	"github.com/teamdash/teamdash/internal/domain"
)

type TeamService interface {
	Create(ctx context.Context, input domain.CreateTeam) (*domain.Team, error)
	Get(ctx context.Context, id string) (*domain.Team, error)

	// List returns all teams ordered newest-created-first.
	List(ctx context.Context) ([]*domain.Team, error)

	Update(ctx context.Context, id string, update domain.TeamUpdate) (*domain.Team, error)
	Delete(ctx context.Context, id string) (bool, error)
}
