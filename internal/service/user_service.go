package service

import (
	"context"

	"github.com/teamdash/teamdash/internal/domain"
)

type UserService interface {
	// Create adds a user. Role defaults to member. Duplicate emails are
	// allowed: nothing enforces uniqueness at creation.
	Create(ctx context.Context, input domain.CreateUser) (*domain.User, error)

	Get(ctx context.Context, id string) (*domain.User, error)

	// GetByEmail returns the first user with the given email.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// List returns users ordered by name ascending, optionally scoped to a
	// team. An empty teamID imposes no constraint.
	List(ctx context.Context, teamID string) ([]*domain.User, error)

	Update(ctx context.Context, id string, update domain.UserUpdate) (*domain.User, error)

	// Delete removes the user. Tasks and comments referencing the user are
	// left untouched; dangling references are tolerated.
	Delete(ctx context.Context, id string) (bool, error)
}
