package repository

import (
	"context"

	"github.com/teamdash/teamdash/internal/domain"
)

type UserRepository interface {
	Insert(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)

	// GetByEmail returns the first user with the given email. Email
	// uniqueness is not enforced anywhere, so duplicates are possible.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) (bool, error)
}
