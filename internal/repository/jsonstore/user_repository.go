package jsonstore

import (
	"context"

	"github.com/teamdash/teamdash/internal/domain"
	"github.com/teamdash/teamdash/internal/repository"
	"github.com/teamdash/teamdash/internal/store"
)

type UserRepository struct {
	store *store.Store
}

func NewUserRepository(s *store.Store) *UserRepository {
	return &UserRepository{store: s}
}

func (r *UserRepository) Insert(ctx context.Context, user *domain.User) error {
	doc := r.store.Doc()
	doc.Users = append(doc.Users, user)
	return r.store.Save()
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	for _, u := range r.store.Doc().Users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range r.store.Doc().Users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	doc := r.store.Doc()
	users := make([]*domain.User, len(doc.Users))
	copy(users, doc.Users)
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	doc := r.store.Doc()
	for i, u := range doc.Users {
		if u.ID == user.ID {
			doc.Users[i] = user
			return r.store.Save()
		}
	}
	return repository.ErrUserNotFound
}

func (r *UserRepository) Delete(ctx context.Context, id string) (bool, error) {
	doc := r.store.Doc()
	for i, u := range doc.Users {
		if u.ID == id {
			doc.Users = append(doc.Users[:i], doc.Users[i+1:]...)
			return true, r.store.Save()
		}
	}
	return false, nil
}
