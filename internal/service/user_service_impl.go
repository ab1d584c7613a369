package service

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/teamdash/teamdash/internal/domain"
	"github.com/teamdash/teamdash/internal/repository"
)

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService instance.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Create(ctx context.Context, input domain.CreateUser) (*domain.User, error) {
	role := input.Role
	if role == "" {
		role = domain.RoleMember
	}

	now := time.Now()
	user := &domain.User{
		ID:        uuid.NewString(),
		Email:     input.Email,
		Name:      input.Name,
		TeamID:    input.TeamID,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.userRepo.Insert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Get(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domain.NewNotFoundError("user with id " + id)
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domain.NewNotFoundError("user with email " + email)
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) List(ctx context.Context, teamID string) ([]*domain.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if teamID != "" {
		filtered := make([]*domain.User, 0, len(users))
		for _, u := range users {
			if u.TeamID != nil && *u.TeamID == teamID {
				filtered = append(filtered, u)
			}
		}
		users = filtered
	}

	slices.SortFunc(users, func(a, b *domain.User) int {
		return strings.Compare(a.Name, b.Name)
	})
	return users, nil
}

func (s *userService) Update(ctx context.Context, id string, update domain.UserUpdate) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domain.NewNotFoundError("user with id " + id)
		}
		return nil, err
	}

	if !update.Email.Set && !update.Name.Set && !update.TeamID.Set && !update.Role.Set {
		return user, nil
	}

	if update.Email.Set && update.Email.Valid {
		user.Email = update.Email.Value
	}
	if update.Name.Set && update.Name.Valid {
		user.Name = update.Name.Value
	}
	if update.TeamID.Set {
		user.TeamID = optionalText(update.TeamID)
	}
	if update.Role.Set && update.Role.Valid {
		user.Role = update.Role.Value
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id string) (bool, error) {
	return s.userRepo.Delete(ctx, id)
}
