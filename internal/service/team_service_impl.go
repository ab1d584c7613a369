package service

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/teamdash/teamdash/internal/domain"
	"github.com/teamdash/teamdash/internal/repository"
)

type teamService struct {
	teamRepo repository.TeamRepository
}

// NewTeamService creates a new TeamService instance.
func NewTeamService(teamRepo repository.TeamRepository) TeamService {
	return &teamService{teamRepo: teamRepo}
}

func (s *teamService) Create(ctx context.Context, input domain.CreateTeam) (*domain.Team, error) {
	now := time.Now()
	team := &domain.Team{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: normalizeText(input.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.teamRepo.Insert(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

func (s *teamService) Get(ctx context.Context, id string) (*domain.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return nil, domain.NewNotFoundError("team with id " + id)
		}
		return nil, err
	}
	return team, nil
}

func (s *teamService) List(ctx context.Context) ([]*domain.Team, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(teams, func(a, b *domain.Team) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return teams, nil
}

func (s *teamService) Update(ctx context.Context, id string, update domain.TeamUpdate) (*domain.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return nil, domain.NewNotFoundError("team with id " + id)
		}
		return nil, err
	}

	if !update.Name.Set && !update.Description.Set {
		return team, nil
	}

	if update.Name.Set && update.Name.Valid {
		team.Name = update.Name.Value
	}
	if update.Description.Set {
		team.Description = optionalText(update.Description)
	}
	team.UpdatedAt = time.Now()

	if err := s.teamRepo.Update(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

func (s *teamService) Delete(ctx context.Context, id string) (bool, error) {
	return s.teamRepo.Delete(ctx, id)
}

// normalizeText folds empty strings into nil for nullable text fields.
func normalizeText(v *string) *string {
	if v == nil || *v == "" {
		return nil
	}
	return v
}

// optionalText resolves a tri-state text field: explicit null and empty
// string both clear the value.
func optionalText(o domain.Optional[string]) *string {
	if !o.Valid || o.Value == "" {
		return nil
	}
	v := o.Value
	return &v
}
