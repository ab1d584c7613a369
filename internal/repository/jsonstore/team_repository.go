// Package jsonstore implements the repository interfaces over the in-memory
// JSON document store. Every mutation persists the full document before
// returning.
package jsonstore

import (
	"context"

	"github.com/teamdash/teamdash/internal/domain"
	"github.com/teamdash/teamdash/internal/repository"
	"github.com/teamdash/teamdash/internal/store"
)

type TeamRepository struct {
	store *store.Store
}

func NewTeamRepository(s *store.Store) *TeamRepository {
	return &TeamRepository{store: s}
}

func (r *TeamRepository) Insert(ctx context.Context, team *domain.Team) error {
	doc := r.store.Doc()
	doc.Teams = append(doc.Teams, team)
	return r.store.Save()
}

func (r *TeamRepository) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	for _, t := range r.store.Doc().Teams {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, repository.ErrTeamNotFound
}

func (r *TeamRepository) List(ctx context.Context) ([]*domain.Team, error) {
	doc := r.store.Doc()
	teams := make([]*domain.Team, len(doc.Teams))
	copy(teams, doc.Teams)
	return teams, nil
}

func (r *TeamRepository) Update(ctx context.Context, team *domain.Team) error {
	doc := r.store.Doc()
	for i, t := range doc.Teams {
		if t.ID == team.ID {
			doc.Teams[i] = team
			return r.store.Save()
		}
	}
	return repository.ErrTeamNotFound
}

func (r *TeamRepository) Delete(ctx context.Context, id string) (bool, error) {
	doc := r.store.Doc()
	for i, t := range doc.Teams {
		if t.ID == id {
			doc.Teams = append(doc.Teams[:i], doc.Teams[i+1:]...)
			return true, r.store.Save()
		}
	}
	return false, nil
}
