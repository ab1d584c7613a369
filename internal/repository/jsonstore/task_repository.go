package jsonstore

import (
	"context"

	"github.com/teamdash/teamdash/internal/domain"
	"github.com/teamdash/teamdash/internal/repository"
	"github.com/teamdash/teamdash/internal/store"
)

type TaskRepository struct {
	store *store.Store
}

func NewTaskRepository(s *store.Store) *TaskRepository {
	return &TaskRepository{store: s}
}

func (r *TaskRepository) Insert(ctx context.Context, task *domain.Task) error {
	doc := r.store.Doc()
	doc.Tasks = append(doc.Tasks, task)
	return r.store.Save()
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	for _, t := range r.store.Doc().Tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, repository.ErrTaskNotFound
}

func (r *TaskRepository) List(ctx context.Context) ([]*domain.Task, error) {
	doc := r.store.Doc()
	tasks := make([]*domain.Task, len(doc.Tasks))
	copy(tasks, doc.Tasks)
	return tasks, nil
}

func (r *TaskRepository) Update(ctx context.Context, task *domain.Task) error {
	doc := r.store.Doc()
	for i, t := range doc.Tasks {
		if t.ID == task.ID {
			doc.Tasks[i] = task
			return r.store.Save()
		}
	}
	return repository.ErrTaskNotFound
}

func (r *TaskRepository) Delete(ctx context.Context, id string) (bool, error) {
	doc := r.store.Doc()
	for i, t := range doc.Tasks {
		if t.ID == id {
			doc.Tasks = append(doc.Tasks[:i], doc.Tasks[i+1:]...)
			return true, r.store.Save()
		}
	}
	return false, nil
}
