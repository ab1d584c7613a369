package jsonstore

import (
	"context"

	"github.com/teamdash/teamdash/internal/domain"
	"github.com/teamdash/teamdash/internal/repository"
	"github.com/teamdash/teamdash/internal/store"
)

type CommentRepository struct {
	store *store.Store
}

func NewCommentRepository(s *store.Store) *CommentRepository {
	return &CommentRepository{store: s}
}

func (r *CommentRepository) Insert(ctx context.Context, comment *domain.Comment) error {
	doc := r.store.Doc()
	doc.Comments = append(doc.Comments, comment)
	return r.store.Save()
}

func (r *CommentRepository) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	for _, c := range r.store.Doc().Comments {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, repository.ErrCommentNotFound
}

func (r *CommentRepository) ListByTask(ctx context.Context, taskID string) ([]*domain.Comment, error) {
	comments := []*domain.Comment{}
	for _, c := range r.store.Doc().Comments {
		if c.TaskID == taskID {
			comments = append(comments, c)
		}
	}
	return comments, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id string) (bool, error) {
	doc := r.store.Doc()
	for i, c := range doc.Comments {
		if c.ID == id {
			doc.Comments = append(doc.Comments[:i], doc.Comments[i+1:]...)
			return true, r.store.Save()
		}
	}
	return false, nil
}

func (r *CommentRepository) DeleteByTask(ctx context.Context, taskID string) error {
	doc := r.store.Doc()
	kept := doc.Comments[:0]
	for _, c := range doc.Comments {
		if c.TaskID != taskID {
			kept = append(kept, c)
		}
	}
	doc.Comments = kept
	return r.store.Save()
}
