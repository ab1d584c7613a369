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

type commentService struct {
	commentRepo repository.CommentRepository
}

// NewCommentService creates a new CommentService instance.
func NewCommentService(commentRepo repository.CommentRepository) CommentService {
	return &commentService{commentRepo: commentRepo}
}

func (s *commentService) Create(ctx context.Context, input domain.CreateComment) (*domain.Comment, error) {
	automated := input.IsAutomated
	if input.AuthorID == nil {
		automated = true
	}

	comment := &domain.Comment{
		ID:          uuid.NewString(),
		TaskID:      input.TaskID,
		UserID:      input.AuthorID,
		Content:     input.Content,
		IsAutomated: automated,
		CreatedAt:   time.Now(),
	}

	if err := s.commentRepo.Insert(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) Get(ctx context.Context, id string) (*domain.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return nil, domain.NewNotFoundError("comment with id " + id)
		}
		return nil, err
	}
	return comment, nil
}

func (s *commentService) List(ctx context.Context, taskID string) ([]*domain.Comment, error) {
	comments, err := s.commentRepo.ListByTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(comments, func(a, b *domain.Comment) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return comments, nil
}

func (s *commentService) GetLatest(ctx context.Context, taskID string) (*domain.Comment, error) {
	comments, err := s.commentRepo.ListByTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return nil, domain.NewNotFoundError("comment for task " + taskID)
	}
	return comments[len(comments)-1], nil
}

func (s *commentService) Delete(ctx context.Context, id string) (bool, error) {
	return s.commentRepo.Delete(ctx, id)
}
