package services

import (
	"context"
	"fmt"

	"github.com/emir/gradportal/internal/app/models"
	"github.com/emir/gradportal/internal/app/models/dto"
)

// commentService handles project comments
type commentService struct {
	commentRepo CommentStore
	studentRepo StudentStore
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo CommentStore, studentRepo StudentStore) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		studentRepo: studentRepo,
	}
}

// Add inserts a comment. The commenter's display name is resolved once from
// the students table; an unresolved ID stores a NULL name rather than
// rejecting the request.
func (s *commentService) Add(ctx context.Context, projectID int64, req *dto.AddCommentRequest) (*models.Comment, error) {
	name, err := s.studentRepo.FindNameByID(ctx, req.CommenterID)
	if err != nil {
		return nil, fmt.Errorf("error resolving commenter: %w", err)
	}

	comment := &models.Comment{
		ProjectID:     projectID,
		CommenterID:   req.CommenterID,
		CommenterName: name,
		CommentText:   req.CommentText,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("error creating comment: %w", err)
	}

	return comment, nil
}

// ListByProject returns all comments of a project, unfiltered
func (s *commentService) ListByProject(ctx context.Context, projectID int64) ([]*models.Comment, error) {
	comments, err := s.commentRepo.GetByProjectID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving comments: %w", err)
	}
	return comments, nil
}

// Delete removes a comment by ID
func (s *commentService) Delete(ctx context.Context, commentID int64) error {
	return s.commentRepo.Delete(ctx, commentID)
}
