package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emir/gradportal/internal/app/models"
	"github.com/emir/gradportal/internal/pkg/apperrors"
)

// CommentRepository handles database operations for comments
type CommentRepository struct {
	db *pgxpool.Pool
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create inserts a comment row carrying the denormalized commenter name
func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (project_id, commenter_id, commenter_name, comment_text)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	return r.db.QueryRow(ctx, query,
		comment.ProjectID, comment.CommenterID, comment.CommenterName, comment.CommentText,
	).Scan(&comment.ID)
}

// GetByProjectID retrieves all comment rows for a project, unfiltered
func (r *CommentRepository) GetByProjectID(ctx context.Context, projectID int64) ([]*models.Comment, error) {
	query := `
		SELECT id, project_id, commenter_id, commenter_name, comment_text
		FROM comments
		WHERE project_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		var comment models.Comment
		if err := rows.Scan(
			&comment.ID,
			&comment.ProjectID,
			&comment.CommenterID,
			&comment.CommenterName,
			&comment.CommentText,
		); err != nil {
			return nil, err
		}
		comments = append(comments, &comment)
	}

	return comments, rows.Err()
}

// Delete removes a comment row by ID
func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting comment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCommentNotFound
	}

	return nil
}
