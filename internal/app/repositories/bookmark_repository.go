package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emir/gradportal/internal/app/models"
	"github.com/emir/gradportal/internal/pkg/apperrors"
)

// BookmarkRepository handles database operations for bookmarks
type BookmarkRepository struct {
	db *pgxpool.Pool
}

// NewBookmarkRepository creates a new bookmark repository
func NewBookmarkRepository(db *pgxpool.Pool) *BookmarkRepository {
	return &BookmarkRepository{db: db}
}

// Create inserts a bookmark row with its project snapshot fields
func (r *BookmarkRepository) Create(ctx context.Context, bookmark *models.Bookmark) error {
	query := `
		INSERT INTO bookmarks (student_id, project_id, project_title, project_department, project_votes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	return r.db.QueryRow(ctx, query,
		bookmark.StudentID,
		bookmark.ProjectID,
		bookmark.ProjectTitle,
		bookmark.ProjectDepartment,
		bookmark.ProjectVotes,
	).Scan(&bookmark.ID)
}

// Exists checks for an existing bookmark of the (student, project) pair.
// This is a plain read; the add handler's check-then-insert sequence is not
// atomic.
func (r *BookmarkRepository) Exists(ctx context.Context, studentID, projectID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM bookmarks WHERE student_id = $1 AND project_id = $2)`,
		studentID, projectID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking bookmark existence: %w", err)
	}
	return exists, nil
}

// GetByStudentID retrieves a student's bookmarks, joined to live projects so
// the display can show the current status next to the stored snapshot.
func (r *BookmarkRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Bookmark, error) {
	query := `
		SELECT b.id, b.student_id, b.project_id, b.project_title, b.project_department,
		       b.project_votes, p.status
		FROM bookmarks b
		LEFT JOIN projects p ON p.id = b.project_id
		WHERE b.student_id = $1
		ORDER BY b.id
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookmarks []*models.Bookmark
	for rows.Next() {
		var bookmark models.Bookmark
		if err := rows.Scan(
			&bookmark.ID,
			&bookmark.StudentID,
			&bookmark.ProjectID,
			&bookmark.ProjectTitle,
			&bookmark.ProjectDepartment,
			&bookmark.ProjectVotes,
			&bookmark.CurrentStatus,
		); err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, &bookmark)
	}

	return bookmarks, rows.Err()
}

// Delete removes a bookmark row by ID
func (r *BookmarkRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM bookmarks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting bookmark: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBookmarkNotFound
	}

	return nil
}
