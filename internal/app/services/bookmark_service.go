package services

import (
	"context"
	"fmt"

	"github.com/emir/gradportal/internal/app/models"
	"github.com/emir/gradportal/internal/pkg/apperrors"
)

// bookmarkService handles student bookmarks
type bookmarkService struct {
	bookmarkRepo BookmarkStore
	projectRepo  ProjectStore
}

// NewBookmarkService creates a new BookmarkService
func NewBookmarkService(bookmarkRepo BookmarkStore, projectRepo ProjectStore) BookmarkService {
	return &bookmarkService{
		bookmarkRepo: bookmarkRepo,
		projectRepo:  projectRepo,
	}
}

// Add bookmarks a project for a student, snapshotting the project's title,
// department and vote count at this moment. The duplicate check and the
// insert are two separate statements; concurrent identical requests can both
// pass the check.
func (s *bookmarkService) Add(ctx context.Context, projectID, studentID int64) (*models.Bookmark, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving project: %w", err)
	}
	if project == nil {
		return nil, apperrors.ErrProjectNotFound
	}

	exists, err := s.bookmarkRepo.Exists(ctx, studentID, projectID)
	if err != nil {
		return nil, fmt.Errorf("error checking bookmark: %w", err)
	}
	if exists {
		return nil, apperrors.ErrBookmarkAlreadyExists
	}

	bookmark := &models.Bookmark{
		StudentID:         studentID,
		ProjectID:         projectID,
		ProjectTitle:      project.Title,
		ProjectDepartment: project.DepartmentName,
		ProjectVotes:      project.TotalVotes,
	}

	if err := s.bookmarkRepo.Create(ctx, bookmark); err != nil {
		return nil, fmt.Errorf("error creating bookmark: %w", err)
	}

	return bookmark, nil
}

// ListByStudent returns a student's bookmarks joined to live projects
func (s *bookmarkService) ListByStudent(ctx context.Context, studentID int64) ([]*models.Bookmark, error) {
	bookmarks, err := s.bookmarkRepo.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving bookmarks: %w", err)
	}
	return bookmarks, nil
}

// Delete removes a bookmark by ID
func (s *bookmarkService) Delete(ctx context.Context, bookmarkID int64) error {
	return s.bookmarkRepo.Delete(ctx, bookmarkID)
}
