package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/emir/gradportal/internal/app/models"
	"github.com/emir/gradportal/internal/app/models/dto"
	"github.com/emir/gradportal/internal/pkg/apperrors"
	"github.com/emir/gradportal/internal/pkg/filestorage"
)

// RegisterProjectInput carries everything a project registration needs. The
// uploaded file, if any, has already been stored by the controller; FilePath
// is its accessible path, empty when no file was sent.
type RegisterProjectInput struct {
	Form      dto.RegisterProjectForm
	Teammates []dto.Teammate
	FilePath  string
}

// projectService handles project registration, CRUD and moderation
type projectService struct {
	projectRepo    ProjectStore
	vocabularyRepo VocabularyStore
	fileStorage    filestorage.FileStorage
	logger         zerolog.Logger
}

// NewProjectService creates a new ProjectService
func NewProjectService(
	projectRepo ProjectStore,
	vocabularyRepo VocabularyStore,
	fileStorage filestorage.FileStorage,
	logger zerolog.Logger,
) ProjectService {
	return &projectService{
		projectRepo:    projectRepo,
		vocabularyRepo: vocabularyRepo,
		fileStorage:    fileStorage,
		logger:         logger,
	}
}

// Register validates the vocabularies and teammate availability, then runs
// the transactional multi-insert. Pre-transaction rejections return without
// touching the stored upload; a failure of the transactional part deletes it
// best-effort before surfacing the error.
func (s *projectService) Register(ctx context.Context, input RegisterProjectInput) (*models.Project, error) {
	ok, err := s.vocabularyRepo.Exists(ctx, models.VocabularyGraduationTerm, input.Form.GraduationTerm)
	if err != nil {
		return nil, fmt.Errorf("error checking graduation term: %w", err)
	}
	if !ok {
		return nil, apperrors.ErrUnknownGraduationTerm
	}

	ok, err = s.vocabularyRepo.Exists(ctx, models.VocabularyDepartment, input.Form.DepartmentName)
	if err != nil {
		return nil, fmt.Errorf("error checking department name: %w", err)
	}
	if !ok {
		return nil, apperrors.ErrUnknownDepartment
	}

	if len(input.Teammates) == 0 {
		return nil, apperrors.NewBadRequestError("at least one teammate is required")
	}

	studentIDs := make([]int64, len(input.Teammates))
	for i, teammate := range input.Teammates {
		studentIDs[i] = teammate.StudentID
	}

	assignedID, assigned, err := s.projectRepo.AnyMemberAssigned(ctx, studentIDs)
	if err != nil {
		return nil, fmt.Errorf("error checking teammates: %w", err)
	}
	if assigned {
		// Early exit before the transaction; the stored upload is left on
		// disk on this path.
		return nil, &apperrors.CustomError{
			Err:     apperrors.ErrTeammateAlreadyAssigned,
			Message: fmt.Sprintf("student %d is already assigned to a project", assignedID),
		}
	}

	project := &models.Project{
		Title:          input.Form.Title,
		Description:    input.Form.Description,
		SupervisorName: input.Form.SupervisorName,
		GraduationYear: input.Form.GraduationYear,
		GraduationTerm: input.Form.GraduationTerm,
		DepartmentName: input.Form.DepartmentName,
	}
	if input.FilePath != "" {
		project.FilePath = &input.FilePath
	}
	if input.Form.GithubLink != "" {
		project.GithubLink = &input.Form.GithubLink
	}

	members := make([]models.ProjectMember, len(input.Teammates))
	for i, teammate := range input.Teammates {
		members[i] = models.ProjectMember{
			StudentID:   teammate.StudentID,
			StudentName: teammate.StudentName,
		}
	}

	if err := s.projectRepo.CreateWithMembers(ctx, project, members); err != nil {
		if input.FilePath != "" {
			if delErr := s.fileStorage.DeleteFile(input.FilePath); delErr != nil {
				s.logger.Error().Err(delErr).Str("path", input.FilePath).Msg("Failed to delete uploaded file after rollback")
			}
		}
		return nil, fmt.Errorf("error registering project: %w", err)
	}

	project.Members = members
	s.logger.Info().Int64("projectId", project.ID).Int("teammates", len(members)).Msg("Project registered")
	return project, nil
}

// GetAll retrieves all projects
func (s *projectService) GetAll(ctx context.Context) ([]*models.Project, error) {
	projects, err := s.projectRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving projects: %w", err)
	}
	return projects, nil
}

// GetByID retrieves one project with its team members
func (s *projectService) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving project: %w", err)
	}
	if project == nil {
		return nil, apperrors.ErrProjectNotFound
	}

	members, err := s.projectRepo.GetMembers(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving project members: %w", err)
	}
	project.Members = members

	return project, nil
}

// GetByStatus retrieves all projects with the given canonical status
func (s *projectService) GetByStatus(ctx context.Context, status models.ProjectStatus) ([]*models.Project, error) {
	projects, err := s.projectRepo.GetByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("error retrieving projects by status: %w", err)
	}
	return projects, nil
}

// Update overwrites the full metadata row. Fields the caller omitted arrive
// as zero values and are written as such.
func (s *projectService) Update(ctx context.Context, id int64, req *dto.UpdateProjectRequest) (*models.Project, error) {
	project := &models.Project{
		ID:             id,
		Title:          req.Title,
		Description:    req.Description,
		SupervisorName: req.SupervisorName,
		GraduationYear: req.GraduationYear,
		GraduationTerm: req.GraduationTerm,
		DepartmentName: req.DepartmentName,
	}
	if req.GithubLink != "" {
		project.GithubLink = &req.GithubLink
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// UpdateStatus records a moderation decision
func (s *projectService) UpdateStatus(ctx context.Context, id int64, status models.ProjectStatus) error {
	return s.projectRepo.UpdateStatus(ctx, id, status)
}

// Delete removes a project and its stored upload, best-effort on the file
func (s *projectService) Delete(ctx context.Context, id int64) error {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error retrieving project: %w", err)
	}
	if project == nil {
		return apperrors.ErrProjectNotFound
	}

	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return err
	}

	if project.FilePath != nil {
		if delErr := s.fileStorage.DeleteFile(*project.FilePath); delErr != nil {
			s.logger.Error().Err(delErr).Str("path", *project.FilePath).Msg("Failed to delete project file")
		}
	}

	return nil
}
