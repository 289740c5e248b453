package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emir/gradportal/internal/app/models"
	"github.com/emir/gradportal/internal/db"
	"github.com/emir/gradportal/internal/pkg/apperrors"
)

// projectColumns is the fixed projection used by all project reads. Status
// and vote count fall back to their defaults when NULL.
const projectColumns = `
	id, title, description, supervisor_name, graduation_year, graduation_term,
	department_name, file_path, github_link,
	COALESCE(status, 'pending') AS status,
	COALESCE(total_votes, 0) AS total_votes`

// ProjectRepository handles database operations for projects and their team
// membership rows
type ProjectRepository struct {
	db *pgxpool.Pool
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// AnyMemberAssigned reports whether any of the given student IDs already has
// a team-membership row, returning the first offending ID.
func (r *ProjectRepository) AnyMemberAssigned(ctx context.Context, studentIDs []int64) (int64, bool, error) {
	var studentID int64
	err := r.db.QueryRow(ctx,
		`SELECT student_id FROM project_students WHERE student_id = ANY($1) LIMIT 1`,
		studentIDs).Scan(&studentID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("error checking team membership: %w", err)
	}
	return studentID, true, nil
}

// CreateWithMembers inserts the project row plus one membership row per
// teammate inside a single transaction. Status is forced to pending and the
// vote count to zero regardless of the passed model. Teammate inserts run
// strictly sequentially; any failure rolls the whole batch back.
func (r *ProjectRepository) CreateWithMembers(ctx context.Context, project *models.Project, teammates []models.ProjectMember) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		insertProject := `
			INSERT INTO projects
				(title, description, supervisor_name, graduation_year, graduation_term,
				 department_name, file_path, github_link, status, total_votes)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 0)
			RETURNING id
		`

		err := tx.QueryRow(ctx, insertProject,
			project.Title,
			project.Description,
			project.SupervisorName,
			project.GraduationYear,
			project.GraduationTerm,
			project.DepartmentName,
			project.FilePath,
			project.GithubLink,
			models.StatusPending,
		).Scan(&project.ID)
		if err != nil {
			return fmt.Errorf("error inserting project: %w", err)
		}
		project.Status = models.StatusPending
		project.TotalVotes = 0

		insertMember := `
			INSERT INTO project_students (project_id, student_id, student_name)
			VALUES ($1, $2, $3)
			RETURNING id
		`

		for i := range teammates {
			teammates[i].ProjectID = project.ID
			err := tx.QueryRow(ctx, insertMember,
				project.ID, teammates[i].StudentID, teammates[i].StudentName,
			).Scan(&teammates[i].ID)
			if err != nil {
				return fmt.Errorf("error inserting teammate %d: %w", teammates[i].StudentID, err)
			}
		}

		return nil
	})
}

// GetByID retrieves a project by ID; returns nil when no row matches.
func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`

	var project models.Project
	err := r.db.QueryRow(ctx, query, id).Scan(
		&project.ID,
		&project.Title,
		&project.Description,
		&project.SupervisorName,
		&project.GraduationYear,
		&project.GraduationTerm,
		&project.DepartmentName,
		&project.FilePath,
		&project.GithubLink,
		&project.Status,
		&project.TotalVotes,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving project: %w", err)
	}

	return &project, nil
}

// GetMembers retrieves the team-membership rows of a project
func (r *ProjectRepository) GetMembers(ctx context.Context, projectID int64) ([]models.ProjectMember, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, project_id, student_id, student_name FROM project_students WHERE project_id = $1`,
		projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []models.ProjectMember
	for rows.Next() {
		var member models.ProjectMember
		if err := rows.Scan(&member.ID, &member.ProjectID, &member.StudentID, &member.StudentName); err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	return members, rows.Err()
}

// GetAll retrieves all projects, unfiltered and unpaginated
func (r *ProjectRepository) GetAll(ctx context.Context) ([]*models.Project, error) {
	return r.queryProjects(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY id`)
}

// GetByStatus retrieves all projects with the given canonical status
func (r *ProjectRepository) GetByStatus(ctx context.Context, status models.ProjectStatus) ([]*models.Project, error) {
	return r.queryProjects(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE COALESCE(status, 'pending') = $1 ORDER BY id`, status)
}

func (r *ProjectRepository) queryProjects(ctx context.Context, query string, args ...interface{}) ([]*models.Project, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		var project models.Project
		if err := rows.Scan(
			&project.ID,
			&project.Title,
			&project.Description,
			&project.SupervisorName,
			&project.GraduationYear,
			&project.GraduationTerm,
			&project.DepartmentName,
			&project.FilePath,
			&project.GithubLink,
			&project.Status,
			&project.TotalVotes,
		); err != nil {
			return nil, err
		}
		projects = append(projects, &project)
	}

	return projects, rows.Err()
}

// Update overwrites the full metadata row of a project. Status, vote count
// and the stored file path are not touched here.
func (r *ProjectRepository) Update(ctx context.Context, project *models.Project) error {
	query := `
		UPDATE projects
		SET title = $1, description = $2, supervisor_name = $3, graduation_year = $4,
		    graduation_term = $5, department_name = $6, github_link = $7
		WHERE id = $8
	`

	cmdTag, err := r.db.Exec(ctx, query,
		project.Title,
		project.Description,
		project.SupervisorName,
		project.GraduationYear,
		project.GraduationTerm,
		project.DepartmentName,
		project.GithubLink,
		project.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating project: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProjectNotFound
	}

	return nil
}

// UpdateStatus sets the approval status of a project
func (r *ProjectRepository) UpdateStatus(ctx context.Context, id int64, status models.ProjectStatus) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE projects SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating project status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProjectNotFound
	}

	return nil
}

// Delete removes a project row by ID. Membership rows cascade at the schema
// level.
func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting project: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProjectNotFound
	}

	return nil
}
