package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emir/gradportal/internal/app/models"
)

// ProfessorRepository handles database operations for professors
type ProfessorRepository struct {
	db *pgxpool.Pool
}

// NewProfessorRepository creates a new professor repository
func NewProfessorRepository(db *pgxpool.Pool) *ProfessorRepository {
	return &ProfessorRepository{db: db}
}

// Create inserts a professor row with a client-supplied ID
func (r *ProfessorRepository) Create(ctx context.Context, professor *models.Professor) error {
	query := `
		INSERT INTO professors (id, name, email, password, department, token)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		professor.ID, professor.Name, professor.Email, professor.Password, professor.Department, professor.Token)
	return err
}

// CreateGenerated inserts a professor row with a database-generated ID,
// capturing the ID on the passed model.
func (r *ProfessorRepository) CreateGenerated(ctx context.Context, professor *models.Professor) error {
	query := `
		INSERT INTO professors (name, email, password, department, token)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	return r.db.QueryRow(ctx, query,
		professor.Name, professor.Email, professor.Password, professor.Department, professor.Token,
	).Scan(&professor.ID)
}

// GetByID retrieves a professor by ID; returns nil when no row matches.
func (r *ProfessorRepository) GetByID(ctx context.Context, id int64) (*models.Professor, error) {
	query := `
		SELECT id, name, email, password, department, token
		FROM professors
		WHERE id = $1
	`

	var professor models.Professor
	err := r.db.QueryRow(ctx, query, id).Scan(
		&professor.ID,
		&professor.Name,
		&professor.Email,
		&professor.Password,
		&professor.Department,
		&professor.Token,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving professor: %w", err)
	}

	return &professor, nil
}

// IDExists checks whether a professor row with the given ID exists
func (r *ProfessorRepository) IDExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM professors WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking professor ID existence: %w", err)
	}
	return exists, nil
}

// EmailExists checks whether a professor row with the given email exists
func (r *ProfessorRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM professors WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking professor email existence: %w", err)
	}
	return exists, nil
}
