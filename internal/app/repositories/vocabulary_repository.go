package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emir/gradportal/internal/app/models"
	"github.com/emir/gradportal/internal/pkg/apperrors"
	"github.com/emir/gradportal/internal/pkg/dberrors"
)

// VocabularyRepository handles the admin-editable controlled vocabularies
// (department names, graduation terms) stored as reference rows.
type VocabularyRepository struct {
	db *pgxpool.Pool
}

// NewVocabularyRepository creates a new vocabulary repository
func NewVocabularyRepository(db *pgxpool.Pool) *VocabularyRepository {
	return &VocabularyRepository{db: db}
}

// Add inserts a value into a vocabulary. A unique violation on the
// (kind, value) pair surfaces as ErrVocabularyValueExists.
func (r *VocabularyRepository) Add(ctx context.Context, kind models.VocabularyKind, value string) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO vocabulary_values (kind, value) VALUES ($1, $2) RETURNING id`,
		kind, value).Scan(new(int64))
	if dberrors.IsDuplicateKeyError(err) {
		return apperrors.ErrVocabularyValueExists
	}
	if err != nil {
		return fmt.Errorf("error adding vocabulary value: %w", err)
	}
	return nil
}

// Remove deletes a value from a vocabulary. Projects already holding the
// value are left untouched.
func (r *VocabularyRepository) Remove(ctx context.Context, kind models.VocabularyKind, value string) error {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM vocabulary_values WHERE kind = $1 AND value = $2`, kind, value)
	if err != nil {
		return fmt.Errorf("error removing vocabulary value: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrVocabularyValueNotFound
	}

	return nil
}

// Exists checks whether a value is part of a vocabulary
func (r *VocabularyRepository) Exists(ctx context.Context, kind models.VocabularyKind, value string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM vocabulary_values WHERE kind = $1 AND value = $2)`,
		kind, value).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking vocabulary value: %w", err)
	}
	return exists, nil
}

// List retrieves all values of a vocabulary in insertion order
func (r *VocabularyRepository) List(ctx context.Context, kind models.VocabularyKind) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT value FROM vocabulary_values WHERE kind = $1 ORDER BY id`, kind)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, err
		}
		values = append(values, value)
	}

	return values, rows.Err()
}
