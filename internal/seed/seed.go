package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/emir/gradportal/internal/app/models"
	"github.com/emir/gradportal/internal/app/repositories"
	"github.com/emir/gradportal/internal/pkg/apperrors"
)

var defaultDepartments = []string{
	"Computer Engineering",
	"Electrical and Electronics Engineering",
	"Industrial Engineering",
	"Mechanical Engineering",
}

var defaultGraduationTerms = []string{"FALL", "SPRING", "SUMMER"}

// CreateDefaultData inserts the default vocabulary values if they are not
// present. Values already in the table are skipped, so the seed is safe to
// run on every startup. Failures are collected and reported without aborting
// the remaining inserts.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	vocabularyRepo := repositories.NewVocabularyRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default vocabulary values...")
	var finalErr error

	for _, department := range defaultDepartments {
		err := vocabularyRepo.Add(ctx, models.VocabularyDepartment, department)
		if err != nil && !errors.Is(err, apperrors.ErrVocabularyValueExists) {
			lgr.Error().Err(err).Str("department", department).Msg("Error seeding department")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for _, term := range defaultGraduationTerms {
		err := vocabularyRepo.Add(ctx, models.VocabularyGraduationTerm, term)
		if err != nil && !errors.Is(err, apperrors.ErrVocabularyValueExists) {
			lgr.Error().Err(err).Str("term", term).Msg("Error seeding graduation term")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}
