package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/emir/gradportal/internal/app/models"
	"github.com/emir/gradportal/internal/pkg/apperrors"
)

// vocabularyService handles the admin-editable controlled vocabularies
type vocabularyService struct {
	vocabularyRepo VocabularyStore
}

// NewVocabularyService creates a new VocabularyService
func NewVocabularyService(vocabularyRepo VocabularyStore) VocabularyService {
	return &vocabularyService{vocabularyRepo: vocabularyRepo}
}

// Add appends a value to a vocabulary; rejects values already present
func (s *vocabularyService) Add(ctx context.Context, kind models.VocabularyKind, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("%w: value cannot be empty", apperrors.ErrValidationFailed)
	}

	return s.vocabularyRepo.Add(ctx, kind, value)
}

// Remove deletes a value from a vocabulary; rejects values not present.
// Projects already holding the value keep it until their next write.
func (s *vocabularyService) Remove(ctx context.Context, kind models.VocabularyKind, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("%w: value cannot be empty", apperrors.ErrValidationFailed)
	}

	return s.vocabularyRepo.Remove(ctx, kind, value)
}

// List returns the current values of a vocabulary
func (s *vocabularyService) List(ctx context.Context, kind models.VocabularyKind) ([]string, error) {
	values, err := s.vocabularyRepo.List(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("error listing vocabulary: %w", err)
	}
	return values, nil
}
