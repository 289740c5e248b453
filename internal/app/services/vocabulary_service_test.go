package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emir/gradportal/internal/app/models"
	"github.com/emir/gradportal/internal/pkg/apperrors"
)

func TestVocabularyAddAndList(t *testing.T) {
	service := NewVocabularyService(newFakeVocabularyStore())

	require.NoError(t, service.Add(context.Background(), models.VocabularyDepartment, "Computer Engineering"))
	require.NoError(t, service.Add(context.Background(), models.VocabularyGraduationTerm, "FALL"))

	departments, err := service.List(context.Background(), models.VocabularyDepartment)
	require.NoError(t, err)
	assert.Equal(t, []string{"Computer Engineering"}, departments)

	// kinds are independent vocabularies
	terms, err := service.List(context.Background(), models.VocabularyGraduationTerm)
	require.NoError(t, err)
	assert.Equal(t, []string{"FALL"}, terms)
}

func TestVocabularyAddTrimsWhitespace(t *testing.T) {
	vocab := newFakeVocabularyStore()
	service := NewVocabularyService(vocab)

	require.NoError(t, service.Add(context.Background(), models.VocabularyDepartment, "  Computer Engineering  "))
	assert.Equal(t, []string{"Computer Engineering"}, vocab.values[models.VocabularyDepartment])
}

func TestVocabularyAddRejectsEmptyValue(t *testing.T) {
	service := NewVocabularyService(newFakeVocabularyStore())

	for _, value := range []string{"", "   "} {
		err := service.Add(context.Background(), models.VocabularyDepartment, value)
		require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	}
}

func TestVocabularyRemove(t *testing.T) {
	vocab := newFakeVocabularyStore()
	service := NewVocabularyService(vocab)

	require.NoError(t, service.Add(context.Background(), models.VocabularyGraduationTerm, "FALL"))
	require.NoError(t, service.Remove(context.Background(), models.VocabularyGraduationTerm, "FALL"))
	assert.Empty(t, vocab.values[models.VocabularyGraduationTerm])
}

func TestVocabularyRemoveRejectsEmptyValue(t *testing.T) {
	service := NewVocabularyService(newFakeVocabularyStore())

	err := service.Remove(context.Background(), models.VocabularyDepartment, "  ")
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
