package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emir/gradportal/internal/app/models"
	"github.com/emir/gradportal/internal/pkg/apperrors"
)

func TestAddDepartmentEndpoint(t *testing.T) {
	stubs := newStubServices()
	var gotKind models.VocabularyKind
	var gotValue string
	stubs.vocabulary.add = func(_ context.Context, kind models.VocabularyKind, value string) error {
		gotKind = kind
		gotValue = value
		return nil
	}
	router := newTestRouter(stubs, &recordingFileStorage{})

	rec := postJSON(router, "/api/v1/departments", `{"department_name": "Software Engineering"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, models.VocabularyDepartment, gotKind)
	assert.Equal(t, "Software Engineering", gotValue)
}

func TestAddGraduationTermEndpoint(t *testing.T) {
	stubs := newStubServices()
	var gotKind models.VocabularyKind
	var gotValue string
	stubs.vocabulary.add = func(_ context.Context, kind models.VocabularyKind, value string) error {
		gotKind = kind
		gotValue = value
		return nil
	}
	router := newTestRouter(stubs, &recordingFileStorage{})

	rec := postJSON(router, "/api/v1/graduation-terms", `{"graduation_term": "FALL"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, models.VocabularyGraduationTerm, gotKind)
	assert.Equal(t, "FALL", gotValue)
}

func TestAddDepartmentEndpointDuplicate(t *testing.T) {
	stubs := newStubServices()
	stubs.vocabulary.add = func(_ context.Context, _ models.VocabularyKind, _ string) error {
		return apperrors.ErrVocabularyValueExists
	}
	router := newTestRouter(stubs, &recordingFileStorage{})

	rec := postJSON(router, "/api/v1/departments", `{"department_name": "Software Engineering"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteGraduationTermEndpoint(t *testing.T) {
	stubs := newStubServices()
	var gotKind models.VocabularyKind
	var gotValue string
	stubs.vocabulary.remove = func(_ context.Context, kind models.VocabularyKind, value string) error {
		gotKind = kind
		gotValue = value
		return nil
	}
	router := newTestRouter(stubs, &recordingFileStorage{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/graduation-terms", strings.NewReader(`{"graduation_term": "SUMMER"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, models.VocabularyGraduationTerm, gotKind)
	assert.Equal(t, "SUMMER", gotValue)
}

func TestDeleteDepartmentEndpointNotFound(t *testing.T) {
	stubs := newStubServices()
	stubs.vocabulary.remove = func(_ context.Context, _ models.VocabularyKind, _ string) error {
		return apperrors.ErrVocabularyValueNotFound
	}
	router := newTestRouter(stubs, &recordingFileStorage{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/departments", strings.NewReader(`{"department_name": "Alchemy"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestShowVocabularyEndpoints(t *testing.T) {
	stubs := newStubServices()
	stubs.vocabulary.list = func(_ context.Context, kind models.VocabularyKind) ([]string, error) {
		if kind == models.VocabularyDepartment {
			return []string{"Computer Engineering", "Industrial Engineering"}, nil
		}
		return []string{"FALL", "SPRING", "SUMMER"}, nil
	}
	router := newTestRouter(stubs, &recordingFileStorage{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/show-departments", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Data []string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, []string{"Computer Engineering", "Industrial Engineering"}, response.Data)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/show-graduation-terms", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Contains(t, response.Data, "SPRING")
}
