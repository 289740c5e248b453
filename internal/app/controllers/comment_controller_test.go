package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emir/gradportal/internal/app/models"
	"github.com/emir/gradportal/internal/app/models/dto"
	"github.com/emir/gradportal/internal/pkg/apperrors"
)

func TestAddCommentEndpoint(t *testing.T) {
	stubs := newStubServices()
	name := "Ayse Yilmaz"
	var gotProjectID int64
	stubs.comment.add = func(_ context.Context, projectID int64, req *dto.AddCommentRequest) (*models.Comment, error) {
		gotProjectID = projectID
		return &models.Comment{
			ID:            1,
			ProjectID:     projectID,
			CommenterID:   req.CommenterID,
			CommenterName: &name,
			CommentText:   req.CommentText,
		}, nil
	}
	router := newTestRouter(stubs, &recordingFileStorage{})

	rec := postJSON(router, "/api/v1/add-comment/7", `{"commenter_id": 20190808020, "comment_text": "Great work"}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, int64(7), gotProjectID)

	var response struct {
		Data models.Comment `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.NotNil(t, response.Data.CommenterName)
	assert.Equal(t, "Ayse Yilmaz", *response.Data.CommenterName)
}

func TestAddCommentEndpointMissingText(t *testing.T) {
	router := newTestRouter(newStubServices(), &recordingFileStorage{})

	rec := postJSON(router, "/api/v1/add-comment/7", `{"commenter_id": 20190808020}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestShowCommentsEndpoint(t *testing.T) {
	stubs := newStubServices()
	stubs.comment.listByProject = func(_ context.Context, projectID int64) ([]*models.Comment, error) {
		return []*models.Comment{
			{ID: 1, ProjectID: projectID, CommenterID: 1, CommentText: "first"},
			{ID: 2, ProjectID: projectID, CommenterID: 2, CommentText: "second"},
		}, nil
	}
	router := newTestRouter(stubs, &recordingFileStorage{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/show-comments/7", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Data []models.Comment `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Len(t, response.Data, 2)
}

func TestDeleteCommentEndpointBothRoutes(t *testing.T) {
	stubs := newStubServices()
	var deleted []int64
	stubs.comment.deleteFn = func(_ context.Context, commentID int64) error {
		deleted = append(deleted, commentID)
		return nil
	}
	router := newTestRouter(stubs, &recordingFileStorage{})

	for _, path := range []string{"/api/v1/delete-comment/3", "/api/v1/comments/4"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)
	}

	assert.Equal(t, []int64{3, 4}, deleted)
}

func TestDeleteCommentEndpointNotFound(t *testing.T) {
	stubs := newStubServices()
	stubs.comment.deleteFn = func(_ context.Context, _ int64) error {
		return apperrors.ErrCommentNotFound
	}
	router := newTestRouter(stubs, &recordingFileStorage{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/delete-comment/404", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
}
