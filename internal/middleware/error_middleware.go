package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emir/gradportal/internal/app/models/dto"
	"github.com/emir/gradportal/internal/pkg/apperrors"
	"github.com/emir/gradportal/internal/pkg/logger"
)

// HandleAPIError maps service errors to HTTP responses. Every handler
// resolves its own errors through this function; nothing escapes to a global
// recovery path.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		// Deliberately generic: the caller cannot tell whether the ID or the
		// password was wrong.
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "ID or password not found")))

	case errors.Is(err, apperrors.ErrDuplicateEntry):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "duplicate entry")))

	case errors.Is(err, apperrors.ErrEmailExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "email already exists")))

	case errors.Is(err, apperrors.ErrIdentifierExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "ID already exists")))

	case errors.Is(err, apperrors.ErrTeammateAlreadyAssigned),
		errors.Is(err, apperrors.ErrBookmarkAlreadyExists),
		errors.Is(err, apperrors.ErrVocabularyValueExists),
		errors.Is(err, apperrors.ErrUnknownDepartment),
		errors.Is(err, apperrors.ErrUnknownGraduationTerm),
		errors.Is(err, apperrors.ErrInvalidProjectStatus),
		errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))

	case errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrProfessorNotFound),
		errors.Is(err, apperrors.ErrProjectNotFound),
		errors.Is(err, apperrors.ErrCommentNotFound),
		errors.Is(err, apperrors.ErrBookmarkNotFound),
		errors.Is(err, apperrors.ErrVocabularyValueNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())))

	default:
		// Full error server-side only; the response stays generic.
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "internal server error")))
	}
}
