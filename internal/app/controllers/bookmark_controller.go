package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emir/gradportal/internal/app/models/dto"
	"github.com/emir/gradportal/internal/app/services"
	"github.com/emir/gradportal/internal/middleware"
)

// BookmarkController handles student bookmarks
type BookmarkController struct {
	bookmarkService services.BookmarkService
}

// NewBookmarkController creates a new BookmarkController
func NewBookmarkController(bookmarkService services.BookmarkService) *BookmarkController {
	return &BookmarkController{bookmarkService: bookmarkService}
}

// AddBookmark bookmarks a project for a student
// @Summary Add a bookmark
// @Description Stores a snapshot of the project's metadata at bookmark time. The snapshot does not follow later edits.
// @Tags bookmarks
// @Produce json
// @Param project_id path int true "Project ID"
// @Param student_id path int true "Student ID"
// @Success 201 {object} dto.APIResponse{data=models.Bookmark} "Bookmark added"
// @Failure 400 {object} dto.ErrorResponse "Bookmark already exists"
// @Failure 404 {object} dto.ErrorResponse "Project not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /add-bookmark/{project_id}/{student_id} [post]
func (c *BookmarkController) AddBookmark(ctx *gin.Context) {
	projectID, ok := parseIDParam(ctx, "project_id", "invalid project ID")
	if !ok {
		return
	}
	studentID, ok := parseIDParam(ctx, "student_id", "invalid student ID")
	if !ok {
		return
	}

	bookmark, err := c.bookmarkService.Add(ctx, projectID, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(bookmark))
}

// ShowBookmarks lists a student's bookmarks
// @Summary List bookmarks
// @Description Each entry carries its stored snapshot plus the project's current status, null when the project was deleted.
// @Tags bookmarks
// @Produce json
// @Param student_id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Bookmark} "Bookmarks"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /show-bookmarks/{student_id} [get]
func (c *BookmarkController) ShowBookmarks(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "student_id", "invalid student ID")
	if !ok {
		return
	}

	bookmarks, err := c.bookmarkService.ListByStudent(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(bookmarks))
}

// DeleteBookmark removes a bookmark by its ID
// @Summary Delete a bookmark
// @Tags bookmarks
// @Produce json
// @Param bookmark_id path int true "Bookmark ID"
// @Success 200 {object} dto.SuccessResponse "Bookmark deleted"
// @Failure 404 {object} dto.ErrorResponse "Bookmark not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /delete-bookmarks/{bookmark_id} [delete]
func (c *BookmarkController) DeleteBookmark(ctx *gin.Context) {
	bookmarkID, ok := parseIDParam(ctx, "bookmark_id", "invalid bookmark ID")
	if !ok {
		return
	}

	if err := c.bookmarkService.Delete(ctx, bookmarkID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "bookmark deleted"})
}
