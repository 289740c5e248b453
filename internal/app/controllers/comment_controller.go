package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emir/gradportal/internal/app/models/dto"
	"github.com/emir/gradportal/internal/app/services"
	"github.com/emir/gradportal/internal/middleware"
)

// CommentController handles project comments
type CommentController struct {
	commentService services.CommentService
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

// AddComment attaches a comment to a project
// @Summary Add a comment
// @Description The commenter name is resolved from the student table at write time; unknown commenter IDs leave the name null.
// @Tags comments
// @Accept json
// @Produce json
// @Param project_id path int true "Project ID"
// @Param request body dto.AddCommentRequest true "Comment"
// @Success 201 {object} dto.APIResponse{data=models.Comment} "Comment added"
// @Failure 400 {object} dto.ValidationErrors "Validation failed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /add-comment/{project_id} [post]
func (c *CommentController) AddComment(ctx *gin.Context) {
	projectID, ok := parseIDParam(ctx, "project_id", "invalid project ID")
	if !ok {
		return
	}

	var req dto.AddCommentRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	comment, err := c.commentService.Add(ctx, projectID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(comment))
}

// ShowComments lists the comments of a project
// @Summary List comments
// @Tags comments
// @Produce json
// @Param project_id path int true "Project ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Comment} "Comments"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /show-comments/{project_id} [get]
func (c *CommentController) ShowComments(ctx *gin.Context) {
	projectID, ok := parseIDParam(ctx, "project_id", "invalid project ID")
	if !ok {
		return
	}

	comments, err := c.commentService.ListByProject(ctx, projectID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(comments))
}

// DeleteComment removes a comment by its ID
// @Summary Delete a comment
// @Tags comments
// @Produce json
// @Param comment_id path int true "Comment ID"
// @Success 200 {object} dto.SuccessResponse "Comment deleted"
// @Failure 404 {object} dto.ErrorResponse "Comment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /delete-comment/{comment_id} [delete]
func (c *CommentController) DeleteComment(ctx *gin.Context) {
	commentID, ok := parseIDParam(ctx, "comment_id", "invalid comment ID")
	if !ok {
		return
	}

	if err := c.commentService.Delete(ctx, commentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "comment deleted"})
}
