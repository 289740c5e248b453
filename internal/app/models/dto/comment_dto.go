package dto

// AddCommentRequest represents a new comment on a project
type AddCommentRequest struct {
	CommenterID int64  `json:"commenter_id" binding:"required,min=1"`
	CommentText string `json:"comment_text" binding:"required"`
}
