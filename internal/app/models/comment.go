package models

// Comment defines the comment model based on the 'comments' table.
// CommenterName is a write-time copy resolved from the students table; an
// unresolved commenter ID leaves it NULL.
type Comment struct {
	ID            int64   `json:"id" db:"id" example:"1"`
	ProjectID     int64   `json:"project_id" db:"project_id" example:"7"`
	CommenterID   int64   `json:"commenter_id" db:"commenter_id" example:"20190808020"`
	CommenterName *string `json:"commenter_name,omitempty" db:"commenter_name"`
	CommentText   string  `json:"comment_text" db:"comment_text"`
}
