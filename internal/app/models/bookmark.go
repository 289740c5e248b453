package models

// Bookmark defines the bookmark model based on the 'bookmarks' table.
// Title, department and vote count are write-time snapshots of the project
// and are not kept in sync with later project edits.
type Bookmark struct {
	ID                int64  `json:"id" db:"id" example:"1"`
	StudentID         int64  `json:"student_id" db:"student_id" example:"20190808020"`
	ProjectID         int64  `json:"project_id" db:"project_id" example:"7"`
	ProjectTitle      string `json:"project_title" db:"project_title"`
	ProjectDepartment string `json:"project_department" db:"project_department"`
	ProjectVotes      int    `json:"project_votes" db:"project_votes"`

	// CurrentStatus is the live project status, joined at read time for
	// display. Nil when the project has since been deleted.
	CurrentStatus *ProjectStatus `json:"current_status,omitempty"`
}
