package models

import "fmt"

// ProjectStatus is the canonical approval status of a project.
// The stored value is always lowercase.
type ProjectStatus string

const (
	StatusPending  ProjectStatus = "pending"
	StatusApproved ProjectStatus = "approved"
	StatusRejected ProjectStatus = "rejected"
)

// ParseProjectStatus normalizes a status literal to the canonical enum.
func ParseProjectStatus(s string) (ProjectStatus, error) {
	switch ProjectStatus(s) {
	case StatusPending, StatusApproved, StatusRejected:
		return ProjectStatus(s), nil
	}
	return "", fmt.Errorf("invalid project status: %q", s)
}

// Project defines the project model based on the 'projects' table
type Project struct {
	ID             int64         `json:"id" db:"id" example:"1"`
	Title          string        `json:"title" db:"title" example:"Campus Navigation App"`
	Description    string        `json:"description" db:"description"`
	SupervisorName string        `json:"supervisor_name" db:"supervisor_name" example:"Prof. Dr. Mehmet Demir"`
	GraduationYear int           `json:"graduation_year" db:"graduation_year" example:"2025"`
	GraduationTerm string        `json:"graduation_term" db:"graduation_term" example:"SPRING"`
	DepartmentName string        `json:"department_name" db:"department_name" example:"Computer Engineering"`
	FilePath       *string       `json:"file_path,omitempty" db:"file_path"`   // stored upload, nullable
	GithubLink     *string       `json:"github_link,omitempty" db:"github_link"` // nullable
	Status         ProjectStatus `json:"status" db:"status" example:"pending"`
	TotalVotes     int           `json:"total_votes" db:"total_votes" example:"0"`

	// Members is populated on detail reads when needed, no db tag.
	Members []ProjectMember `json:"teammates,omitempty"`
}

// ProjectMember defines a team membership row in the 'project_students'
// table. One row per teammate, inserted in the registration transaction.
type ProjectMember struct {
	ID          int64  `json:"id" db:"id"`
	ProjectID   int64  `json:"project_id" db:"project_id"`
	StudentID   int64  `json:"student_id" db:"student_id"`
	StudentName string `json:"student_name" db:"student_name"`
}
