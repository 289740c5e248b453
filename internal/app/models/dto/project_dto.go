package dto

// RegisterProjectForm represents the multipart fields of a project
// registration request. Teammates and the file are read separately from the
// multipart form.
type RegisterProjectForm struct {
	Title          string `form:"title" binding:"required"`
	Description    string `form:"description" binding:"required"`
	SupervisorName string `form:"supervisor_name" binding:"required"`
	GraduationYear int    `form:"graduation_year" binding:"required,min=2000"`
	GraduationTerm string `form:"graduation_term" binding:"required"`
	DepartmentName string `form:"department_name" binding:"required"`
	GithubLink     string `form:"github_link"`
}

// Teammate is one entry of the teammateData multipart field, each a JSON
// object.
type Teammate struct {
	StudentName string `json:"student_name" binding:"required"`
	StudentID   int64  `json:"student_id" binding:"required,min=1"`
}

// UpdateProjectRequest overwrites the full metadata row of a project.
// Fields the caller omits are written as their zero values.
type UpdateProjectRequest struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	SupervisorName string `json:"supervisor_name"`
	GraduationYear int    `json:"graduation_year"`
	GraduationTerm string `json:"graduation_term"`
	DepartmentName string `json:"department_name"`
	GithubLink     string `json:"github_link"`
}

// UpdateProjectStatusRequest carries the moderation decision
type UpdateProjectStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected"`
}
