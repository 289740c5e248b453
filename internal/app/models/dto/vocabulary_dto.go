package dto

// DepartmentRequest names a department vocabulary value to add or remove
type DepartmentRequest struct {
	DepartmentName string `json:"department_name" binding:"required"`
}

// GraduationTermRequest names a graduation-term vocabulary value to add or
// remove
type GraduationTermRequest struct {
	GraduationTerm string `json:"graduation_term" binding:"required"`
}
