package dto

// RegisterStudentRequest represents a student registration request.
// The email domain suffix is checked in the service against configuration.
type RegisterStudentRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Name       string `json:"student_name" binding:"required"`
	Password   string `json:"password" binding:"required,min=8,max=12"`
	Department string `json:"student_department" binding:"required"`
	StudentID  int64  `json:"student_id" binding:"required,min=1"`
}

// StudentLoginRequest represents student login credentials
type StudentLoginRequest struct {
	StudentID int64  `json:"student_id" binding:"required,min=1"`
	Password  string `json:"password" binding:"required"`
}

// RegisterProfessorRequest represents a professor registration request
type RegisterProfessorRequest struct {
	Email       string `json:"professor_email" binding:"required,email"`
	Name        string `json:"professor_name" binding:"required"`
	Password    string `json:"password" binding:"required,min=8,max=12"`
	Department  string `json:"professor_department" binding:"required"`
	ProfessorID int64  `json:"professor_id" binding:"required,min=1"`
}

// ProfessorLoginRequest represents professor login credentials
type ProfessorLoginRequest struct {
	ProfessorID int64  `json:"professor_id" binding:"required,min=1"`
	Password    string `json:"password" binding:"required"`
}

// CreateProfessorRequest represents admin-side professor creation.
// The record ID is generated by the database.
type CreateProfessorRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8,max=12"`
	Department string `json:"department" binding:"required"`
}
