package models

// Student defines the student model based on the 'students' table.
// The ID is the institutional student number, supplied at registration.
type Student struct {
	ID         int64  `json:"student_id" db:"id" example:"20190808020"`
	Name       string `json:"student_name" db:"name" example:"Ayse Yilmaz"`
	Email      string `json:"email" db:"email" example:"20190808020@std.uni.edu.tr"`
	Password   string `json:"-" db:"password"` // hashed, excluded from JSON
	Department string `json:"student_department" db:"department" example:"Computer Engineering"`
	ProjectID  *int64 `json:"project_id,omitempty" db:"project_id"` // linked project, nullable
	Token      string `json:"token,omitempty" db:"token"`           // issued at registration, never checked
}
