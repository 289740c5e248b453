package models

// Professor defines the professor model based on the 'professors' table.
// The ID is client-supplied for portal registration; rows created through the
// admin endpoint get a generated ID instead.
type Professor struct {
	ID         int64  `json:"professor_id" db:"id" example:"1042"`
	Name       string `json:"professor_name" db:"name" example:"Mehmet Demir"`
	Email      string `json:"professor_email" db:"email" example:"mdemir@std.uni.edu.tr"`
	Password   string `json:"-" db:"password"` // hashed, excluded from JSON
	Department string `json:"professor_department" db:"department" example:"Computer Engineering"`
	Token      string `json:"token,omitempty" db:"token"`
}
