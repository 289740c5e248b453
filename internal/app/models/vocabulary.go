package models

// VocabularyKind selects one of the admin-editable controlled vocabularies.
type VocabularyKind string

const (
	VocabularyDepartment     VocabularyKind = "department"
	VocabularyGraduationTerm VocabularyKind = "graduation_term"
)

// VocabularyValue defines a row in the 'vocabulary_values' reference table.
// The pair (kind, value) is unique.
type VocabularyValue struct {
	ID    int64          `json:"id" db:"id"`
	Kind  VocabularyKind `json:"kind" db:"kind" example:"department"`
	Value string         `json:"value" db:"value" example:"Computer Engineering"`
}
