package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository    *StudentRepository
	ProfessorRepository  *ProfessorRepository
	ProjectRepository    *ProjectRepository
	CommentRepository    *CommentRepository
	BookmarkRepository   *BookmarkRepository
	VocabularyRepository *VocabularyRepository
}

// NewRepositories initializes all repositories with the shared pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:    NewStudentRepository(db),
		ProfessorRepository:  NewProfessorRepository(db),
		ProjectRepository:    NewProjectRepository(db),
		CommentRepository:    NewCommentRepository(db),
		BookmarkRepository:   NewBookmarkRepository(db),
		VocabularyRepository: NewVocabularyRepository(db),
	}
}
