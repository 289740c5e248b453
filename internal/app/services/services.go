package services

import (
	"context"

	"github.com/emir/gradportal/internal/app/models"
	"github.com/emir/gradportal/internal/app/models/dto"
)

// Service interfaces consumed by the controllers. Concrete implementations
// live in this package; controllers see only these.

// AuthService handles registration, login and account administration
type AuthService interface {
	RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (*models.Student, error)
	LoginStudent(ctx context.Context, req *dto.StudentLoginRequest) (*models.Student, error)
	RegisterProfessor(ctx context.Context, req *dto.RegisterProfessorRequest) (*models.Professor, error)
	LoginProfessor(ctx context.Context, req *dto.ProfessorLoginRequest) (*models.Professor, error)
	CreateProfessor(ctx context.Context, req *dto.CreateProfessorRequest) (*models.Professor, error)
	DeleteStudent(ctx context.Context, studentID int64) error
}

// ProjectService handles project registration, CRUD and moderation
type ProjectService interface {
	Register(ctx context.Context, input RegisterProjectInput) (*models.Project, error)
	GetAll(ctx context.Context) ([]*models.Project, error)
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	GetByStatus(ctx context.Context, status models.ProjectStatus) ([]*models.Project, error)
	Update(ctx context.Context, id int64, req *dto.UpdateProjectRequest) (*models.Project, error)
	UpdateStatus(ctx context.Context, id int64, status models.ProjectStatus) error
	Delete(ctx context.Context, id int64) error
}

// CommentService handles project comments
type CommentService interface {
	Add(ctx context.Context, projectID int64, req *dto.AddCommentRequest) (*models.Comment, error)
	ListByProject(ctx context.Context, projectID int64) ([]*models.Comment, error)
	Delete(ctx context.Context, commentID int64) error
}

// BookmarkService handles student bookmarks
type BookmarkService interface {
	Add(ctx context.Context, projectID, studentID int64) (*models.Bookmark, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*models.Bookmark, error)
	Delete(ctx context.Context, bookmarkID int64) error
}

// VocabularyService handles the admin-editable controlled vocabularies
type VocabularyService interface {
	Add(ctx context.Context, kind models.VocabularyKind, value string) error
	Remove(ctx context.Context, kind models.VocabularyKind, value string) error
	List(ctx context.Context, kind models.VocabularyKind) ([]string, error)
}

// Storage interfaces the services consume. The repositories package provides
// the pgx-backed implementations; tests substitute fakes.

// StudentStore is the persistence surface for student rows
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	IDExists(ctx context.Context, id int64) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	FindNameByID(ctx context.Context, id int64) (*string, error)
	Delete(ctx context.Context, id int64) error
}

// ProfessorStore is the persistence surface for professor rows
type ProfessorStore interface {
	Create(ctx context.Context, professor *models.Professor) error
	CreateGenerated(ctx context.Context, professor *models.Professor) error
	GetByID(ctx context.Context, id int64) (*models.Professor, error)
	IDExists(ctx context.Context, id int64) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// ProjectStore is the persistence surface for project rows
type ProjectStore interface {
	AnyMemberAssigned(ctx context.Context, studentIDs []int64) (int64, bool, error)
	CreateWithMembers(ctx context.Context, project *models.Project, teammates []models.ProjectMember) error
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	GetMembers(ctx context.Context, projectID int64) ([]models.ProjectMember, error)
	GetAll(ctx context.Context) ([]*models.Project, error)
	GetByStatus(ctx context.Context, status models.ProjectStatus) ([]*models.Project, error)
	Update(ctx context.Context, project *models.Project) error
	UpdateStatus(ctx context.Context, id int64, status models.ProjectStatus) error
	Delete(ctx context.Context, id int64) error
}

// CommentStore is the persistence surface for comment rows
type CommentStore interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByProjectID(ctx context.Context, projectID int64) ([]*models.Comment, error)
	Delete(ctx context.Context, id int64) error
}

// BookmarkStore is the persistence surface for bookmark rows
type BookmarkStore interface {
	Create(ctx context.Context, bookmark *models.Bookmark) error
	Exists(ctx context.Context, studentID, projectID int64) (bool, error)
	GetByStudentID(ctx context.Context, studentID int64) ([]*models.Bookmark, error)
	Delete(ctx context.Context, id int64) error
}

// VocabularyStore is the persistence surface for vocabulary rows
type VocabularyStore interface {
	Add(ctx context.Context, kind models.VocabularyKind, value string) error
	Remove(ctx context.Context, kind models.VocabularyKind, value string) error
	Exists(ctx context.Context, kind models.VocabularyKind, value string) (bool, error)
	List(ctx context.Context, kind models.VocabularyKind) ([]string, error)
}

// Services bundles every service implementation for dependency wiring
type Services struct {
	Auth       AuthService
	Project    ProjectService
	Comment    CommentService
	Bookmark   BookmarkService
	Vocabulary VocabularyService
}
