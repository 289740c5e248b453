package controllers_test

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/emir/gradportal/internal/app/controllers"
	"github.com/emir/gradportal/internal/app/models"
	"github.com/emir/gradportal/internal/app/models/dto"
	"github.com/emir/gradportal/internal/app/routes"
	"github.com/emir/gradportal/internal/app/services"
	"github.com/emir/gradportal/internal/pkg/filestorage"
)

// Function-field stubs for the service interfaces. Unset fields panic, which
// points straight at the handler that made an unexpected call.

type stubAuthService struct {
	registerStudent   func(ctx context.Context, req *dto.RegisterStudentRequest) (*models.Student, error)
	loginStudent      func(ctx context.Context, req *dto.StudentLoginRequest) (*models.Student, error)
	registerProfessor func(ctx context.Context, req *dto.RegisterProfessorRequest) (*models.Professor, error)
	loginProfessor    func(ctx context.Context, req *dto.ProfessorLoginRequest) (*models.Professor, error)
	createProfessor   func(ctx context.Context, req *dto.CreateProfessorRequest) (*models.Professor, error)
	deleteStudent     func(ctx context.Context, studentID int64) error
}

func (s *stubAuthService) RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (*models.Student, error) {
	return s.registerStudent(ctx, req)
}

func (s *stubAuthService) LoginStudent(ctx context.Context, req *dto.StudentLoginRequest) (*models.Student, error) {
	return s.loginStudent(ctx, req)
}

func (s *stubAuthService) RegisterProfessor(ctx context.Context, req *dto.RegisterProfessorRequest) (*models.Professor, error) {
	return s.registerProfessor(ctx, req)
}

func (s *stubAuthService) LoginProfessor(ctx context.Context, req *dto.ProfessorLoginRequest) (*models.Professor, error) {
	return s.loginProfessor(ctx, req)
}

func (s *stubAuthService) CreateProfessor(ctx context.Context, req *dto.CreateProfessorRequest) (*models.Professor, error) {
	return s.createProfessor(ctx, req)
}

func (s *stubAuthService) DeleteStudent(ctx context.Context, studentID int64) error {
	return s.deleteStudent(ctx, studentID)
}

type stubProjectService struct {
	register     func(ctx context.Context, input services.RegisterProjectInput) (*models.Project, error)
	getAll       func(ctx context.Context) ([]*models.Project, error)
	getByID      func(ctx context.Context, id int64) (*models.Project, error)
	getByStatus  func(ctx context.Context, status models.ProjectStatus) ([]*models.Project, error)
	update       func(ctx context.Context, id int64, req *dto.UpdateProjectRequest) (*models.Project, error)
	updateStatus func(ctx context.Context, id int64, status models.ProjectStatus) error
	deleteFn     func(ctx context.Context, id int64) error
}

func (s *stubProjectService) Register(ctx context.Context, input services.RegisterProjectInput) (*models.Project, error) {
	return s.register(ctx, input)
}

func (s *stubProjectService) GetAll(ctx context.Context) ([]*models.Project, error) {
	return s.getAll(ctx)
}

func (s *stubProjectService) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	return s.getByID(ctx, id)
}

func (s *stubProjectService) GetByStatus(ctx context.Context, status models.ProjectStatus) ([]*models.Project, error) {
	return s.getByStatus(ctx, status)
}

func (s *stubProjectService) Update(ctx context.Context, id int64, req *dto.UpdateProjectRequest) (*models.Project, error) {
	return s.update(ctx, id, req)
}

func (s *stubProjectService) UpdateStatus(ctx context.Context, id int64, status models.ProjectStatus) error {
	return s.updateStatus(ctx, id, status)
}

func (s *stubProjectService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

type stubCommentService struct {
	add           func(ctx context.Context, projectID int64, req *dto.AddCommentRequest) (*models.Comment, error)
	listByProject func(ctx context.Context, projectID int64) ([]*models.Comment, error)
	deleteFn      func(ctx context.Context, commentID int64) error
}

func (s *stubCommentService) Add(ctx context.Context, projectID int64, req *dto.AddCommentRequest) (*models.Comment, error) {
	return s.add(ctx, projectID, req)
}

func (s *stubCommentService) ListByProject(ctx context.Context, projectID int64) ([]*models.Comment, error) {
	return s.listByProject(ctx, projectID)
}

func (s *stubCommentService) Delete(ctx context.Context, commentID int64) error {
	return s.deleteFn(ctx, commentID)
}

type stubBookmarkService struct {
	add           func(ctx context.Context, projectID, studentID int64) (*models.Bookmark, error)
	listByStudent func(ctx context.Context, studentID int64) ([]*models.Bookmark, error)
	deleteFn      func(ctx context.Context, bookmarkID int64) error
}

func (s *stubBookmarkService) Add(ctx context.Context, projectID, studentID int64) (*models.Bookmark, error) {
	return s.add(ctx, projectID, studentID)
}

func (s *stubBookmarkService) ListByStudent(ctx context.Context, studentID int64) ([]*models.Bookmark, error) {
	return s.listByStudent(ctx, studentID)
}

func (s *stubBookmarkService) Delete(ctx context.Context, bookmarkID int64) error {
	return s.deleteFn(ctx, bookmarkID)
}

type stubVocabularyService struct {
	add    func(ctx context.Context, kind models.VocabularyKind, value string) error
	remove func(ctx context.Context, kind models.VocabularyKind, value string) error
	list   func(ctx context.Context, kind models.VocabularyKind) ([]string, error)
}

func (s *stubVocabularyService) Add(ctx context.Context, kind models.VocabularyKind, value string) error {
	return s.add(ctx, kind, value)
}

func (s *stubVocabularyService) Remove(ctx context.Context, kind models.VocabularyKind, value string) error {
	return s.remove(ctx, kind, value)
}

func (s *stubVocabularyService) List(ctx context.Context, kind models.VocabularyKind) ([]string, error) {
	return s.list(ctx, kind)
}

type stubServices struct {
	auth       *stubAuthService
	project    *stubProjectService
	comment    *stubCommentService
	bookmark   *stubBookmarkService
	vocabulary *stubVocabularyService
}

func newStubServices() *stubServices {
	return &stubServices{
		auth:       &stubAuthService{},
		project:    &stubProjectService{},
		comment:    &stubCommentService{},
		bookmark:   &stubBookmarkService{},
		vocabulary: &stubVocabularyService{},
	}
}

// newTestRouter assembles the real route table over stubbed services.
func newTestRouter(stubs *stubServices, fileStorage filestorage.FileStorage) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	ctrl := controllers.NewControllers(&services.Services{
		Auth:       stubs.auth,
		Project:    stubs.project,
		Comment:    stubs.comment,
		Bookmark:   stubs.bookmark,
		Vocabulary: stubs.vocabulary,
	}, fileStorage)

	routes.SetupRouter(router, ctrl)
	return router
}
