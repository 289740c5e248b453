package services

import (
	"context"
	"mime/multipart"

	"github.com/emir/gradportal/internal/app/models"
)

// In-memory store fakes. Zero values behave like empty tables; tests set the
// hooks or seed fields they care about.

type fakeStudentStore struct {
	students    map[int64]*models.Student
	created     []*models.Student
	createErr   error
	deleteErr   error
	deletedIDs  []int64
	emailExists bool
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{students: make(map[int64]*models.Student)}
}

func (f *fakeStudentStore) Create(_ context.Context, student *models.Student) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, student)
	f.students[student.ID] = student
	return nil
}

func (f *fakeStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	student, ok := f.students[id]
	if !ok {
		return nil, nil
	}
	// Reads scan into fresh structs; callers mutating the result must not
	// reach the stored row.
	cp := *student
	return &cp, nil
}

func (f *fakeStudentStore) IDExists(_ context.Context, id int64) (bool, error) {
	_, ok := f.students[id]
	return ok, nil
}

func (f *fakeStudentStore) EmailExists(_ context.Context, _ string) (bool, error) {
	return f.emailExists, nil
}

func (f *fakeStudentStore) FindNameByID(_ context.Context, id int64) (*string, error) {
	student, ok := f.students[id]
	if !ok {
		return nil, nil
	}
	return &student.Name, nil
}

func (f *fakeStudentStore) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedIDs = append(f.deletedIDs, id)
	delete(f.students, id)
	return nil
}

type fakeProfessorStore struct {
	professors  map[int64]*models.Professor
	created     []*models.Professor
	createErr   error
	nextID      int64
	emailExists bool
}

func newFakeProfessorStore() *fakeProfessorStore {
	return &fakeProfessorStore{professors: make(map[int64]*models.Professor), nextID: 1}
}

func (f *fakeProfessorStore) Create(_ context.Context, professor *models.Professor) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, professor)
	f.professors[professor.ID] = professor
	return nil
}

func (f *fakeProfessorStore) CreateGenerated(_ context.Context, professor *models.Professor) error {
	if f.createErr != nil {
		return f.createErr
	}
	professor.ID = f.nextID
	f.nextID++
	f.created = append(f.created, professor)
	f.professors[professor.ID] = professor
	return nil
}

func (f *fakeProfessorStore) GetByID(_ context.Context, id int64) (*models.Professor, error) {
	professor, ok := f.professors[id]
	if !ok {
		return nil, nil
	}
	cp := *professor
	return &cp, nil
}

func (f *fakeProfessorStore) IDExists(_ context.Context, id int64) (bool, error) {
	_, ok := f.professors[id]
	return ok, nil
}

func (f *fakeProfessorStore) EmailExists(_ context.Context, _ string) (bool, error) {
	return f.emailExists, nil
}

type fakeProjectStore struct {
	projects        map[int64]*models.Project
	members         map[int64][]models.ProjectMember
	assignedStudent int64
	createErr       error
	updateErr       error
	updatedStatus   map[int64]models.ProjectStatus
	deletedIDs      []int64
	nextID          int64
}

func newFakeProjectStore() *fakeProjectStore {
	return &fakeProjectStore{
		projects:      make(map[int64]*models.Project),
		members:       make(map[int64][]models.ProjectMember),
		updatedStatus: make(map[int64]models.ProjectStatus),
		nextID:        1,
	}
}

func (f *fakeProjectStore) AnyMemberAssigned(_ context.Context, studentIDs []int64) (int64, bool, error) {
	for _, id := range studentIDs {
		if id == f.assignedStudent {
			return id, true, nil
		}
	}
	return 0, false, nil
}

func (f *fakeProjectStore) CreateWithMembers(_ context.Context, project *models.Project, teammates []models.ProjectMember) error {
	if f.createErr != nil {
		return f.createErr
	}
	project.ID = f.nextID
	f.nextID++
	project.Status = models.StatusPending
	f.projects[project.ID] = project
	f.members[project.ID] = teammates
	return nil
}

func (f *fakeProjectStore) GetByID(_ context.Context, id int64) (*models.Project, error) {
	return f.projects[id], nil
}

func (f *fakeProjectStore) GetMembers(_ context.Context, projectID int64) ([]models.ProjectMember, error) {
	return f.members[projectID], nil
}

func (f *fakeProjectStore) GetAll(_ context.Context) ([]*models.Project, error) {
	all := make([]*models.Project, 0, len(f.projects))
	for _, project := range f.projects {
		all = append(all, project)
	}
	return all, nil
}

func (f *fakeProjectStore) GetByStatus(_ context.Context, status models.ProjectStatus) ([]*models.Project, error) {
	var matched []*models.Project
	for _, project := range f.projects {
		if project.Status == status {
			matched = append(matched, project)
		}
	}
	return matched, nil
}

func (f *fakeProjectStore) Update(_ context.Context, project *models.Project) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	existing, ok := f.projects[project.ID]
	if !ok {
		return f.updateErr
	}
	project.Status = existing.Status
	project.TotalVotes = existing.TotalVotes
	project.FilePath = existing.FilePath
	f.projects[project.ID] = project
	return nil
}

func (f *fakeProjectStore) UpdateStatus(_ context.Context, id int64, status models.ProjectStatus) error {
	f.updatedStatus[id] = status
	if project, ok := f.projects[id]; ok {
		project.Status = status
	}
	return nil
}

func (f *fakeProjectStore) Delete(_ context.Context, id int64) error {
	f.deletedIDs = append(f.deletedIDs, id)
	delete(f.projects, id)
	return nil
}

type fakeCommentStore struct {
	comments []*models.Comment
	nextID   int64
}

func (f *fakeCommentStore) Create(_ context.Context, comment *models.Comment) error {
	f.nextID++
	comment.ID = f.nextID
	f.comments = append(f.comments, comment)
	return nil
}

func (f *fakeCommentStore) GetByProjectID(_ context.Context, projectID int64) ([]*models.Comment, error) {
	var matched []*models.Comment
	for _, comment := range f.comments {
		if comment.ProjectID == projectID {
			matched = append(matched, comment)
		}
	}
	return matched, nil
}

func (f *fakeCommentStore) Delete(_ context.Context, id int64) error {
	for i, comment := range f.comments {
		if comment.ID == id {
			f.comments = append(f.comments[:i], f.comments[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeBookmarkStore struct {
	bookmarks []*models.Bookmark
	nextID    int64
}

func (f *fakeBookmarkStore) Create(_ context.Context, bookmark *models.Bookmark) error {
	f.nextID++
	bookmark.ID = f.nextID
	f.bookmarks = append(f.bookmarks, bookmark)
	return nil
}

func (f *fakeBookmarkStore) Exists(_ context.Context, studentID, projectID int64) (bool, error) {
	for _, bookmark := range f.bookmarks {
		if bookmark.StudentID == studentID && bookmark.ProjectID == projectID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookmarkStore) GetByStudentID(_ context.Context, studentID int64) ([]*models.Bookmark, error) {
	var matched []*models.Bookmark
	for _, bookmark := range f.bookmarks {
		if bookmark.StudentID == studentID {
			matched = append(matched, bookmark)
		}
	}
	return matched, nil
}

func (f *fakeBookmarkStore) Delete(_ context.Context, id int64) error {
	for i, bookmark := range f.bookmarks {
		if bookmark.ID == id {
			f.bookmarks = append(f.bookmarks[:i], f.bookmarks[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeVocabularyStore struct {
	values map[models.VocabularyKind][]string
}

func newFakeVocabularyStore() *fakeVocabularyStore {
	return &fakeVocabularyStore{values: make(map[models.VocabularyKind][]string)}
}

func (f *fakeVocabularyStore) Add(_ context.Context, kind models.VocabularyKind, value string) error {
	f.values[kind] = append(f.values[kind], value)
	return nil
}

func (f *fakeVocabularyStore) Remove(_ context.Context, kind models.VocabularyKind, value string) error {
	for i, existing := range f.values[kind] {
		if existing == value {
			f.values[kind] = append(f.values[kind][:i], f.values[kind][i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeVocabularyStore) Exists(_ context.Context, kind models.VocabularyKind, value string) (bool, error) {
	for _, existing := range f.values[kind] {
		if existing == value {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeVocabularyStore) List(_ context.Context, kind models.VocabularyKind) ([]string, error) {
	return f.values[kind], nil
}

// fakeFileStorage records deletions so compensation paths can be asserted.
type fakeFileStorage struct {
	savedPath string
	deleted   []string
	deleteErr error
}

func (f *fakeFileStorage) SaveFile(_ *multipart.FileHeader) (string, error) {
	return f.savedPath, nil
}

func (f *fakeFileStorage) DeleteFile(filePath string) error {
	f.deleted = append(f.deleted, filePath)
	return f.deleteErr
}

func (f *fakeFileStorage) GetFullPath(filePath string) string {
	return filePath
}
