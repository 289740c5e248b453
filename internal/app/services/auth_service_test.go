package services

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emir/gradportal/internal/app/models/dto"
	"github.com/emir/gradportal/internal/pkg/apperrors"
	"github.com/emir/gradportal/internal/pkg/auth"
)

const testEmailDomain = "@std.uni.edu.tr"

func newAuthServiceForTest(students *fakeStudentStore, professors *fakeProfessorStore) AuthService {
	tokenService := auth.NewTokenService(auth.TokenConfig{
		SecretKey:  "unit-test-secret",
		Expiration: time.Hour,
		Issuer:     "gradportal.test",
	})
	return NewAuthService(students, professors, tokenService, testEmailDomain, zerolog.Nop())
}

func validStudentRequest() *dto.RegisterStudentRequest {
	return &dto.RegisterStudentRequest{
		Email:      "20190808020@std.uni.edu.tr",
		Name:       "Ayse Yilmaz",
		Password:   "sekret123",
		Department: "Computer Engineering",
		StudentID:  20190808020,
	}
}

func TestRegisterStudent(t *testing.T) {
	students := newFakeStudentStore()
	service := newAuthServiceForTest(students, newFakeProfessorStore())

	student, err := service.RegisterStudent(context.Background(), validStudentRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(20190808020), student.ID)
	assert.NotEqual(t, "sekret123", student.Password)
	assert.True(t, auth.CheckPassword(student.Password, "sekret123"))
	assert.NotEmpty(t, student.Token)
	require.Len(t, students.created, 1)
	// the persisted row carries the registration token
	assert.Equal(t, student.Token, students.created[0].Token)
}

func TestRegisterStudentRejectsForeignEmailDomain(t *testing.T) {
	service := newAuthServiceForTest(newFakeStudentStore(), newFakeProfessorStore())

	req := validStudentRequest()
	req.Email = "someone@gmail.com"

	_, err := service.RegisterStudent(context.Background(), req)
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestRegisterStudentRejectsPasswordLength(t *testing.T) {
	service := newAuthServiceForTest(newFakeStudentStore(), newFakeProfessorStore())

	for _, password := range []string{"short", "waytoolongpassword"} {
		req := validStudentRequest()
		req.Password = password

		_, err := service.RegisterStudent(context.Background(), req)
		require.ErrorIs(t, err, apperrors.ErrValidationFailed, "password %q", password)
	}
}

func TestRegisterStudentDuplicateID(t *testing.T) {
	students := newFakeStudentStore()
	service := newAuthServiceForTest(students, newFakeProfessorStore())

	_, err := service.RegisterStudent(context.Background(), validStudentRequest())
	require.NoError(t, err)

	req := validStudentRequest()
	req.Email = "other" + testEmailDomain
	_, err = service.RegisterStudent(context.Background(), req)
	require.ErrorIs(t, err, apperrors.ErrIdentifierExists)
}

func TestRegisterStudentDuplicateEmail(t *testing.T) {
	students := newFakeStudentStore()
	students.emailExists = true
	service := newAuthServiceForTest(students, newFakeProfessorStore())

	_, err := service.RegisterStudent(context.Background(), validStudentRequest())
	require.ErrorIs(t, err, apperrors.ErrEmailExists)
}

func TestRegisterStudentUniqueConstraintRace(t *testing.T) {
	students := newFakeStudentStore()
	students.createErr = &pgconn.PgError{Code: "23505", ConstraintName: "students_email_key"}
	service := newAuthServiceForTest(students, newFakeProfessorStore())

	_, err := service.RegisterStudent(context.Background(), validStudentRequest())
	require.ErrorIs(t, err, apperrors.ErrDuplicateEntry)
}

func TestLoginStudent(t *testing.T) {
	students := newFakeStudentStore()
	service := newAuthServiceForTest(students, newFakeProfessorStore())

	registered, err := service.RegisterStudent(context.Background(), validStudentRequest())
	require.NoError(t, err)
	storedToken := students.students[registered.ID].Token

	student, err := service.LoginStudent(context.Background(), &dto.StudentLoginRequest{
		StudentID: 20190808020,
		Password:  "sekret123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, student.Token)
	// login issues a response-only token; the stored row keeps the original
	assert.Equal(t, storedToken, students.students[registered.ID].Token)
}

func TestLoginStudentWrongPassword(t *testing.T) {
	students := newFakeStudentStore()
	service := newAuthServiceForTest(students, newFakeProfessorStore())

	_, err := service.RegisterStudent(context.Background(), validStudentRequest())
	require.NoError(t, err)

	_, err = service.LoginStudent(context.Background(), &dto.StudentLoginRequest{
		StudentID: 20190808020,
		Password:  "wrongpass",
	})
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginStudentUnknownID(t *testing.T) {
	service := newAuthServiceForTest(newFakeStudentStore(), newFakeProfessorStore())

	_, err := service.LoginStudent(context.Background(), &dto.StudentLoginRequest{
		StudentID: 999,
		Password:  "sekret123",
	})
	// indistinguishable from a wrong password
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRegisterAndLoginProfessor(t *testing.T) {
	professors := newFakeProfessorStore()
	service := newAuthServiceForTest(newFakeStudentStore(), professors)

	registered, err := service.RegisterProfessor(context.Background(), &dto.RegisterProfessorRequest{
		Email:       "demir@std.uni.edu.tr",
		Name:        "Prof. Dr. Mehmet Demir",
		Password:    "sekret123",
		Department:  "Computer Engineering",
		ProfessorID: 1001,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1001), registered.ID)

	professor, err := service.LoginProfessor(context.Background(), &dto.ProfessorLoginRequest{
		ProfessorID: 1001,
		Password:    "sekret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, professor.Token)
}

func TestCreateProfessorGeneratesID(t *testing.T) {
	professors := newFakeProfessorStore()
	service := newAuthServiceForTest(newFakeStudentStore(), professors)

	// admin creation skips the email-domain restriction
	professor, err := service.CreateProfessor(context.Background(), &dto.CreateProfessorRequest{
		Name:       "Visiting Lecturer",
		Email:      "lecturer@external.example.com",
		Password:   "sekret123",
		Department: "Industrial Engineering",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), professor.ID)
	assert.NotEmpty(t, professor.Token)
	assert.Len(t, professors.created, 1)
}

func TestDeleteStudent(t *testing.T) {
	students := newFakeStudentStore()
	service := newAuthServiceForTest(students, newFakeProfessorStore())

	_, err := service.RegisterStudent(context.Background(), validStudentRequest())
	require.NoError(t, err)

	require.NoError(t, service.DeleteStudent(context.Background(), 20190808020))
	assert.Contains(t, students.deletedIDs, int64(20190808020))
}

func TestDeleteStudentNotFound(t *testing.T) {
	students := newFakeStudentStore()
	students.deleteErr = apperrors.ErrStudentNotFound
	service := newAuthServiceForTest(students, newFakeProfessorStore())

	err := service.DeleteStudent(context.Background(), 404)
	require.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}
