package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/emir/gradportal/internal/app/models"
	"github.com/emir/gradportal/internal/app/models/dto"
	"github.com/emir/gradportal/internal/pkg/apperrors"
	"github.com/emir/gradportal/internal/pkg/auth"
	"github.com/emir/gradportal/internal/pkg/dberrors"
)

const (
	roleStudent   = "student"
	roleProfessor = "professor"

	minPasswordLength = 8
	maxPasswordLength = 12
)

// authService handles registration, login and account administration for
// students and professors.
type authService struct {
	studentRepo   StudentStore
	professorRepo ProfessorStore
	tokenService  *auth.TokenService
	emailDomain   string
	logger        zerolog.Logger
}

// NewAuthService creates a new AuthService. emailDomain is the required
// institutional suffix, including the leading '@'.
func NewAuthService(
	studentRepo StudentStore,
	professorRepo ProfessorStore,
	tokenService *auth.TokenService,
	emailDomain string,
	logger zerolog.Logger,
) AuthService {
	return &authService{
		studentRepo:   studentRepo,
		professorRepo: professorRepo,
		tokenService:  tokenService,
		emailDomain:   emailDomain,
		logger:        logger,
	}
}

// validateEmail checks the institutional domain suffix
func (s *authService) validateEmail(email string) error {
	if !strings.HasSuffix(strings.ToLower(email), s.emailDomain) {
		return fmt.Errorf("%w: email must end with %s", apperrors.ErrValidationFailed, s.emailDomain)
	}
	return nil
}

// validatePassword enforces the 8-12 character length rule
func (s *authService) validatePassword(password string) error {
	if len(password) < minPasswordLength || len(password) > maxPasswordLength {
		return fmt.Errorf("%w: password must be between %d and %d characters",
			apperrors.ErrValidationFailed, minPasswordLength, maxPasswordLength)
	}
	return nil
}

// RegisterStudent registers a new student account
func (s *authService) RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (*models.Student, error) {
	if err := s.validateEmail(req.Email); err != nil {
		return nil, err
	}
	if err := s.validatePassword(req.Password); err != nil {
		return nil, err
	}

	exists, err := s.studentRepo.IDExists(ctx, req.StudentID)
	if err != nil {
		return nil, fmt.Errorf("error checking student ID: %w", err)
	}
	if exists {
		return nil, apperrors.ErrIdentifierExists
	}

	exists, err = s.studentRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking student email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	token, err := s.tokenService.IssueToken(req.StudentID, req.Email, roleStudent)
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}

	student := &models.Student{
		ID:         req.StudentID,
		Name:       req.Name,
		Email:      req.Email,
		Password:   hashedPassword,
		Department: req.Department,
		Token:      token,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		// The pre-checks race with concurrent registrations; the unique
		// constraints are the final word.
		if dberrors.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrDuplicateEntry
		}
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	s.logger.Info().Int64("studentId", student.ID).Msg("Student registered")
	return student, nil
}

// LoginStudent authenticates a student by ID and password. Both an unknown
// ID and a wrong password produce the same generic error.
func (s *authService) LoginStudent(ctx context.Context, req *dto.StudentLoginRequest) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, req.StudentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	if student == nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(student.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	// A fresh token is built for the response only; the stored row keeps the
	// token issued at registration.
	token, err := s.tokenService.IssueToken(student.ID, student.Email, roleStudent)
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}
	student.Token = token

	return student, nil
}

// RegisterProfessor registers a new professor account with a client-supplied ID
func (s *authService) RegisterProfessor(ctx context.Context, req *dto.RegisterProfessorRequest) (*models.Professor, error) {
	if err := s.validateEmail(req.Email); err != nil {
		return nil, err
	}
	if err := s.validatePassword(req.Password); err != nil {
		return nil, err
	}

	exists, err := s.professorRepo.IDExists(ctx, req.ProfessorID)
	if err != nil {
		return nil, fmt.Errorf("error checking professor ID: %w", err)
	}
	if exists {
		return nil, apperrors.ErrIdentifierExists
	}

	exists, err = s.professorRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking professor email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	token, err := s.tokenService.IssueToken(req.ProfessorID, req.Email, roleProfessor)
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}

	professor := &models.Professor{
		ID:         req.ProfessorID,
		Name:       req.Name,
		Email:      req.Email,
		Password:   hashedPassword,
		Department: req.Department,
		Token:      token,
	}

	if err := s.professorRepo.Create(ctx, professor); err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrDuplicateEntry
		}
		return nil, fmt.Errorf("error creating professor: %w", err)
	}

	s.logger.Info().Int64("professorId", professor.ID).Msg("Professor registered")
	return professor, nil
}

// LoginProfessor authenticates a professor by ID and password
func (s *authService) LoginProfessor(ctx context.Context, req *dto.ProfessorLoginRequest) (*models.Professor, error) {
	professor, err := s.professorRepo.GetByID(ctx, req.ProfessorID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving professor: %w", err)
	}
	if professor == nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(professor.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokenService.IssueToken(professor.ID, professor.Email, roleProfessor)
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}
	professor.Token = token

	return professor, nil
}

// CreateProfessor creates a professor account with a generated ID. Unlike
// portal registration, the email domain is not restricted here.
func (s *authService) CreateProfessor(ctx context.Context, req *dto.CreateProfessorRequest) (*models.Professor, error) {
	if err := s.validatePassword(req.Password); err != nil {
		return nil, err
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	professor := &models.Professor{
		Name:       req.Name,
		Email:      req.Email,
		Password:   hashedPassword,
		Department: req.Department,
	}

	if err := s.professorRepo.CreateGenerated(ctx, professor); err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrDuplicateEntry
		}
		return nil, fmt.Errorf("error creating professor: %w", err)
	}

	token, err := s.tokenService.IssueToken(professor.ID, professor.Email, roleProfessor)
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}
	professor.Token = token

	return professor, nil
}

// DeleteStudent removes a student account. References to the ID in comments,
// bookmarks and project memberships are left dangling on purpose.
func (s *authService) DeleteStudent(ctx context.Context, studentID int64) error {
	return s.studentRepo.Delete(ctx, studentID)
}
