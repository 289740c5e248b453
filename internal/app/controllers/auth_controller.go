package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emir/gradportal/internal/app/models/dto"
	"github.com/emir/gradportal/internal/app/services"
	"github.com/emir/gradportal/internal/middleware"
)

// AuthController handles registration, login and account administration
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// StudentRegister handles student registration
// @Summary Register a student
// @Description Creates a student account with an institutional email and returns the record without the password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=models.Student} "Student created"
// @Failure 400 {object} dto.ValidationErrors "Validation failed"
// @Failure 409 {object} dto.ErrorResponse "Duplicate ID or email"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student-register [post]
func (c *AuthController) StudentRegister(ctx *gin.Context) {
	var req dto.RegisterStudentRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	student, err := c.authService.RegisterStudent(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(student))
}

// StudentLogin handles student login
// @Summary Log a student in
// @Description Verifies ID and password; the error body never reveals which one was wrong
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.StudentLoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Login successful"
// @Failure 404 {object} dto.ErrorResponse "ID or password not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student-login [post]
func (c *AuthController) StudentLogin(ctx *gin.Context) {
	var req dto.StudentLoginRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	student, err := c.authService.LoginStudent(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// ProfessorRegister handles professor registration
// @Summary Register a professor
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterProfessorRequest true "Professor information"
// @Success 201 {object} dto.APIResponse{data=models.Professor} "Professor created"
// @Failure 400 {object} dto.ValidationErrors "Validation failed"
// @Failure 409 {object} dto.ErrorResponse "Duplicate ID or email"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /professor-register [post]
func (c *AuthController) ProfessorRegister(ctx *gin.Context) {
	var req dto.RegisterProfessorRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	professor, err := c.authService.RegisterProfessor(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(professor))
}

// ProfessorLogin handles professor login
// @Summary Log a professor in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ProfessorLoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=models.Professor} "Login successful"
// @Failure 404 {object} dto.ErrorResponse "ID or password not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /professor-login [post]
func (c *AuthController) ProfessorLogin(ctx *gin.Context) {
	var req dto.ProfessorLoginRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	professor, err := c.authService.LoginProfessor(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(professor))
}

// CreateProfessor handles admin-side professor creation with a generated ID
// @Summary Create a professor account
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.CreateProfessorRequest true "Professor information"
// @Success 201 {object} dto.APIResponse{data=models.Professor} "Professor created"
// @Failure 400 {object} dto.ValidationErrors "Validation failed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /create-professor [post]
func (c *AuthController) CreateProfessor(ctx *gin.Context) {
	var req dto.CreateProfessorRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	professor, err := c.authService.CreateProfessor(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(professor))
}

// DeleteStudent handles admin-side student deletion
// @Summary Delete a student account
// @Description Removes the student row; references to the ID elsewhere are not cleaned up
// @Tags admin
// @Produce json
// @Param student_id path int true "Student ID"
// @Success 200 {object} dto.SuccessResponse "Student deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /delete-student/{student_id} [delete]
func (c *AuthController) DeleteStudent(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "student_id", "invalid student ID")
	if !ok {
		return
	}

	if err := c.authService.DeleteStudent(ctx, studentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "student deleted"})
}
