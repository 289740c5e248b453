package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emir/gradportal/internal/app/models"
	"github.com/emir/gradportal/internal/app/models/dto"
	"github.com/emir/gradportal/internal/app/services"
	"github.com/emir/gradportal/internal/middleware"
	"github.com/emir/gradportal/internal/pkg/filestorage"
)

const (
	teammateDataField = "teammateData"
	projectFileField  = "projectFile"
)

// ProjectController handles project registration, browsing and moderation
type ProjectController struct {
	projectService services.ProjectService
	fileStorage    filestorage.FileStorage
}

// NewProjectController creates a new ProjectController
func NewProjectController(projectService services.ProjectService, fileStorage filestorage.FileStorage) *ProjectController {
	return &ProjectController{
		projectService: projectService,
		fileStorage:    fileStorage,
	}
}

// RegisterProject handles project submission
// @Summary Register a graduation project
// @Description Accepts a multipart form with the project metadata, one JSON object per teammate in repeated teammateData fields, and an optional projectFile upload. The file is stored before the project row is written.
// @Tags projects
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Project title"
// @Param description formData string true "Project description"
// @Param supervisor_name formData string true "Supervisor name"
// @Param graduation_year formData int true "Graduation year"
// @Param graduation_term formData string true "Graduation term, must be a registered vocabulary value"
// @Param department_name formData string true "Department, must be a registered vocabulary value"
// @Param github_link formData string false "Repository link"
// @Param teammateData formData string true "JSON object per teammate, field repeated"
// @Param projectFile formData file false "Project document"
// @Success 201 {object} dto.APIResponse{data=models.Project} "Project registered"
// @Failure 400 {object} dto.ErrorResponse "Validation failed or teammate already assigned"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /register-project [post]
func (c *ProjectController) RegisterProject(ctx *gin.Context) {
	var form dto.RegisterProjectForm
	if err := ctx.ShouldBind(&form); err != nil {
		middleware.RenderBindingError(ctx, err)
		return
	}

	teammates, err := parseTeammates(ctx.PostFormArray(teammateDataField))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()).WithField(teammateDataField)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	// The upload is persisted before the service runs its checks. A rejected
	// registration after this point does not remove the stored file unless
	// the database write itself fails.
	var filePath string
	file, err := ctx.FormFile(projectFileField)
	switch {
	case err == nil:
		filePath, err = c.fileStorage.SaveFile(file)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
	case errors.Is(err, http.ErrMissingFile):
		// no file attached
	default:
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "could not read project file").WithField(projectFileField)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	project, err := c.projectService.Register(ctx, services.RegisterProjectInput{
		Form:      form,
		Teammates: teammates,
		FilePath:  filePath,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(project))
}

// parseTeammates decodes the repeated teammateData form values, each holding
// one JSON-encoded teammate object.
func parseTeammates(raw []string) ([]dto.Teammate, error) {
	teammates := make([]dto.Teammate, 0, len(raw))
	for _, entry := range raw {
		var teammate dto.Teammate
		if err := json.Unmarshal([]byte(entry), &teammate); err != nil {
			return nil, errors.New("teammateData entries must be JSON objects")
		}
		if teammate.StudentID <= 0 || teammate.StudentName == "" {
			return nil, errors.New("each teammate needs a student_name and a positive student_id")
		}
		teammates = append(teammates, teammate)
	}
	return teammates, nil
}

// GetAllProjects lists every project regardless of status
// @Summary List all projects
// @Tags projects
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Project} "Projects"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /projects [get]
func (c *ProjectController) GetAllProjects(ctx *gin.Context) {
	projects, err := c.projectService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(projects))
}

// GetProjectByID returns one project with its members
// @Summary Get a project
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} dto.APIResponse{data=models.Project} "Project"
// @Failure 404 {object} dto.ErrorResponse "Project not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /projects/{id} [get]
func (c *ProjectController) GetProjectByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "invalid project ID")
	if !ok {
		return
	}

	project, err := c.projectService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(project))
}

// GetPendingProjects lists projects awaiting moderation
// @Summary List pending projects
// @Tags projects
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Project} "Projects"
// @Router /pending-projects [get]
func (c *ProjectController) GetPendingProjects(ctx *gin.Context) {
	c.listByStatus(ctx, models.StatusPending)
}

// GetApprovedProjects lists projects that passed moderation. The route is
// also mounted as /accepted-projects for older clients.
// @Summary List approved projects
// @Tags projects
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Project} "Projects"
// @Router /approved-projects [get]
func (c *ProjectController) GetApprovedProjects(ctx *gin.Context) {
	c.listByStatus(ctx, models.StatusApproved)
}

// GetRejectedProjects lists projects that failed moderation
// @Summary List rejected projects
// @Tags projects
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Project} "Projects"
// @Router /rejected-projects [get]
func (c *ProjectController) GetRejectedProjects(ctx *gin.Context) {
	c.listByStatus(ctx, models.StatusRejected)
}

func (c *ProjectController) listByStatus(ctx *gin.Context, status models.ProjectStatus) {
	projects, err := c.projectService.GetByStatus(ctx, status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(projects))
}

// UpdateProject overwrites a project's metadata
// @Summary Update a project
// @Description Full overwrite of the metadata columns. Omitted fields are written as empty values.
// @Tags projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param request body dto.UpdateProjectRequest true "New metadata"
// @Success 200 {object} dto.APIResponse{data=models.Project} "Updated project"
// @Failure 404 {object} dto.ErrorResponse "Project not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /projects/{id} [put]
func (c *ProjectController) UpdateProject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "invalid project ID")
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	project, err := c.projectService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(project))
}

// UpdateProjectStatus applies a moderation decision
// @Summary Update a project's status
// @Tags projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param request body dto.UpdateProjectStatusRequest true "New status"
// @Success 200 {object} dto.SuccessResponse "Status updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid status"
// @Failure 404 {object} dto.ErrorResponse "Project not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /projects/{id}/status [patch]
func (c *ProjectController) UpdateProjectStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "invalid project ID")
	if !ok {
		return
	}

	var req dto.UpdateProjectStatusRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	status, err := models.ParseProjectStatus(req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.projectService.UpdateStatus(ctx, id, status); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "project status updated"})
}

// DeleteProject removes a project, its member rows and its stored file
// @Summary Delete a project
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} dto.SuccessResponse "Project deleted"
// @Failure 404 {object} dto.ErrorResponse "Project not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /projects/{id} [delete]
func (c *ProjectController) DeleteProject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "invalid project ID")
	if !ok {
		return
	}

	if err := c.projectService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "project deleted"})
}

// parseIDParam reads a path parameter as a positive integer, rendering a 400
// response itself when it is not one.
func parseIDParam(ctx *gin.Context, name, message string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
