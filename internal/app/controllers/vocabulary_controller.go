package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emir/gradportal/internal/app/models"
	"github.com/emir/gradportal/internal/app/models/dto"
	"github.com/emir/gradportal/internal/app/services"
	"github.com/emir/gradportal/internal/middleware"
)

// VocabularyController handles the admin-editable department and graduation
// term vocabularies. Project registration only accepts values present here.
type VocabularyController struct {
	vocabularyService services.VocabularyService
}

// NewVocabularyController creates a new VocabularyController
func NewVocabularyController(vocabularyService services.VocabularyService) *VocabularyController {
	return &VocabularyController{vocabularyService: vocabularyService}
}

// AddDepartment registers a new department value
// @Summary Add a department
// @Tags vocabulary
// @Accept json
// @Produce json
// @Param request body dto.DepartmentRequest true "Department"
// @Success 200 {object} dto.SuccessResponse "Department added"
// @Failure 400 {object} dto.ErrorResponse "Value already exists or is empty"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /departments [post]
func (c *VocabularyController) AddDepartment(ctx *gin.Context) {
	var req dto.DepartmentRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	if err := c.vocabularyService.Add(ctx, models.VocabularyDepartment, req.DepartmentName); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "department added"})
}

// DeleteDepartment removes a department value
// @Summary Delete a department
// @Description Existing projects referencing the value are left untouched.
// @Tags vocabulary
// @Accept json
// @Produce json
// @Param request body dto.DepartmentRequest true "Department"
// @Success 200 {object} dto.SuccessResponse "Department removed"
// @Failure 404 {object} dto.ErrorResponse "Value not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /departments [delete]
func (c *VocabularyController) DeleteDepartment(ctx *gin.Context) {
	var req dto.DepartmentRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	if err := c.vocabularyService.Remove(ctx, models.VocabularyDepartment, req.DepartmentName); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "department removed"})
}

// ShowDepartments lists the registered departments
// @Summary List departments
// @Tags vocabulary
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]string} "Departments"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /show-departments [get]
func (c *VocabularyController) ShowDepartments(ctx *gin.Context) {
	values, err := c.vocabularyService.List(ctx, models.VocabularyDepartment)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(values))
}

// AddGraduationTerm registers a new graduation term value
// @Summary Add a graduation term
// @Tags vocabulary
// @Accept json
// @Produce json
// @Param request body dto.GraduationTermRequest true "Graduation term"
// @Success 200 {object} dto.SuccessResponse "Graduation term added"
// @Failure 400 {object} dto.ErrorResponse "Value already exists or is empty"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /graduation-terms [post]
func (c *VocabularyController) AddGraduationTerm(ctx *gin.Context) {
	var req dto.GraduationTermRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	if err := c.vocabularyService.Add(ctx, models.VocabularyGraduationTerm, req.GraduationTerm); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "graduation term added"})
}

// DeleteGraduationTerm removes a graduation term value
// @Summary Delete a graduation term
// @Tags vocabulary
// @Accept json
// @Produce json
// @Param request body dto.GraduationTermRequest true "Graduation term"
// @Success 200 {object} dto.SuccessResponse "Graduation term removed"
// @Failure 404 {object} dto.ErrorResponse "Value not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /graduation-terms [delete]
func (c *VocabularyController) DeleteGraduationTerm(ctx *gin.Context) {
	var req dto.GraduationTermRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	if err := c.vocabularyService.Remove(ctx, models.VocabularyGraduationTerm, req.GraduationTerm); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "graduation term removed"})
}

// ShowGraduationTerms lists the registered graduation terms
// @Summary List graduation terms
// @Tags vocabulary
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]string} "Graduation terms"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /show-graduation-terms [get]
func (c *VocabularyController) ShowGraduationTerms(ctx *gin.Context) {
	values, err := c.vocabularyService.List(ctx, models.VocabularyGraduationTerm)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(values))
}
