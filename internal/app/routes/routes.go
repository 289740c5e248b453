package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emir/gradportal/internal/app/controllers"
)

// SetupRouter configures all application routes. Every route is public; the
// tokens issued at registration and login are not checked anywhere.
func SetupRouter(router *gin.Engine, c *controllers.Controllers) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Accounts ---
	v1.POST("/student-register", c.Auth.StudentRegister)
	v1.POST("/student-login", c.Auth.StudentLogin)
	v1.POST("/professor-register", c.Auth.ProfessorRegister)
	v1.POST("/professor-login", c.Auth.ProfessorLogin)
	v1.POST("/create-professor", c.Auth.CreateProfessor)
	v1.DELETE("/delete-student/:student_id", c.Auth.DeleteStudent)

	// --- Projects ---
	v1.POST("/register-project", c.Project.RegisterProject)
	projects := v1.Group("/projects")
	{
		projects.GET("", c.Project.GetAllProjects)
		projects.GET("/:id", c.Project.GetProjectByID)
		projects.PUT("/:id", c.Project.UpdateProject)
		projects.PATCH("/:id/status", c.Project.UpdateProjectStatus)
		projects.DELETE("/:id", c.Project.DeleteProject)
	}
	v1.GET("/pending-projects", c.Project.GetPendingProjects)
	v1.GET("/approved-projects", c.Project.GetApprovedProjects)
	// older clients still call the accepted spelling
	v1.GET("/accepted-projects", c.Project.GetApprovedProjects)
	v1.GET("/rejected-projects", c.Project.GetRejectedProjects)

	// --- Comments ---
	v1.POST("/add-comment/:project_id", c.Comment.AddComment)
	v1.GET("/show-comments/:project_id", c.Comment.ShowComments)
	v1.DELETE("/delete-comment/:comment_id", c.Comment.DeleteComment)
	v1.DELETE("/comments/:comment_id", c.Comment.DeleteComment)

	// --- Bookmarks ---
	v1.POST("/add-bookmark/:project_id/:student_id", c.Bookmark.AddBookmark)
	v1.GET("/show-bookmarks/:student_id", c.Bookmark.ShowBookmarks)
	v1.DELETE("/delete-bookmarks/:bookmark_id", c.Bookmark.DeleteBookmark)

	// --- Vocabularies ---
	v1.POST("/departments", c.Vocabulary.AddDepartment)
	v1.DELETE("/departments", c.Vocabulary.DeleteDepartment)
	v1.GET("/show-departments", c.Vocabulary.ShowDepartments)
	v1.POST("/graduation-terms", c.Vocabulary.AddGraduationTerm)
	v1.DELETE("/graduation-terms", c.Vocabulary.DeleteGraduationTerm)
	v1.GET("/show-graduation-terms", c.Vocabulary.ShowGraduationTerms)

	// --- Health ---
	v1.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
