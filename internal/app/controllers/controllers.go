package controllers

import (
	"github.com/emir/gradportal/internal/app/services"
	"github.com/emir/gradportal/internal/pkg/filestorage"
)

// Controllers bundles every HTTP controller for route registration
type Controllers struct {
	Auth       *AuthController
	Project    *ProjectController
	Comment    *CommentController
	Bookmark   *BookmarkController
	Vocabulary *VocabularyController
}

// NewControllers wires the controllers to their services
func NewControllers(svc *services.Services, fileStorage filestorage.FileStorage) *Controllers {
	return &Controllers{
		Auth:       NewAuthController(svc.Auth),
		Project:    NewProjectController(svc.Project, fileStorage),
		Comment:    NewCommentController(svc.Comment),
		Bookmark:   NewBookmarkController(svc.Bookmark),
		Vocabulary: NewVocabularyController(svc.Vocabulary),
	}
}
