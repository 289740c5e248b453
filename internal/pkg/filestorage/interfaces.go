package filestorage

import "mime/multipart"

// FileStorage defines the interface for stored project attachments
type FileStorage interface {
	// SaveFile saves an uploaded file and returns its accessible path.
	SaveFile(fileHeader *multipart.FileHeader) (string, error)

	// DeleteFile removes a stored file. Deleting a path that no longer
	// exists is not an error.
	DeleteFile(filePath string) error

	// GetFullPath returns the filesystem path for a stored file path.
	GetFullPath(filePath string) string
}
