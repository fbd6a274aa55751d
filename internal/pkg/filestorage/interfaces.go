package filestorage

import (
	"mime/multipart"
)

// FileStorage defines the interface for upload storage
type FileStorage interface {
	// SaveFileWithPath stores the upload under subPath and returns its public URL path.
	// A nil header stores nothing and returns "".
	SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error)

	// DeleteFile removes a file previously returned by SaveFileWithPath
	DeleteFile(fileURL string) error
}
