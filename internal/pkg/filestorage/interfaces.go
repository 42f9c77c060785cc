package filestorage

import "context"

// MaxResumeSize is the upload ceiling for resume files.
const MaxResumeSize = 2 * 1024 * 1024

// ResumeStorage stores a resume file and returns a durable URL.
type ResumeStorage interface {
	UploadResume(ctx context.Context, data []byte, filename string) (string, error)
}
