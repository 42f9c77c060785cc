package filestorage

import (
	"bytes"
	"fmt"

	"github.com/arjun/placehub/internal/pkg/apperrors"
)

var pdfMagic = []byte("%PDF")

// ValidateResume enforces the resume contract: a non-empty PDF of at
// most MaxResumeSize bytes. The declared content type is checked first,
// then the file magic, so a renamed .docx is still rejected.
func ValidateResume(data []byte, contentType string) error {
	if len(data) == 0 {
		return apperrors.NewValidationError("no file provided")
	}
	if len(data) > MaxResumeSize {
		return apperrors.NewValidationError(fmt.Sprintf("file size must be less than %dMB", MaxResumeSize/(1024*1024)))
	}
	if contentType != "" && contentType != "application/pdf" {
		return apperrors.NewValidationError("only PDF files are allowed")
	}
	if !bytes.HasPrefix(data, pdfMagic) {
		return apperrors.NewValidationError("only PDF files are allowed")
	}
	return nil
}
