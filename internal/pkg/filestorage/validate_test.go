package filestorage

import (
	"bytes"
	"errors"
	"testing"

	"github.com/arjun/placehub/internal/pkg/apperrors"
)

func pdfBytes(n int) []byte {
	data := make([]byte, n)
	copy(data, "%PDF-1.7")
	return data
}

func TestValidateResume(t *testing.T) {
	cases := []struct {
		name        string
		data        []byte
		contentType string
		wantErr     bool
	}{
		{"valid pdf", pdfBytes(1024), "application/pdf", false},
		{"valid without declared type", pdfBytes(1024), "", false},
		{"empty file", nil, "application/pdf", true},
		{"oversize", pdfBytes(MaxResumeSize + 1), "application/pdf", true},
		{"exactly max size", pdfBytes(MaxResumeSize), "application/pdf", false},
		{"wrong content type", pdfBytes(1024), "application/msword", true},
		{"renamed docx", bytes.Repeat([]byte("PK"), 512), "application/pdf", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateResume(tc.data, tc.contentType)
			if tc.wantErr && err == nil {
				t.Fatal("expected an error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if err != nil && !errors.Is(err, apperrors.ErrValidation) {
				t.Errorf("error %v should carry the validation kind", err)
			}
		})
	}
}
