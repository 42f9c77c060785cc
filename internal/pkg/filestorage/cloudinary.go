package filestorage

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/arjun/placehub/internal/pkg/apperrors"
)

// CloudinaryStorage uploads resume PDFs to Cloudinary as raw resources
// via their REST API and returns the durable secure URL.
type CloudinaryStorage struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
	HTTP      *http.Client
}

// NewCloudinaryStorage creates a Cloudinary-backed resume store.
func NewCloudinaryStorage(cloudName, apiKey, apiSecret, folder string) *CloudinaryStorage {
	return &CloudinaryStorage{
		CloudName: cloudName,
		APIKey:    apiKey,
		APISecret: apiSecret,
		Folder:    folder,
		HTTP:      &http.Client{Timeout: 30 * time.Second},
	}
}

type uploadResult struct {
	PublicID  string `json:"public_id"`
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
	Bytes     int    `json:"bytes"`
}

// UploadResume validates and uploads a resume, returning the durable URL.
func (c *CloudinaryStorage) UploadResume(ctx context.Context, data []byte, filename string) (string, error) {
	if err := ValidateResume(data, "application/pdf"); err != nil {
		return "", err
	}

	publicID := fmt.Sprintf("resume_%d_%s", time.Now().Unix(), uuid.New().String()[:8])
	params := map[string]string{
		"timestamp": strconv.FormatInt(time.Now().Unix(), 10),
		"api_key":   c.APIKey,
		"public_id": publicID,
	}
	if c.Folder != "" {
		params["folder"] = c.Folder
	}
	params["signature"] = c.sign(params)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range params {
		_ = w.WriteField(k, v)
	}
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", apperrors.NewDependencyError(err, "cloudinary: create form file failed")
	}
	if _, err := io.Copy(part, bytes.NewReader(data)); err != nil {
		return "", apperrors.NewDependencyError(err, "cloudinary: write file failed")
	}
	w.Close()

	// Resumes are PDFs, so resource_type must be raw, not image.
	url := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/raw/upload", c.CloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return "", apperrors.NewDependencyError(err, "cloudinary: create request failed")
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", apperrors.NewDependencyError(err, "cloudinary: request failed")
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 300 {
		return "", apperrors.NewDependencyError(
			fmt.Errorf("status %d: %s", resp.StatusCode, string(body)),
			"cloudinary: upload failed",
		)
	}

	var result uploadResult
	if err := json.Unmarshal(body, &result); err != nil {
		return "", apperrors.NewDependencyError(err, "cloudinary: decode response failed")
	}
	if result.SecureURL == "" {
		return "", apperrors.NewDependencyError(nil, "cloudinary: empty secure_url in response")
	}
	return result.SecureURL, nil
}

// sign computes the Cloudinary API signature from the given params.
// api_key and file are excluded from the signature per Cloudinary spec.
func (c *CloudinaryStorage) sign(params map[string]string) string {
	excludeKeys := map[string]bool{"api_key": true, "file": true, "resource_type": true}

	pairs := make([]string, 0, len(params))
	for k, v := range params {
		if !excludeKeys[k] && v != "" {
			pairs = append(pairs, k+"="+v)
		}
	}
	sort.Strings(pairs)

	payload := strings.Join(pairs, "&") + c.APISecret
	h := sha1.New()
	h.Write([]byte(payload))
	return fmt.Sprintf("%x", h.Sum(nil))
}
