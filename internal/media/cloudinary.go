package media

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Uploader forwards images to the media host's unsigned upload endpoint
// and returns the permanent URL the host assigns.
type Uploader struct {
	baseURL string
	preset  string
	folder  string
	client  *http.Client
}

func NewUploader(cloudName, preset, folder string) *Uploader {
	return &Uploader{
		baseURL: fmt.Sprintf("https://api.cloudinary.com/v1_1/%s", cloudName),
		preset:  preset,
		folder:  folder,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (u *Uploader) UploadImage(filename string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", err
	}

	fields := map[string]string{
		"upload_preset": u.preset,
		"folder":        u.folder,
		"public_id":     uuid.NewString(),
	}
	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			return "", err
		}
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, u.baseURL+"/image/upload", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := u.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("uploading to media host: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("media host returned %s", resp.Status)
	}

	var out struct {
		SecureURL string `json:"secure_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding media host response: %w", err)
	}
	if out.SecureURL == "" {
		return "", fmt.Errorf("media host response missing secure_url")
	}

	return out.SecureURL, nil
}
