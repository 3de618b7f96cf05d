package documents

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStorage struct {
	lastBucket string
	lastPath   string
	err        error
}

func (s *stubStorage) CreateSignedUploadURL(ctx context.Context, bucket, path string) (string, error) {
	s.lastBucket = bucket
	s.lastPath = path
	if s.err != nil {
		return "", s.err
	}
	return "https://storage.example.com/signed/" + bucket + "/" + path, nil
}

func setupDocsApp(stub *stubStorage) *fiber.App {
	h := &Handlers{Service: &Service{Client: stub, StorageURL: "https://storage.example.com"}}
	app := fiber.New()
	app.Post("/api/v1/documents/statement", h.UploadStatement)
	app.Post("/api/v1/documents/project-doc", h.UploadProjectDoc)
	return app
}

func TestUploadStatement_ReturnsSignedAndPublicURLs(t *testing.T) {
	stub := &stubStorage{}
	app := setupDocsApp(stub)

	body, _ := json.Marshal(map[string]string{"file_name": "july-2026.pdf"})
	req := httptest.NewRequest("POST", "/api/v1/documents/statement", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Equal(t, BucketStatements, stub.lastBucket)
	assert.True(t, strings.HasSuffix(stub.lastPath, "-july-2026.pdf"))

	var respBody map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&respBody))
	data := respBody["data"].(map[string]interface{})
	assert.Contains(t, data["uploadUrl"], "signed/statements/")
	assert.Contains(t, data["publicUrl"], "/storage/v1/object/public/statements/")
}

func TestUploadProjectDoc_UsesProjectBucket(t *testing.T) {
	stub := &stubStorage{}
	app := setupDocsApp(stub)

	body, _ := json.Marshal(map[string]string{"file_name": "lease-agreement.pdf"})
	req := httptest.NewRequest("POST", "/api/v1/documents/project-doc", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, BucketProjectDocs, stub.lastBucket)
}

func TestUpload_MissingFileName(t *testing.T) {
	app := setupDocsApp(&stubStorage{})

	body, _ := json.Marshal(map[string]string{})
	req := httptest.NewRequest("POST", "/api/v1/documents/statement", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpload_StorageFailure(t *testing.T) {
	app := setupDocsApp(&stubStorage{err: errors.New("storage down")})

	body, _ := json.Marshal(map[string]string{"file_name": "july-2026.pdf"})
	req := httptest.NewRequest("POST", "/api/v1/documents/statement", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
