package documents

import (
	"wellcrest-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Handlers bundles document upload endpoints.
type Handlers struct {
	Service *Service
}

type uploadRequest struct {
	FileName string `json:"file_name"`
}

// UploadStatement POST /api/v1/documents/statement — signed URL for an
// investor statement PDF.
func (h *Handlers) UploadStatement(c *fiber.Ctx) error {
	var req uploadRequest
	if err := c.BodyParser(&req); err != nil || req.FileName == "" {
		return response.Error(c, "file_name is required", 400, nil)
	}
	res, err := h.Service.GetSignedUploadURL(c.Context(), BucketStatements, req.FileName)
	if err != nil {
		return response.Error(c, "Failed to generate upload URL", 500, nil)
	}
	return response.Success(c, "Upload URL generated", res, nil)
}

// UploadProjectDoc POST /api/v1/documents/project-doc — signed URL for a
// project document (lease, title opinion, AFE).
func (h *Handlers) UploadProjectDoc(c *fiber.Ctx) error {
	var req uploadRequest
	if err := c.BodyParser(&req); err != nil || req.FileName == "" {
		return response.Error(c, "file_name is required", 400, nil)
	}
	res, err := h.Service.GetSignedUploadURL(c.Context(), BucketProjectDocs, req.FileName)
	if err != nil {
		return response.Error(c, "Failed to generate upload URL", 500, nil)
	}
	return response.Success(c, "Upload URL generated", res, nil)
}
