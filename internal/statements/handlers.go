package statements

import (
	"errors"

	"wellcrest-backend/internal/middleware"
	"wellcrest-backend/internal/pkg/constants"
	"wellcrest-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Handlers bundles statement endpoints.
type Handlers struct {
	Service *Service
}

// GetStatement GET /api/v1/statements/:investor_id/:year/:month
// Investors may only fetch their own statement; admins may fetch any.
func (h *Handlers) GetStatement(c *fiber.Ctx) error {
	investorID, err := uuid.Parse(c.Params("investor_id"))
	if err != nil {
		return response.Error(c, "Invalid investor ID format (must be a valid UUID)", 400, nil)
	}
	year, _ := c.ParamsInt("year")
	month, _ := c.ParamsInt("month")

	role := middleware.GetSessionField(c, "role")
	if role == constants.Investor {
		own := middleware.GetSessionField(c, "investor_id")
		if own != investorID.String() {
			return response.Error(c, "Unauthorized access to statement", 403, nil)
		}
	}

	stmt, err := h.Service.BuildStatement(c.Context(), investorID, year, month)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvestorNotFound):
			return response.Error(c, err.Error(), 404, nil)
		case errors.Is(err, ErrInvalidPeriod):
			return response.Error(c, err.Error(), 400, nil)
		default:
			return response.Error(c, "Internal Server Error", 500, nil)
		}
	}

	meta := map[string]interface{}{}
	if stmt.Degraded {
		// Non-fatal: reconstruction fell back to stored aggregates for at
		// least one project; the UI can flag reduced confidence.
		meta["degraded"] = true
	}
	return response.Success(c, "Statement generated successfully", stmt, meta)
}
