package distributions

import (
	"errors"

	"wellcrest-backend/internal/middleware"
	"wellcrest-backend/internal/payout"
	"wellcrest-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Handlers bundles distribution endpoints.
type Handlers struct {
	Service *Service
}

type payoutRequest struct {
	ProjectID         string             `json:"project_id"`
	Year              int                `json:"year"`
	Month             int                `json:"month"`
	TotalBarrels      float64            `json:"total_barrels"`
	PricePerBarrel    float64            `json:"price_per_barrel"`
	OperatingExpenses float64            `json:"operating_expenses"`
	BarrelOverrides   map[string]float64 `json:"barrel_overrides"`
}

func (r payoutRequest) toInput() (uuid.UUID, ProductionInput, error) {
	projectID, err := uuid.Parse(r.ProjectID)
	if err != nil {
		return uuid.Nil, ProductionInput{}, err
	}
	in := ProductionInput{
		TotalBarrels:      decimal.NewFromFloat(r.TotalBarrels),
		PricePerBarrel:    decimal.NewFromFloat(r.PricePerBarrel),
		OperatingExpenses: decimal.NewFromFloat(r.OperatingExpenses),
	}
	if len(r.BarrelOverrides) > 0 {
		in.BarrelOverrides = make(map[uuid.UUID]decimal.Decimal, len(r.BarrelOverrides))
		for k, v := range r.BarrelOverrides {
			id, err := uuid.Parse(k)
			if err != nil {
				return uuid.Nil, ProductionInput{}, err
			}
			in.BarrelOverrides[id] = decimal.NewFromFloat(v)
		}
	}
	return projectID, in, nil
}

// ProcessPayout POST /api/v1/distributions/process-payout
func (h *Handlers) ProcessPayout(c *fiber.Ctx) error {
	return h.runPayout(c, true)
}

// PreviewPayout POST /api/v1/distributions/preview-payout — same calculation,
// nothing persisted.
func (h *Handlers) PreviewPayout(c *fiber.Ctx) error {
	return h.runPayout(c, false)
}

func (h *Handlers) runPayout(c *fiber.Ctx, persist bool) error {
	var req payoutRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", 400, nil)
	}
	projectID, in, err := req.toInput()
	if err != nil {
		return response.Error(c, "Invalid project or investor ID format (must be a valid UUID)", 400, nil)
	}

	var result *payout.Result
	if persist {
		result, err = h.Service.ProcessPayout(c.Context(), projectID, req.Year, req.Month, in)
	} else {
		result, err = h.Service.PreviewPayout(c.Context(), projectID, req.Year, req.Month, in)
	}
	if err != nil {
		var vErr *payout.ValidationError
		var pErr *PersistenceError
		switch {
		case errors.As(err, &vErr):
			return response.Error(c, "Invalid payout input", 400, fiber.Map{"field": vErr.Field, "message": vErr.Message})
		case errors.As(err, &pErr):
			// Calculation succeeded; the write failed. Client may retry the
			// same request — same-period upserts overwrite, not duplicate.
			return response.Error(c, "Failed to persist distributions, please retry", 503, fiber.Map{"retryable": true})
		case errors.Is(err, ErrProjectNotFound):
			return response.Error(c, err.Error(), 404, nil)
		case errors.Is(err, ErrInvalidPeriod):
			return response.Error(c, err.Error(), 400, nil)
		default:
			return response.Error(c, "Internal Server Error", 500, nil)
		}
	}

	msg := "Payout preview calculated"
	if persist {
		msg = "Payout processed successfully"
	}
	return response.Success(c, msg, result, nil)
}

// ViewPeriod GET /api/v1/distributions/view-period/:project_id/:year/:month
func (h *Handlers) ViewPeriod(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("project_id"))
	if err != nil {
		return response.Error(c, "Invalid project ID format (must be a valid UUID)", 400, nil)
	}
	year, _ := c.ParamsInt("year")
	month, _ := c.ParamsInt("month")

	summary, rows, err := h.Service.ListForPeriod(c.Context(), projectID, year, month)
	if err != nil {
		if errors.Is(err, ErrInvalidPeriod) {
			return response.Error(c, err.Error(), 400, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	if summary == nil {
		return response.Error(c, "No distributions found for this period", 404, nil)
	}
	return response.Success(c, "Distributions fetched successfully", fiber.Map{
		"summary":       summary,
		"distributions": rows,
	}, nil)
}

// ViewMine GET /api/v1/distributions/view-mine — the logged-in investor's
// distribution history.
func (h *Handlers) ViewMine(c *fiber.Ctx) error {
	investorIDStr := middleware.GetSessionField(c, "investor_id")
	if investorIDStr == "" {
		return response.Error(c, "No investor profile linked to this account", 403, nil)
	}
	investorID, err := uuid.Parse(investorIDStr)
	if err != nil {
		return response.Error(c, "Invalid investor ID format (must be a valid UUID)", 400, nil)
	}
	rows, err := h.Service.ListForInvestor(c.Context(), investorID)
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Distributions fetched successfully", rows, nil)
}
