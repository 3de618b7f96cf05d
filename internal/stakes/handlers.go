package stakes

import (
	"errors"

	"wellcrest-backend/internal/middleware"
	"wellcrest-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Handlers bundles stake endpoints.
type Handlers struct {
	Service *Service
}

type addStakeRequest struct {
	InvestorID          string   `json:"investor_id"`
	ProjectID           string   `json:"project_id"`
	InvestedAmount      float64  `json:"invested_amount"`
	PercentageOwned     float64  `json:"percentage_owned"`
	BaseBarrelsOverride *float64 `json:"base_barrels_override"`
}

// AddStake POST /api/v1/stakes/add-stake
func (h *Handlers) AddStake(c *fiber.Ctx) error {
	var req addStakeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", 400, nil)
	}
	investorID, err := uuid.Parse(req.InvestorID)
	if err != nil {
		return response.Error(c, "Invalid investor ID format (must be a valid UUID)", 400, nil)
	}
	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		return response.Error(c, "Invalid project ID format (must be a valid UUID)", 400, nil)
	}

	in := AddStakeInput{
		InvestorID:      investorID,
		ProjectID:       projectID,
		InvestedAmount:  decimal.NewFromFloat(req.InvestedAmount),
		PercentageOwned: decimal.NewFromFloat(req.PercentageOwned),
	}
	if req.BaseBarrelsOverride != nil {
		d := decimal.NewFromFloat(*req.BaseBarrelsOverride)
		in.BaseBarrelsOverride = &d
	}

	stake, err := h.Service.AddStake(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, ErrProjectNotFound), errors.Is(err, ErrInvestorNotFound):
			return response.Error(c, err.Error(), 404, nil)
		case errors.Is(err, ErrStakeExists):
			return response.Error(c, err.Error(), 409, nil)
		case errors.Is(err, ErrInvalidPercent), errors.Is(err, ErrInvalidAmount):
			return response.Error(c, err.Error(), 400, nil)
		default:
			return response.Error(c, "Internal Server Error", 500, nil)
		}
	}
	return response.SuccessCreated(c, "Stake created successfully", stake, nil)
}

type updateStakeRequest struct {
	InvestedAmount      *float64 `json:"invested_amount"`
	PercentageOwned     *float64 `json:"percentage_owned"`
	BaseBarrelsOverride *float64 `json:"base_barrels_override"`
	ClearBarrelOverride bool     `json:"clear_barrel_override"`
}

// UpdateStake PATCH /api/v1/stakes/update-stake/:stake_id
func (h *Handlers) UpdateStake(c *fiber.Ctx) error {
	stakeID, err := uuid.Parse(c.Params("stake_id"))
	if err != nil {
		return response.Error(c, "Invalid stake ID format (must be a valid UUID)", 400, nil)
	}
	var req updateStakeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", 400, nil)
	}

	in := UpdateStakeInput{ClearBarrelOverride: req.ClearBarrelOverride}
	if req.InvestedAmount != nil {
		d := decimal.NewFromFloat(*req.InvestedAmount)
		in.InvestedAmount = &d
	}
	if req.PercentageOwned != nil {
		d := decimal.NewFromFloat(*req.PercentageOwned)
		in.PercentageOwned = &d
	}
	if req.BaseBarrelsOverride != nil {
		d := decimal.NewFromFloat(*req.BaseBarrelsOverride)
		in.BaseBarrelsOverride = &d
	}

	stake, err := h.Service.UpdateStake(c.Context(), stakeID, in)
	if err != nil {
		switch {
		case errors.Is(err, ErrStakeNotFound):
			return response.Error(c, err.Error(), 404, nil)
		case errors.Is(err, ErrInvalidPercent), errors.Is(err, ErrInvalidAmount):
			return response.Error(c, err.Error(), 400, nil)
		default:
			return response.Error(c, "Internal Server Error", 500, nil)
		}
	}
	return response.Success(c, "Stake updated successfully", stake, nil)
}

// RemoveStake DELETE /api/v1/stakes/remove-stake/:stake_id
func (h *Handlers) RemoveStake(c *fiber.Ctx) error {
	stakeID, err := uuid.Parse(c.Params("stake_id"))
	if err != nil {
		return response.Error(c, "Invalid stake ID format (must be a valid UUID)", 400, nil)
	}
	if err := h.Service.RemoveStake(c.Context(), stakeID); err != nil {
		if errors.Is(err, ErrStakeNotFound) {
			return response.Error(c, err.Error(), 404, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Stake removed successfully", nil, nil)
}

// ViewProjectStakes GET /api/v1/stakes/view-project-stakes/:project_id
func (h *Handlers) ViewProjectStakes(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("project_id"))
	if err != nil {
		return response.Error(c, "Invalid project ID format (must be a valid UUID)", 400, nil)
	}
	stakes, err := h.Service.ListByProject(c.Context(), projectID)
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Stakes fetched successfully", stakes, nil)
}

// ViewMyStakes GET /api/v1/stakes/view-my-stakes — the logged-in investor's
// positions.
func (h *Handlers) ViewMyStakes(c *fiber.Ctx) error {
	investorIDStr := middleware.GetSessionField(c, "investor_id")
	if investorIDStr == "" {
		return response.Error(c, "No investor profile linked to this account", 403, nil)
	}
	investorID, err := uuid.Parse(investorIDStr)
	if err != nil {
		return response.Error(c, "Invalid investor ID format (must be a valid UUID)", 400, nil)
	}
	stakes, err := h.Service.ListByInvestor(c.Context(), investorID)
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Stakes fetched successfully", stakes, nil)
}
