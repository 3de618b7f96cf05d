package investors

import (
	"errors"

	"wellcrest-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Handlers bundles investor endpoints.
type Handlers struct {
	Service *Service
}

type createInvestorRequest struct {
	FullName       string                 `json:"full_name"`
	Email          string                 `json:"email"`
	Phone          string                 `json:"phone"`
	Password       string                 `json:"password"`
	BankingDetails map[string]interface{} `json:"banking_details"`
	Profile        map[string]interface{} `json:"profile"`
}

// CreateInvestor POST /api/v1/investors/create-investor — adds the investor
// and provisions portal access in one step.
func (h *Handlers) CreateInvestor(c *fiber.Ctx) error {
	var req createInvestorRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", 400, nil)
	}
	investor, err := h.Service.Create(c.Context(), CreateInput{
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		Password:       req.Password,
		BankingDetails: req.BankingDetails,
		Profile:        req.Profile,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrNameRequired), errors.Is(err, ErrInvalidEmail), errors.Is(err, ErrInvalidPassword):
			return response.Error(c, err.Error(), 400, nil)
		case errors.Is(err, ErrEmailTaken):
			return response.Error(c, err.Error(), 409, nil)
		default:
			return response.Error(c, "Internal Server Error", 500, nil)
		}
	}
	return response.SuccessCreated(c, "Investor created successfully", investor, nil)
}

type updateInvestorRequest struct {
	FullName       *string                `json:"full_name"`
	Phone          *string                `json:"phone"`
	BankingDetails map[string]interface{} `json:"banking_details"`
	Profile        map[string]interface{} `json:"profile"`
}

// UpdateInvestor PATCH /api/v1/investors/update-investor/:investor_id
func (h *Handlers) UpdateInvestor(c *fiber.Ctx) error {
	investorID, err := uuid.Parse(c.Params("investor_id"))
	if err != nil {
		return response.Error(c, "Invalid investor ID format (must be a valid UUID)", 400, nil)
	}
	var req updateInvestorRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", 400, nil)
	}
	investor, err := h.Service.Update(c.Context(), investorID, UpdateInput{
		FullName:       req.FullName,
		Phone:          req.Phone,
		BankingDetails: req.BankingDetails,
		Profile:        req.Profile,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvestorNotFound):
			return response.Error(c, err.Error(), 404, nil)
		case errors.Is(err, ErrNameRequired):
			return response.Error(c, err.Error(), 400, nil)
		default:
			return response.Error(c, "Internal Server Error", 500, nil)
		}
	}
	return response.Success(c, "Investor updated successfully", investor, nil)
}

// ViewInvestor GET /api/v1/investors/view-investor/:investor_id
func (h *Handlers) ViewInvestor(c *fiber.Ctx) error {
	investorID, err := uuid.Parse(c.Params("investor_id"))
	if err != nil {
		return response.Error(c, "Invalid investor ID format (must be a valid UUID)", 400, nil)
	}
	investor, err := h.Service.Get(c.Context(), investorID)
	if err != nil {
		if errors.Is(err, ErrInvestorNotFound) {
			return response.Error(c, err.Error(), 404, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Investor fetched successfully", investor, nil)
}

// GetAllInvestors GET /api/v1/investors/get-all-investors
func (h *Handlers) GetAllInvestors(c *fiber.Ctx) error {
	investors, err := h.Service.List(c.Context())
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Investors fetched successfully", investors, nil)
}
