package projects

import (
	"errors"

	"wellcrest-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Handlers bundles project endpoints.
type Handlers struct {
	Service *Service
}

type createProjectRequest struct {
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	Status      string  `json:"status"`
	TotalUnits  int     `json:"total_units"`
	TargetRaise float64 `json:"target_raise"`
}

// CreateProject POST /api/v1/projects/create-project
func (h *Handlers) CreateProject(c *fiber.Ctx) error {
	var req createProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", 400, nil)
	}
	project, err := h.Service.Create(c.Context(), CreateInput{
		Name:        req.Name,
		Location:    req.Location,
		Status:      req.Status,
		TotalUnits:  req.TotalUnits,
		TargetRaise: decimal.NewFromFloat(req.TargetRaise),
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrNameRequired), errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrInvalidRaise):
			return response.Error(c, err.Error(), 400, nil)
		case errors.Is(err, ErrNameTaken):
			return response.Error(c, err.Error(), 409, nil)
		default:
			return response.Error(c, "Internal Server Error", 500, nil)
		}
	}
	return response.SuccessCreated(c, "Project created successfully", project, nil)
}

type updateProjectRequest struct {
	Name        *string  `json:"name"`
	Location    *string  `json:"location"`
	Status      *string  `json:"status"`
	TotalUnits  *int     `json:"total_units"`
	TargetRaise *float64 `json:"target_raise"`
}

// UpdateProject PATCH /api/v1/projects/update-project/:project_id
func (h *Handlers) UpdateProject(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("project_id"))
	if err != nil {
		return response.Error(c, "Invalid project ID format (must be a valid UUID)", 400, nil)
	}
	var req updateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", 400, nil)
	}

	in := UpdateInput{
		Name:       req.Name,
		Location:   req.Location,
		Status:     req.Status,
		TotalUnits: req.TotalUnits,
	}
	if req.TargetRaise != nil {
		d := decimal.NewFromFloat(*req.TargetRaise)
		in.TargetRaise = &d
	}

	project, err := h.Service.Update(c.Context(), projectID, in)
	if err != nil {
		switch {
		case errors.Is(err, ErrProjectNotFound):
			return response.Error(c, err.Error(), 404, nil)
		case errors.Is(err, ErrNameRequired), errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrInvalidRaise):
			return response.Error(c, err.Error(), 400, nil)
		default:
			return response.Error(c, "Internal Server Error", 500, nil)
		}
	}
	return response.Success(c, "Project updated successfully", project, nil)
}

// GetProject GET /api/v1/projects/get-project/:project_id
func (h *Handlers) GetProject(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("project_id"))
	if err != nil {
		return response.Error(c, "Invalid project ID format (must be a valid UUID)", 400, nil)
	}
	project, err := h.Service.Get(c.Context(), projectID)
	if err != nil {
		if errors.Is(err, ErrProjectNotFound) {
			return response.Error(c, err.Error(), 404, nil)
		}
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Project fetched successfully", project, nil)
}

// GetAllProjects GET /api/v1/projects/get-all-projects
func (h *Handlers) GetAllProjects(c *fiber.Ctx) error {
	projects, err := h.Service.List(c.Context())
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Projects fetched successfully", projects, nil)
}
