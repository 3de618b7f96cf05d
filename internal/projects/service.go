package projects

import (
	"context"
	"errors"
	"strings"

	"wellcrest-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound = errors.New("Project not found")
	ErrNameRequired    = errors.New("Project name is required")
	ErrNameTaken       = errors.New("Project name already exists")
	ErrInvalidStatus   = errors.New("Invalid project status")
	ErrInvalidRaise    = errors.New("target_raise must not be negative")
)

// Service manages projects. Projects transition between statuses and are
// never hard-deleted.
type Service struct {
	DB *gorm.DB
}

// CreateInput for a new project.
type CreateInput struct {
	Name        string
	Location    string
	Status      string
	TotalUnits  int
	TargetRaise decimal.Decimal
}

// Create adds a project. Status defaults to Planning when empty.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Project, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	status := in.Status
	if status == "" {
		status = domain.ProjectStatusPlanning
	}
	if !domain.IsValidProjectStatus(status) {
		return nil, ErrInvalidStatus
	}
	if in.TargetRaise.IsNegative() {
		return nil, ErrInvalidRaise
	}

	var existing domain.Project
	if err := s.DB.WithContext(ctx).Where("name = ?", name).First(&existing).Error; err == nil {
		return nil, ErrNameTaken
	}

	project := &domain.Project{
		Name:        name,
		Location:    strings.TrimSpace(in.Location),
		Status:      status,
		TotalUnits:  in.TotalUnits,
		TargetRaise: in.TargetRaise,
	}
	if err := s.DB.WithContext(ctx).Create(project).Error; err != nil {
		return nil, err
	}
	return project, nil
}

// UpdateInput carries editable fields; nil means leave unchanged.
type UpdateInput struct {
	Name        *string
	Location    *string
	Status      *string
	TotalUnits  *int
	TargetRaise *decimal.Decimal
}

// Update edits project fields, including status transitions within the
// closed set.
func (s *Service) Update(ctx context.Context, projectID uuid.UUID, in UpdateInput) (*domain.Project, error) {
	var project domain.Project
	if err := s.DB.WithContext(ctx).Where("project_id = ?", projectID).First(&project).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		project.Name = name
	}
	if in.Location != nil {
		project.Location = strings.TrimSpace(*in.Location)
	}
	if in.Status != nil {
		if !domain.IsValidProjectStatus(*in.Status) {
			return nil, ErrInvalidStatus
		}
		project.Status = *in.Status
	}
	if in.TotalUnits != nil {
		project.TotalUnits = *in.TotalUnits
	}
	if in.TargetRaise != nil {
		if in.TargetRaise.IsNegative() {
			return nil, ErrInvalidRaise
		}
		project.TargetRaise = *in.TargetRaise
	}

	if err := s.DB.WithContext(ctx).Save(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// Get returns one project by ID.
func (s *Service) Get(ctx context.Context, projectID uuid.UUID) (*domain.Project, error) {
	var project domain.Project
	if err := s.DB.WithContext(ctx).Where("project_id = ?", projectID).First(&project).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

// List returns all projects, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Project, error) {
	var projects []domain.Project
	if err := s.DB.WithContext(ctx).Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}
