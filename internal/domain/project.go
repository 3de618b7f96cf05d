package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Project statuses form a closed set; projects transition between statuses
// and are never hard-deleted.
const (
	ProjectStatusOpen      = "Open"
	ProjectStatusActive    = "Active"
	ProjectStatusPlanning  = "Planning"
	ProjectStatusFunding   = "Funding"
	ProjectStatusOnHold    = "On Hold"
	ProjectStatusCompleted = "Completed"
	ProjectStatusCancelled = "Cancelled"
)

// ValidProjectStatuses is the allowed set for the status column.
var ValidProjectStatuses = []string{
	ProjectStatusOpen, ProjectStatusActive, ProjectStatusPlanning,
	ProjectStatusFunding, ProjectStatusOnHold, ProjectStatusCompleted,
	ProjectStatusCancelled,
}

// IsValidProjectStatus returns true if status is one of the allowed values.
func IsValidProjectStatus(status string) bool {
	for _, s := range ValidProjectStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Project is an oil & gas investment project (well or lease package).
type Project struct {
	ProjectID   uuid.UUID       `gorm:"column:project_id;type:uuid;primaryKey" json:"project_id"`
	Name        string          `gorm:"column:name;not null;uniqueIndex" json:"name"`
	Location    string          `gorm:"column:location" json:"location"`
	Status      string          `gorm:"column:status;type:varchar(20);not null;default:Planning" json:"status"`
	TotalUnits  int             `gorm:"column:total_units;not null;default:0" json:"total_units"`
	TargetRaise decimal.Decimal `gorm:"column:target_raise;type:decimal(18,2);not null;default:0" json:"target_raise"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (Project) TableName() string {
	return "Projects"
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ProjectID == uuid.Nil {
		p.ProjectID = uuid.New()
	}
	return nil
}
