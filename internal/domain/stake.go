package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OwnershipStake is one investor's position in one project: invested amount
// and ownership percentage (0-100). Per-project percentages are not forced
// to sum to 100 — admins may under/over-allocate during interim states.
// Removal is a hard delete of the row, never of investor or project.
type OwnershipStake struct {
	StakeID         uuid.UUID       `gorm:"column:stake_id;type:uuid;primaryKey" json:"stake_id"`
	InvestorID      uuid.UUID       `gorm:"column:investor_id;type:uuid;not null;uniqueIndex:idx_stake_investor_project" json:"investor_id"`
	ProjectID       uuid.UUID       `gorm:"column:project_id;type:uuid;not null;uniqueIndex:idx_stake_investor_project" json:"project_id"`
	InvestedAmount  decimal.Decimal `gorm:"column:invested_amount;type:decimal(18,2);not null;default:0" json:"invested_amount"`
	PercentageOwned decimal.Decimal `gorm:"column:percentage_owned;type:decimal(8,4);not null;default:0" json:"percentage_owned"`
	// BaseBarrelsOverride substitutes the project barrel total for this
	// investor during payout runs (partial-month or working-interest cases).
	BaseBarrelsOverride *decimal.Decimal `gorm:"column:base_barrels_override;type:decimal(18,4)" json:"base_barrels_override"`
	CreatedAt           time.Time        `json:"createdAt"`
	UpdatedAt           time.Time        `json:"updatedAt"`
}

func (OwnershipStake) TableName() string {
	return "OwnershipStakes"
}

func (s *OwnershipStake) BeforeCreate(tx *gorm.DB) error {
	if s.StakeID == uuid.Nil {
		s.StakeID = uuid.New()
	}
	return nil
}
