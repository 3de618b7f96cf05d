package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RevenueSummary is the canonical revenue figure for one project-month: the
// net investor payout (pool minus expenses) plus the raw production facts
// needed to regenerate the waterfall on a statement. Keyed uniquely by
// (project, year, month) so a period resolves to exactly one production
// snapshot. Re-running a payout for the same period upserts this row.
type RevenueSummary struct {
	SummaryID    uuid.UUID       `gorm:"column:summary_id;type:uuid;primaryKey" json:"summary_id"`
	ProjectID    uuid.UUID       `gorm:"column:project_id;type:uuid;not null;uniqueIndex:idx_revenue_period" json:"project_id"`
	Year         int             `gorm:"column:year;not null;uniqueIndex:idx_revenue_period" json:"year"`
	Month        int             `gorm:"column:month;not null;uniqueIndex:idx_revenue_period" json:"month"`
	TotalRevenue decimal.Decimal `gorm:"column:total_revenue;type:decimal(18,2);not null" json:"total_revenue"`

	// Raw facts snapshot; nullable for records predating raw-fact capture.
	TotalBarrels      *decimal.Decimal `gorm:"column:total_barrels;type:decimal(18,4)" json:"total_barrels"`
	PricePerBarrel    *decimal.Decimal `gorm:"column:price_per_barrel;type:decimal(18,4)" json:"price_per_barrel"`
	SeveranceTax      *decimal.Decimal `gorm:"column:severance_tax;type:decimal(18,2)" json:"severance_tax"`
	OperatingExpenses *decimal.Decimal `gorm:"column:operating_expenses;type:decimal(18,2)" json:"operating_expenses"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (RevenueSummary) TableName() string {
	return "RevenueSummaries"
}

func (r *RevenueSummary) BeforeCreate(tx *gorm.DB) error {
	if r.SummaryID == uuid.Nil {
		r.SummaryID = uuid.New()
	}
	return nil
}

// Distribution is the persisted result of a payout calculation for one
// investor and period: the payout amount plus the ownership percentage
// snapshot taken at calculation time. Keyed uniquely by (project, investor,
// year, month); same-period reruns overwrite rather than append.
type Distribution struct {
	DistributionID  uuid.UUID       `gorm:"column:distribution_id;type:uuid;primaryKey" json:"distribution_id"`
	ProjectID       uuid.UUID       `gorm:"column:project_id;type:uuid;not null;uniqueIndex:idx_distribution_period" json:"project_id"`
	InvestorID      uuid.UUID       `gorm:"column:investor_id;type:uuid;not null;uniqueIndex:idx_distribution_period" json:"investor_id"`
	Year            int             `gorm:"column:year;not null;uniqueIndex:idx_distribution_period" json:"year"`
	Month           int             `gorm:"column:month;not null;uniqueIndex:idx_distribution_period" json:"month"`
	PercentageOwned decimal.Decimal `gorm:"column:percentage_owned;type:decimal(8,4);not null" json:"percentage_owned"`
	PayoutAmount    decimal.Decimal `gorm:"column:payout_amount;type:decimal(18,2);not null" json:"payout_amount"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

func (Distribution) TableName() string {
	return "Distributions"
}

func (d *Distribution) BeforeCreate(tx *gorm.DB) error {
	if d.DistributionID == uuid.Nil {
		d.DistributionID = uuid.New()
	}
	return nil
}
