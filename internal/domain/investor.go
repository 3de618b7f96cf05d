package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Investor is the business-side record behind a portal user. Email is the
// unique business key used for lookups. Investors are never hard-deleted
// (historical distribution integrity).
type Investor struct {
	InvestorID     uuid.UUID      `gorm:"column:investor_id;type:uuid;primaryKey" json:"investor_id"`
	UserID         *uuid.UUID     `gorm:"column:user_id;type:uuid" json:"user_id"`
	FullName       string         `gorm:"column:full_name;not null" json:"full_name"`
	Email          string         `gorm:"column:email;not null;uniqueIndex" json:"email"`
	Phone          *string        `gorm:"column:phone" json:"phone"`
	BankingDetails datatypes.JSON `gorm:"column:banking_details;type:jsonb" json:"banking_details"`
	Profile        datatypes.JSON `gorm:"column:profile;type:jsonb" json:"profile"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Investor) TableName() string {
	return "Investors"
}

func (i *Investor) BeforeCreate(tx *gorm.DB) error {
	if i.InvestorID == uuid.Nil {
		i.InvestorID = uuid.New()
	}
	return nil
}
