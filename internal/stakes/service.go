package stakes

import (
	"context"
	"errors"

	"wellcrest-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound  = errors.New("Project not found")
	ErrInvestorNotFound = errors.New("Investor not found")
	ErrStakeNotFound    = errors.New("Stake not found")
	ErrStakeExists      = errors.New("Investor already holds a stake in this project")
	ErrInvalidPercent   = errors.New("percentage_owned must be between 0 and 100")
	ErrInvalidAmount    = errors.New("invested_amount must not be negative")
)

var hundred = decimal.NewFromInt(100)

// Service manages the ownership ledger.
type Service struct {
	DB *gorm.DB
}

// AddStakeInput for creating a stake.
type AddStakeInput struct {
	InvestorID          uuid.UUID
	ProjectID           uuid.UUID
	InvestedAmount      decimal.Decimal
	PercentageOwned     decimal.Decimal
	BaseBarrelsOverride *decimal.Decimal
}

// AddStake creates a stake after checking both sides exist. Per-project
// percentages are deliberately not forced to sum to 100.
func (s *Service) AddStake(ctx context.Context, in AddStakeInput) (*domain.OwnershipStake, error) {
	if err := validateStakeNumbers(in.InvestedAmount, in.PercentageOwned); err != nil {
		return nil, err
	}

	var project domain.Project
	if err := s.DB.WithContext(ctx).Where("project_id = ?", in.ProjectID).First(&project).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	var investor domain.Investor
	if err := s.DB.WithContext(ctx).Where("investor_id = ?", in.InvestorID).First(&investor).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrInvestorNotFound
		}
		return nil, err
	}

	var existing domain.OwnershipStake
	if err := s.DB.WithContext(ctx).
		Where("investor_id = ? AND project_id = ?", in.InvestorID, in.ProjectID).
		First(&existing).Error; err == nil {
		return nil, ErrStakeExists
	}

	stake := &domain.OwnershipStake{
		InvestorID:          in.InvestorID,
		ProjectID:           in.ProjectID,
		InvestedAmount:      in.InvestedAmount,
		PercentageOwned:     in.PercentageOwned,
		BaseBarrelsOverride: in.BaseBarrelsOverride,
	}
	if err := s.DB.WithContext(ctx).Create(stake).Error; err != nil {
		return nil, err
	}
	return stake, nil
}

// UpdateStakeInput carries adjustable fields; nil means leave unchanged.
type UpdateStakeInput struct {
	InvestedAmount      *decimal.Decimal
	PercentageOwned     *decimal.Decimal
	BaseBarrelsOverride *decimal.Decimal
	ClearBarrelOverride bool
}

// UpdateStake adjusts amount/percentage/override on an existing stake.
func (s *Service) UpdateStake(ctx context.Context, stakeID uuid.UUID, in UpdateStakeInput) (*domain.OwnershipStake, error) {
	var stake domain.OwnershipStake
	if err := s.DB.WithContext(ctx).Where("stake_id = ?", stakeID).First(&stake).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrStakeNotFound
		}
		return nil, err
	}

	if in.InvestedAmount != nil {
		stake.InvestedAmount = *in.InvestedAmount
	}
	if in.PercentageOwned != nil {
		stake.PercentageOwned = *in.PercentageOwned
	}
	if err := validateStakeNumbers(stake.InvestedAmount, stake.PercentageOwned); err != nil {
		return nil, err
	}
	if in.ClearBarrelOverride {
		stake.BaseBarrelsOverride = nil
	} else if in.BaseBarrelsOverride != nil {
		stake.BaseBarrelsOverride = in.BaseBarrelsOverride
	}

	if err := s.DB.WithContext(ctx).Save(&stake).Error; err != nil {
		return nil, err
	}
	return &stake, nil
}

// RemoveStake hard-deletes the stake row. Investor and project records and
// any persisted distributions stay untouched.
func (s *Service) RemoveStake(ctx context.Context, stakeID uuid.UUID) error {
	res := s.DB.WithContext(ctx).Where("stake_id = ?", stakeID).Delete(&domain.OwnershipStake{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStakeNotFound
	}
	return nil
}

// ListByProject returns all stakes in a project.
func (s *Service) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.OwnershipStake, error) {
	var stakes []domain.OwnershipStake
	if err := s.DB.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("percentage_owned DESC").
		Find(&stakes).Error; err != nil {
		return nil, err
	}
	return stakes, nil
}

// ListByInvestor returns all stakes held by an investor.
func (s *Service) ListByInvestor(ctx context.Context, investorID uuid.UUID) ([]domain.OwnershipStake, error) {
	var stakes []domain.OwnershipStake
	if err := s.DB.WithContext(ctx).
		Where("investor_id = ?", investorID).
		Find(&stakes).Error; err != nil {
		return nil, err
	}
	return stakes, nil
}

func validateStakeNumbers(amount, percentage decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrInvalidAmount
	}
	if percentage.IsNegative() || percentage.GreaterThan(hundred) {
		return ErrInvalidPercent
	}
	return nil
}
