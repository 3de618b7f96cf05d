package distributions

import (
	"context"

	"wellcrest-backend/internal/domain"
	"wellcrest-backend/internal/money"
	"wellcrest-backend/internal/payout"
	"wellcrest-backend/internal/pkg/validation"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Service runs monthly payout processing: it reads the ownership ledger,
// feeds the calculator, and commits the results.
type Service struct {
	DB *gorm.DB
}

// ProductionInput is one project-month of raw facts supplied by an admin.
// Only the derived results are durably stored.
type ProductionInput struct {
	TotalBarrels      decimal.Decimal
	PricePerBarrel    decimal.Decimal
	OperatingExpenses decimal.Decimal
	// BarrelOverrides maps investor_id to a base-barrel substitute for that
	// investor's share computation.
	BarrelOverrides map[uuid.UUID]decimal.Decimal
}

// PreviewPayout calculates a payout run without persisting anything, for
// admin review before commit.
func (s *Service) PreviewPayout(ctx context.Context, projectID uuid.UUID, year, month int, in ProductionInput) (*payout.Result, error) {
	_, calcInput, err := s.loadRun(ctx, projectID, year, month, in)
	if err != nil {
		return nil, err
	}
	return payout.Calculate(calcInput)
}

// ProcessPayout calculates and persists a payout run for one project-month.
// On a *PersistenceError the returned Result is still valid; the caller may
// retry Persist without recomputation.
func (s *Service) ProcessPayout(ctx context.Context, projectID uuid.UUID, year, month int, in ProductionInput) (*payout.Result, error) {
	_, calcInput, err := s.loadRun(ctx, projectID, year, month, in)
	if err != nil {
		return nil, err
	}
	result, err := payout.Calculate(calcInput)
	if err != nil {
		return nil, err
	}

	if err := s.Persist(ctx, projectID, year, month, in, result); err != nil {
		return result, err
	}

	log.Info().
		Str("project_id", projectID.String()).
		Int("year", year).Int("month", month).
		Str("net_investor_payout", money.DisplayString(result.NetInvestorPayout)).
		Int("distributions", len(result.Distributions)).
		Msg("payout run persisted")
	return result, nil
}

// Persist commits the run in a single transaction: the revenue summary for
// the period (with the raw facts snapshot) and one distribution row per
// stake. Keys are (project, year, month) and (project, investor, year,
// month); reruns for the same period overwrite. No reader observes a
// summary without its distributions.
func (s *Service) Persist(ctx context.Context, projectID uuid.UUID, year, month int, in ProductionInput, res *payout.Result) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		totalBarrels := res.TotalBarrels
		price := in.PricePerBarrel
		severance := res.SeveranceTax
		expenses := res.OperatingExpenses

		summary := domain.RevenueSummary{
			ProjectID:         projectID,
			Year:              year,
			Month:             month,
			TotalRevenue:      money.Display(res.NetInvestorPayout),
			TotalBarrels:      &totalBarrels,
			PricePerBarrel:    &price,
			SeveranceTax:      &severance,
			OperatingExpenses: &expenses,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "project_id"}, {Name: "year"}, {Name: "month"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"total_revenue", "total_barrels", "price_per_barrel",
				"severance_tax", "operating_expenses", "updated_at",
			}),
		}).Create(&summary).Error; err != nil {
			return err
		}

		for _, d := range res.Distributions {
			row := domain.Distribution{
				ProjectID:       projectID,
				InvestorID:      d.InvestorID,
				Year:            year,
				Month:           month,
				PercentageOwned: d.OwnershipFraction.Mul(decimal.NewFromInt(100)),
				PayoutAmount:    money.Display(d.Amount),
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "project_id"}, {Name: "investor_id"}, {Name: "year"}, {Name: "month"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"percentage_owned", "payout_amount", "updated_at",
				}),
			}).Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return &PersistenceError{Err: err}
	}
	return nil
}

// loadRun validates the period, resolves the project, and snapshots the
// ownership ledger into calculator input.
func (s *Service) loadRun(ctx context.Context, projectID uuid.UUID, year, month int, in ProductionInput) (*domain.Project, payout.Input, error) {
	if !validation.IsValidYear(year) || !validation.IsValidMonth(month) {
		return nil, payout.Input{}, ErrInvalidPeriod
	}

	var project domain.Project
	if err := s.DB.WithContext(ctx).Where("project_id = ?", projectID).First(&project).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, payout.Input{}, ErrProjectNotFound
		}
		return nil, payout.Input{}, err
	}

	var stakes []domain.OwnershipStake
	if err := s.DB.WithContext(ctx).Where("project_id = ?", projectID).Find(&stakes).Error; err != nil {
		return nil, payout.Input{}, err
	}

	calcStakes := make([]payout.Stake, 0, len(stakes))
	for _, st := range stakes {
		stake := payout.Stake{
			InvestorID:        st.InvestorID,
			OwnershipFraction: st.PercentageOwned.Div(decimal.NewFromInt(100)),
		}
		// Request overrides win over any persisted per-stake override.
		if ov, ok := in.BarrelOverrides[st.InvestorID]; ok {
			v := ov
			stake.BaseBarrelsOverride = &v
		} else if st.BaseBarrelsOverride != nil {
			v := *st.BaseBarrelsOverride
			stake.BaseBarrelsOverride = &v
		}
		calcStakes = append(calcStakes, stake)
	}

	return &project, payout.Input{
		TotalBarrels:      in.TotalBarrels,
		PricePerBarrel:    in.PricePerBarrel,
		OperatingExpenses: in.OperatingExpenses,
		Stakes:            calcStakes,
	}, nil
}

// ListForPeriod returns the persisted summary and distributions for one
// project-month.
func (s *Service) ListForPeriod(ctx context.Context, projectID uuid.UUID, year, month int) (*domain.RevenueSummary, []domain.Distribution, error) {
	if !validation.IsValidYear(year) || !validation.IsValidMonth(month) {
		return nil, nil, ErrInvalidPeriod
	}
	var summary domain.RevenueSummary
	if err := s.DB.WithContext(ctx).
		Where("project_id = ? AND year = ? AND month = ?", projectID, year, month).
		First(&summary).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	var rows []domain.Distribution
	if err := s.DB.WithContext(ctx).
		Where("project_id = ? AND year = ? AND month = ?", projectID, year, month).
		Order("payout_amount DESC").
		Find(&rows).Error; err != nil {
		return nil, nil, err
	}
	return &summary, rows, nil
}

// ListForInvestor returns an investor's distributions, newest first.
func (s *Service) ListForInvestor(ctx context.Context, investorID uuid.UUID) ([]domain.Distribution, error) {
	var rows []domain.Distribution
	if err := s.DB.WithContext(ctx).
		Where("investor_id = ?", investorID).
		Order("year DESC, month DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
