package statements

import (
	"context"
	"errors"

	"wellcrest-backend/internal/domain"
	"wellcrest-backend/internal/payout"
	"wellcrest-backend/internal/pkg/validation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvestorNotFound = errors.New("Investor not found")
	ErrInvalidPeriod    = errors.New("Invalid statement period")
)

// Service reconstructs distribution statements from persisted aggregates.
type Service struct {
	DB *gorm.DB
}

// ProjectStatement is the reconstructed waterfall for one project on a
// statement.
type ProjectStatement struct {
	ProjectID   uuid.UUID        `json:"project_id"`
	ProjectName string           `json:"project_name"`
	Breakdown   payout.Breakdown `json:"breakdown"`
}

// Statement is one investor-month across all projects the investor holds
// stakes in. Degraded is true when any project breakdown fell back to stored
// aggregates because raw facts were missing.
type Statement struct {
	InvestorID   uuid.UUID          `json:"investor_id"`
	InvestorName string             `json:"investor_name"`
	Email        string             `json:"email"`
	Year         int                `json:"year"`
	Month        int                `json:"month"`
	Projects     []ProjectStatement `json:"projects"`
	Degraded     bool               `json:"degraded"`
}

// BuildStatement reconstructs the statement for (investor, year, month).
// Reconstruction itself never fails; only missing investor or storage errors
// surface. A month with no distributions yields an empty Projects list.
func (s *Service) BuildStatement(ctx context.Context, investorID uuid.UUID, year, month int) (*Statement, error) {
	if !validation.IsValidYear(year) || !validation.IsValidMonth(month) {
		return nil, ErrInvalidPeriod
	}

	var investor domain.Investor
	if err := s.DB.WithContext(ctx).Where("investor_id = ?", investorID).First(&investor).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrInvestorNotFound
		}
		return nil, err
	}

	var rows []domain.Distribution
	if err := s.DB.WithContext(ctx).
		Where("investor_id = ? AND year = ? AND month = ?", investorID, year, month).
		Order("project_id").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	stmt := &Statement{
		InvestorID:   investor.InvestorID,
		InvestorName: investor.FullName,
		Email:        investor.Email,
		Year:         year,
		Month:        month,
		Projects:     make([]ProjectStatement, 0, len(rows)),
	}

	for _, row := range rows {
		agg := payout.StoredAggregate{
			PayoutAmount:    row.PayoutAmount,
			PercentageOwned: row.PercentageOwned,
		}

		// Raw facts come from the period's revenue summary when captured.
		var summary domain.RevenueSummary
		err := s.DB.WithContext(ctx).
			Where("project_id = ? AND year = ? AND month = ?", row.ProjectID, year, month).
			First(&summary).Error
		if err == nil {
			agg.Production = summary.TotalBarrels
			agg.PricePerBarrel = summary.PricePerBarrel
			agg.SeveranceTax = summary.SeveranceTax
			agg.Expenses = summary.OperatingExpenses
		}

		projectName := ""
		var project domain.Project
		if err := s.DB.WithContext(ctx).Where("project_id = ?", row.ProjectID).First(&project).Error; err == nil {
			projectName = project.Name
		}

		breakdown := payout.Reconstruct(agg)
		if breakdown.Degraded {
			stmt.Degraded = true
		}
		stmt.Projects = append(stmt.Projects, ProjectStatement{
			ProjectID:   row.ProjectID,
			ProjectName: projectName,
			Breakdown:   breakdown,
		})
	}

	return stmt, nil
}
