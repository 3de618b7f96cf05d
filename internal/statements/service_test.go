package statements

import (
	"context"
	"testing"

	"wellcrest-backend/internal/domain"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupStatementsTest(t *testing.T) (*Service, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.Project{}, &domain.Investor{},
		&domain.RevenueSummary{}, &domain.Distribution{},
	))
	return &Service{DB: db}, db
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func seedPeriod(t *testing.T, db *gorm.DB, withRawFacts bool) (domain.Investor, domain.Project) {
	investor := domain.Investor{FullName: "Ada Leigh", Email: uuid.New().String() + "@example.com"}
	require.NoError(t, db.Create(&investor).Error)
	project := domain.Project{Name: "Eagle Ford Unit " + uuid.New().String()[:8], Status: domain.ProjectStatusActive}
	require.NoError(t, db.Create(&project).Error)

	summary := domain.RevenueSummary{
		ProjectID:    project.ProjectID,
		Year:         2026,
		Month:        7,
		TotalRevenue: dec("49285.00"),
	}
	if withRawFacts {
		summary.TotalBarrels = decPtr("1000")
		summary.PricePerBarrel = decPtr("70")
		summary.SeveranceTax = decPtr("3220")
		summary.OperatingExpenses = decPtr("800")
	}
	require.NoError(t, db.Create(&summary).Error)

	row := domain.Distribution{
		ProjectID:       project.ProjectID,
		InvestorID:      investor.InvestorID,
		Year:            2026,
		Month:           7,
		PercentageOwned: dec("60"),
		PayoutAmount:    dec("29571.00"),
	}
	require.NoError(t, db.Create(&row).Error)
	return investor, project
}

func TestBuildStatement_ReconstructsWaterfall(t *testing.T) {
	s, db := setupStatementsTest(t)
	investor, project := seedPeriod(t, db, true)

	stmt, err := s.BuildStatement(context.Background(), investor.InvestorID, 2026, 7)
	require.NoError(t, err)
	assert.False(t, stmt.Degraded)
	assert.Equal(t, investor.InvestorID, stmt.InvestorID)
	assert.Equal(t, "Ada Leigh", stmt.InvestorName)
	require.Len(t, stmt.Projects, 1)

	ps := stmt.Projects[0]
	assert.Equal(t, project.ProjectID, ps.ProjectID)
	assert.Equal(t, project.Name, ps.ProjectName)
	assert.Equal(t, "70000.00", ps.Breakdown.GrossRevenue.StringFixed(2))
	assert.Equal(t, "3220.00", ps.Breakdown.SeveranceTax.StringFixed(2))
	assert.Equal(t, "66780.00", ps.Breakdown.NetRevenue.StringFixed(2))
	assert.Equal(t, "50085.00", ps.Breakdown.InvestorPool.StringFixed(2))
	assert.Equal(t, "49285.00", ps.Breakdown.NetInvestorPayout.StringFixed(2))
	assert.Equal(t, "29571.00", ps.Breakdown.DistributionAmount.StringFixed(2))
	assert.Equal(t, "29571.00", ps.Breakdown.PersistedAmount.StringFixed(2))
}

func TestBuildStatement_DegradesWithoutRawFacts(t *testing.T) {
	s, db := setupStatementsTest(t)
	investor, _ := seedPeriod(t, db, false)

	stmt, err := s.BuildStatement(context.Background(), investor.InvestorID, 2026, 7)
	require.NoError(t, err)
	assert.True(t, stmt.Degraded)
	require.Len(t, stmt.Projects, 1)

	bd := stmt.Projects[0].Breakdown
	assert.True(t, bd.Degraded)
	assert.Equal(t, "29571.00", bd.DistributionAmount.StringFixed(2))
	assert.True(t, bd.GrossRevenue.IsZero())
}

func TestBuildStatement_EmptyMonth(t *testing.T) {
	s, db := setupStatementsTest(t)
	investor, _ := seedPeriod(t, db, true)

	stmt, err := s.BuildStatement(context.Background(), investor.InvestorID, 2026, 8)
	require.NoError(t, err)
	assert.Empty(t, stmt.Projects)
	assert.False(t, stmt.Degraded)
}

func TestBuildStatement_InvestorNotFound(t *testing.T) {
	s, _ := setupStatementsTest(t)
	_, err := s.BuildStatement(context.Background(), uuid.New(), 2026, 7)
	assert.ErrorIs(t, err, ErrInvestorNotFound)
}

func TestBuildStatement_InvalidPeriod(t *testing.T) {
	s, db := setupStatementsTest(t)
	investor, _ := seedPeriod(t, db, true)
	_, err := s.BuildStatement(context.Background(), investor.InvestorID, 2026, 0)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

// Two projects in the same month, one missing raw facts: the statement
// carries both breakdowns and flags the month as degraded.
func TestBuildStatement_MixedDegradation(t *testing.T) {
	s, db := setupStatementsTest(t)
	investor, _ := seedPeriod(t, db, true)

	other := domain.Project{Name: "Bakken Unit", Status: domain.ProjectStatusActive}
	require.NoError(t, db.Create(&other).Error)
	require.NoError(t, db.Create(&domain.RevenueSummary{
		ProjectID: other.ProjectID, Year: 2026, Month: 7, TotalRevenue: dec("12000.00"),
	}).Error)
	require.NoError(t, db.Create(&domain.Distribution{
		ProjectID: other.ProjectID, InvestorID: investor.InvestorID,
		Year: 2026, Month: 7,
		PercentageOwned: dec("10"), PayoutAmount: dec("1200.00"),
	}).Error)

	stmt, err := s.BuildStatement(context.Background(), investor.InvestorID, 2026, 7)
	require.NoError(t, err)
	require.Len(t, stmt.Projects, 2)
	assert.True(t, stmt.Degraded)

	degradedCount := 0
	for _, ps := range stmt.Projects {
		if ps.Breakdown.Degraded {
			degradedCount++
		}
	}
	assert.Equal(t, 1, degradedCount)
}
