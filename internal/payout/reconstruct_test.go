package payout

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Reconstructing from persisted raw facts reproduces the originally
// calculated payout within a cent.
func TestReconstruct_RoundTrip(t *testing.T) {
	res, err := Calculate(Input{
		TotalBarrels:      dec("1000"),
		PricePerBarrel:    dec("70"),
		OperatingExpenses: dec("800"),
		Stakes: []Stake{
			{InvestorID: uuid.New(), OwnershipFraction: dec("0.6")},
			{InvestorID: uuid.New(), OwnershipFraction: dec("0.4")},
		},
	})
	require.NoError(t, err)

	for _, d := range res.Distributions {
		agg := StoredAggregate{
			PayoutAmount:    d.Amount,
			PercentageOwned: d.OwnershipFraction.Mul(hundred),
			Production:      &res.TotalBarrels,
			PricePerBarrel:  decPtr("70"),
			SeveranceTax:    &res.SeveranceTax,
			Expenses:        &res.OperatingExpenses,
		}
		br := Reconstruct(agg)
		assert.False(t, br.Degraded)
		assert.True(t, br.GrossRevenue.Equal(res.GrossRevenue))
		assert.True(t, br.NetInvestorPayout.Equal(res.NetInvestorPayout))
		diff := br.DistributionAmount.Sub(d.Amount).Abs()
		assert.True(t, diff.LessThanOrEqual(dec("0.01")), "diff %s", diff)
	}
}

// Severance tax recomputed from the fixed rate when not stored.
func TestReconstruct_RecomputesSeverance(t *testing.T) {
	br := Reconstruct(StoredAggregate{
		PayoutAmount:    dec("29571"),
		PercentageOwned: dec("60"),
		Production:      decPtr("1000"),
		PricePerBarrel:  decPtr("70"),
		Expenses:        decPtr("800"),
	})
	assert.False(t, br.Degraded)
	assert.True(t, br.SeveranceTax.Equal(dec("3220")), "severance %s", br.SeveranceTax)
	assert.True(t, br.DistributionAmount.Equal(dec("29571")), "amount %s", br.DistributionAmount)
}

// Missing raw facts degrade to the stored payout figure instead of failing.
func TestReconstruct_DegradesWithoutRawFacts(t *testing.T) {
	br := Reconstruct(StoredAggregate{
		PayoutAmount:    dec("1234.56"),
		PercentageOwned: dec("25"),
	})
	assert.True(t, br.Degraded)
	assert.True(t, br.DistributionAmount.Equal(dec("1234.56")))
	assert.True(t, br.GrossRevenue.IsZero())
}

func TestReconstruct_MissingPriceDegrades(t *testing.T) {
	br := Reconstruct(StoredAggregate{
		PayoutAmount:    dec("500"),
		PercentageOwned: dec("50"),
		Production:      decPtr("1000"),
	})
	assert.True(t, br.Degraded)
	assert.True(t, br.DistributionAmount.Equal(dec("500")))
}

// Missing expenses are treated as zero, not as a degradation.
func TestReconstruct_NilExpensesZero(t *testing.T) {
	br := Reconstruct(StoredAggregate{
		PayoutAmount:    dec("50085"),
		PercentageOwned: dec("100"),
		Production:      decPtr("1000"),
		PricePerBarrel:  decPtr("70"),
	})
	assert.False(t, br.Degraded)
	assert.True(t, br.OperatingExpenses.IsZero())
	assert.True(t, br.DistributionAmount.Equal(dec("50085")), "amount %s", br.DistributionAmount)
}
