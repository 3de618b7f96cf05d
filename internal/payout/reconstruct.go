package payout

import (
	"github.com/shopspring/decimal"
)

// StoredAggregate is what the persistence layer can give back for one
// investor's month: the persisted payout plus whatever raw facts were
// captured at calculation time. Pointer fields are nil for records predating
// raw-fact capture.
type StoredAggregate struct {
	PayoutAmount    decimal.Decimal
	PercentageOwned decimal.Decimal // 0..100 snapshot
	Production      *decimal.Decimal
	PricePerBarrel  *decimal.Decimal
	SeveranceTax    *decimal.Decimal
	Expenses        *decimal.Decimal
}

// Breakdown is the reconstructed waterfall for a statement. When Degraded is
// true the raw facts were missing and DistributionAmount falls back to the
// persisted payout figure; stage values are zero in that case.
type Breakdown struct {
	GrossRevenue       decimal.Decimal `json:"gross_revenue"`
	SeveranceTax       decimal.Decimal `json:"severance_tax"`
	NetRevenue         decimal.Decimal `json:"net_revenue"`
	InvestorPool       decimal.Decimal `json:"investor_pool"`
	OperatingExpenses  decimal.Decimal `json:"operating_expenses"`
	NetInvestorPayout  decimal.Decimal `json:"net_investor_payout"`
	PercentageOwned    decimal.Decimal `json:"percentage_owned"`
	DistributionAmount decimal.Decimal `json:"distribution_amount"`
	PersistedAmount    decimal.Decimal `json:"persisted_amount"`
	Degraded           bool            `json:"degraded"`
}

// Reconstruct re-derives the waterfall from a persisted aggregate so a
// statement shows the same figures the original calculation produced.
// It never fails: statements must always render, so missing raw facts
// degrade to the stored payout amount instead of erroring.
func Reconstruct(agg StoredAggregate) Breakdown {
	out := Breakdown{
		PercentageOwned: agg.PercentageOwned,
		PersistedAmount: agg.PayoutAmount,
	}

	if agg.Production == nil || agg.PricePerBarrel == nil {
		out.DistributionAmount = agg.PayoutAmount
		out.Degraded = true
		return out
	}

	gross := agg.PricePerBarrel.Mul(*agg.Production)
	severance := gross.Mul(SeveranceTaxRate)
	if agg.SeveranceTax != nil {
		severance = *agg.SeveranceTax
	}
	net := gross.Sub(severance)
	pool := net.Mul(InvestorPoolShare)

	expenses := decimal.Zero
	if agg.Expenses != nil {
		expenses = *agg.Expenses
	}
	netPayout := pool.Sub(expenses)

	out.GrossRevenue = gross
	out.SeveranceTax = severance
	out.NetRevenue = net
	out.InvestorPool = pool
	out.OperatingExpenses = expenses
	out.NetInvestorPayout = netPayout
	out.DistributionAmount = netPayout.Mul(agg.PercentageOwned.Div(hundred))
	return out
}
