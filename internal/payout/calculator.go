package payout

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Rates applied by the revenue waterfall. These are part of the statement
// contract with investors; changing either requires a product decision, not
// a code tweak elsewhere.
var (
	// SeveranceTaxRate is deducted from gross revenue before any split (4.6%).
	SeveranceTaxRate = decimal.RequireFromString("0.046")

	// InvestorPoolShare is the portion of net revenue earmarked for investor
	// distributions (75%); the remainder is company/royalty revenue.
	InvestorPoolShare = decimal.RequireFromString("0.75")
)

var one = decimal.NewFromInt(1)
var hundred = decimal.NewFromInt(100)

// Stake is one investor's position in the project being processed.
type Stake struct {
	InvestorID        uuid.UUID
	OwnershipFraction decimal.Decimal // in [0,1]
	// BaseBarrelsOverride substitutes the project-wide barrel total for this
	// investor's share computation (partial-month entry, working-interest
	// adjustments). Nil means use the project total.
	BaseBarrelsOverride *decimal.Decimal
}

// Input is one project-month of raw production facts plus the ownership
// ledger snapshot. Calculate treats it as read-only.
type Input struct {
	TotalBarrels      decimal.Decimal
	PricePerBarrel    decimal.Decimal
	OperatingExpenses decimal.Decimal
	Stakes            []Stake
}

// Distribution is one investor's computed payout for the month.
type Distribution struct {
	InvestorID        uuid.UUID       `json:"investor_id"`
	OwnershipFraction decimal.Decimal `json:"ownership_fraction"`
	Barrels           decimal.Decimal `json:"barrels"`
	Share             decimal.Decimal `json:"share"`
	Amount            decimal.Decimal `json:"amount"`
}

// Result carries every waterfall stage so callers can render the full
// breakdown without re-deriving anything.
type Result struct {
	GrossRevenue       decimal.Decimal `json:"gross_revenue"`
	SeveranceTax       decimal.Decimal `json:"severance_tax"`
	NetRevenue         decimal.Decimal `json:"net_revenue"`
	InvestorPool       decimal.Decimal `json:"investor_pool"`
	CompanyRevenue     decimal.Decimal `json:"company_revenue"`
	OperatingExpenses  decimal.Decimal `json:"operating_expenses"`
	NetInvestorPayout  decimal.Decimal `json:"net_investor_payout"`
	TotalBarrels       decimal.Decimal `json:"total_barrels"`
	SumInvestorBarrels decimal.Decimal `json:"sum_investor_barrels"`
	Distributions      []Distribution  `json:"distributions"`
}

// Calculate runs the five-stage revenue waterfall and splits the resulting
// pool across stakes by barrel-weighted share. Pure: identical input yields
// identical output, and the input is never mutated.
//
// Barrel weighting (rather than applying ownership percentage directly)
// keeps the split self-normalizing when an admin overrides one investor's
// base barrels: the shares always sum to 1 and the distributed amounts sum
// to NetInvestorPayout.
//
// NetInvestorPayout may be negative when operating expenses exceed the
// investor pool; it is passed through unclamped for admin review.
func Calculate(in Input) (*Result, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	gross := in.TotalBarrels.Mul(in.PricePerBarrel)
	severance := gross.Mul(SeveranceTaxRate)
	net := gross.Sub(severance)
	pool := net.Mul(InvestorPoolShare)
	company := net.Mul(one.Sub(InvestorPoolShare))
	netPayout := pool.Sub(in.OperatingExpenses)

	distributions := make([]Distribution, 0, len(in.Stakes))
	sumBarrels := decimal.Zero
	for _, stake := range in.Stakes {
		base := in.TotalBarrels
		if stake.BaseBarrelsOverride != nil {
			base = *stake.BaseBarrelsOverride
		}
		barrels := base.Mul(stake.OwnershipFraction)
		sumBarrels = sumBarrels.Add(barrels)
		distributions = append(distributions, Distribution{
			InvestorID:        stake.InvestorID,
			OwnershipFraction: stake.OwnershipFraction,
			Barrels:           barrels,
		})
	}

	for i := range distributions {
		if sumBarrels.IsPositive() {
			distributions[i].Share = distributions[i].Barrels.Div(sumBarrels)
		} else {
			distributions[i].Share = decimal.Zero
		}
		distributions[i].Amount = netPayout.Mul(distributions[i].Share)
	}

	return &Result{
		GrossRevenue:       gross,
		SeveranceTax:       severance,
		NetRevenue:         net,
		InvestorPool:       pool,
		CompanyRevenue:     company,
		OperatingExpenses:  in.OperatingExpenses,
		NetInvestorPayout:  netPayout,
		TotalBarrels:       in.TotalBarrels,
		SumInvestorBarrels: sumBarrels,
		Distributions:      distributions,
	}, nil
}

func validate(in Input) error {
	if in.TotalBarrels.IsNegative() {
		return validationErr("total_barrels", "must not be negative")
	}
	if in.PricePerBarrel.IsNegative() {
		return validationErr("price_per_barrel", "must not be negative")
	}
	if in.OperatingExpenses.IsNegative() {
		return validationErr("operating_expenses", "must not be negative")
	}
	for _, stake := range in.Stakes {
		if stake.InvestorID == uuid.Nil {
			return validationErr("investor_id", "is required on every stake")
		}
		if stake.OwnershipFraction.IsNegative() || stake.OwnershipFraction.GreaterThan(one) {
			return validationErr("ownership_fraction", "must be between 0 and 1")
		}
		if stake.BaseBarrelsOverride != nil && stake.BaseBarrelsOverride.IsNegative() {
			return validationErr("base_barrels_override", "must not be negative")
		}
	}
	return nil
}
