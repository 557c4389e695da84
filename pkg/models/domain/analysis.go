package domain

// ComparisonRow compares one month of a fixed-fee plan against a regular loan
// carrying the same balance. Balance is the debt remaining after the month's
// payment; both the effective rate and RegularInterest are computed on it.
type ComparisonRow struct {
	Month                int
	Principal            float64
	Fee                  float64
	Balance              float64
	EffectiveMonthlyRate float64 // percent, fee relative to remaining balance
	EffectiveAnnualRate  float64 // percent, monthly x 12
	RegularInterest      float64 // what a regular loan would charge on Balance
	Difference           float64 // Fee - RegularInterest
	HighCost             bool
}

// PayoffRecommendation identifies the last month in which the fixed fee is
// still no worse than regular interest. Settling the remaining balance right
// after that month avoids every high-cost month that follows.
type PayoffRecommendation struct {
	PayoffAfterMonth      int
	RemainingBalance      float64
	HighCostMonthsAvoided int
}

// ReferenceSummary describes repaying the same purchase as a regular
// interest-bearing loan with the same monthly payment. Periods may differ
// from the plan's term since the loan runs until the balance reaches zero.
type ReferenceSummary struct {
	Periods       int
	TotalInterest float64
	TotalCost     float64
}

// CostMetrics are supplementary annualized views of the plan's fee load.
type CostMetrics struct {
	SimpleAnnualPct    float64 // total fees over purchase, per year
	FeePerMonthPct     float64 // single fee as percent of purchase
	AvgBalance         float64 // mean balance entering each month
	EffectiveAnnualPct float64 // total fees over average balance, per year
	FeeOnlyAnnualPct   float64 // fee stream over average balance, per year
}

// PlanAnalysis is the full cost picture of one payment plan.
type PlanAnalysis struct {
	Plan           PaymentPlan
	RegularAPR     float64
	TotalCost      float64
	TotalFees      float64
	EquivalentRate SolvedRate
	Reference      ReferenceSummary
	Difference     float64 // TotalCost - Reference.TotalCost, negative favors the plan
	Rows           []ComparisonRow
	HighCostMonths []int
	Recommendation *PayoffRecommendation // nil when no month is high-cost
	Metrics        CostMetrics
}
