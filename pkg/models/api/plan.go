package api

// PaymentPlan mirrors the plan shape used in config files.
type PaymentPlan struct {
	PurchaseAmount float64 `json:"purchase_amount"`
	NumPayments    int     `json:"num_payments"`
	MonthlyPayment float64 `json:"monthly_payment"`
	MonthlyFee     float64 `json:"monthly_fee"`
}

// AnalyzeRequest asks for a full analysis of one plan. A missing or zero
// RegularAPR falls back to the server default.
type AnalyzeRequest struct {
	RegularAPR float64     `json:"regular_apr,omitempty"`
	Plan       PaymentPlan `json:"plan"`
}

// SolveRequest asks only for the plan's equivalent interest rate.
type SolveRequest struct {
	Plan PaymentPlan `json:"plan"`
}

type SolvedRate struct {
	PeriodicRate  float64 `json:"periodic_rate"`
	AnnualPercent float64 `json:"annual_percent"`
	Iterations    int     `json:"iterations"`
}

type ComparisonRow struct {
	Month                int     `json:"month"`
	Principal            float64 `json:"principal"`
	Fee                  float64 `json:"fee"`
	Balance              float64 `json:"balance"`
	EffectiveMonthlyRate float64 `json:"effective_monthly_rate"`
	EffectiveAnnualRate  float64 `json:"effective_annual_rate"`
	RegularInterest      float64 `json:"regular_interest"`
	Difference           float64 `json:"difference"`
	HighCost             bool    `json:"high_cost"`
}

type PayoffRecommendation struct {
	PayoffAfterMonth      int     `json:"payoff_after_month"`
	RemainingBalance      float64 `json:"remaining_balance"`
	HighCostMonthsAvoided int     `json:"high_cost_months_avoided"`
}

type ReferenceSummary struct {
	Periods       int     `json:"periods"`
	TotalInterest float64 `json:"total_interest"`
	TotalCost     float64 `json:"total_cost"`
}

type CostMetrics struct {
	SimpleAnnualPct    float64 `json:"simple_annual_pct"`
	FeePerMonthPct     float64 `json:"fee_per_month_pct"`
	AvgBalance         float64 `json:"avg_balance"`
	EffectiveAnnualPct float64 `json:"effective_annual_pct"`
	FeeOnlyAnnualPct   float64 `json:"fee_only_annual_pct"`
}

type PlanAnalysis struct {
	Plan           PaymentPlan           `json:"plan"`
	RegularAPR     float64               `json:"regular_apr"`
	TotalCost      float64               `json:"total_cost"`
	TotalFees      float64               `json:"total_fees"`
	EquivalentRate SolvedRate            `json:"equivalent_rate"`
	Reference      ReferenceSummary      `json:"reference"`
	Difference     float64               `json:"difference"`
	Rows           []ComparisonRow       `json:"rows"`
	HighCostMonths []int                 `json:"high_cost_months"`
	Recommendation *PayoffRecommendation `json:"recommendation,omitempty"`
	Metrics        CostMetrics           `json:"metrics"`
}
