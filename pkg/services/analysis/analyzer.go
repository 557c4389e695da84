package analysis

import (
	"errors"
	"fmt"

	"github.com/de-tools/finance-atlas/pkg/models/domain"
	"github.com/de-tools/finance-atlas/pkg/services/amortization"
	"github.com/de-tools/finance-atlas/pkg/services/rates"
)

// ErrReferenceNonConvergent marks benchmark loans that never pay off.
var ErrReferenceNonConvergent = errors.New("reference plan does not amortize")

const (
	// maxReferencePeriods bounds the reference loan; a payment that cannot
	// clear the purchase inside ~83 years is treated as non-amortizing.
	maxReferencePeriods = 1000
	// balanceEpsilon is the floor below which per-month rates on the
	// remaining balance stop being meaningful and are reported as zero.
	balanceEpsilon = 0.01
)

// Analyze prices a fixed-fee plan: the equivalent interest rate hidden in its
// payment stream, a month by month comparison against a regular loan at
// regularAPR, the last month in which the flat fee is still worth paying, and
// summary cost metrics.
func Analyze(plan domain.PaymentPlan, regularAPR float64) (*domain.PlanAnalysis, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	solved, err := rates.SolveEquivalentRate(plan.PurchaseAmount, plan.MonthlyPayment, plan.NumPayments)
	if err != nil {
		return nil, fmt.Errorf("equivalent rate for plan %s: %w", plan, err)
	}

	schedule, err := amortization.Simulate(
		plan.PurchaseAmount, domain.FixedFee{Amount: plan.MonthlyFee}, plan.MonthlyPayment, plan.NumPayments)
	if err != nil {
		return nil, err
	}

	reference, err := simulateReference(plan, regularAPR)
	if err != nil {
		return nil, err
	}

	a := &domain.PlanAnalysis{
		Plan:           plan,
		RegularAPR:     regularAPR,
		TotalCost:      plan.MonthlyPayment * float64(plan.NumPayments),
		EquivalentRate: solved,
		Reference:      reference,
	}
	a.TotalFees = a.TotalCost - plan.PurchaseAmount
	a.Difference = a.TotalCost - reference.TotalCost

	buildComparison(a, schedule, regularAPR)
	a.Metrics = buildMetrics(plan, a.TotalFees, schedule)

	return a, nil
}

// simulateReference repays the purchase as a regular loan with the plan's
// monthly payment. The loan runs for as long as it takes, not for the plan's
// stated term.
func simulateReference(plan domain.PaymentPlan, regularAPR float64) (domain.ReferenceSummary, error) {
	if regularAPR <= 0 {
		return domain.ReferenceSummary{}, fmt.Errorf("%w: regular APR must be positive, got %.2f",
			ErrReferenceNonConvergent, regularAPR)
	}

	mode := domain.ProportionalInterest{MonthlyRate: regularAPR / 100 / 12}
	steps, err := amortization.Simulate(plan.PurchaseAmount, mode, plan.MonthlyPayment, maxReferencePeriods)
	if err != nil {
		return domain.ReferenceSummary{}, fmt.Errorf("%w: %v", ErrReferenceNonConvergent, err)
	}

	last := steps[len(steps)-1]
	if last.BalanceAfter > 0 {
		return domain.ReferenceSummary{}, fmt.Errorf(
			"%w: %.2f still outstanding after %d payments of %.2f at %.2f%% APR",
			ErrReferenceNonConvergent, last.BalanceAfter, maxReferencePeriods, plan.MonthlyPayment, regularAPR)
	}

	summary := domain.ReferenceSummary{Periods: len(steps)}
	for _, s := range steps {
		summary.TotalInterest += s.Charge
	}
	summary.TotalCost = plan.PurchaseAmount + summary.TotalInterest
	return summary, nil
}

func buildComparison(a *domain.PlanAnalysis, schedule []domain.AmortizationStep, regularAPR float64) {
	monthlyRate := regularAPR / 100 / 12
	threshold := regularAPR / 12 // percent per month

	rows := make([]domain.ComparisonRow, 0, len(schedule))
	lastFavorable := 0
	for _, s := range schedule {
		row := domain.ComparisonRow{
			Month:     s.Period,
			Principal: s.Principal,
			Fee:       s.Charge,
			Balance:   s.BalanceAfter,
		}
		if row.Balance > balanceEpsilon {
			row.EffectiveMonthlyRate = row.Fee / row.Balance * 100
			row.EffectiveAnnualRate = row.EffectiveMonthlyRate * 12
		}
		row.RegularInterest = row.Balance * monthlyRate
		row.Difference = row.Fee - row.RegularInterest
		row.HighCost = row.EffectiveMonthlyRate > threshold

		if row.Balance > 0 && row.Fee <= row.RegularInterest {
			lastFavorable = row.Month
		}
		rows = append(rows, row)
	}

	a.Rows = rows
	for _, r := range rows {
		if r.HighCost {
			a.HighCostMonths = append(a.HighCostMonths, r.Month)
		}
	}
	if len(a.HighCostMonths) == 0 {
		return
	}

	rec := &domain.PayoffRecommendation{PayoffAfterMonth: lastFavorable}
	if lastFavorable >= 1 {
		rec.RemainingBalance = rows[lastFavorable-1].Balance
	} else {
		rec.RemainingBalance = a.Plan.PurchaseAmount
	}
	for _, m := range a.HighCostMonths {
		if m > lastFavorable {
			rec.HighCostMonthsAvoided++
		}
	}
	a.Recommendation = rec
}

func buildMetrics(plan domain.PaymentPlan, totalFees float64, schedule []domain.AmortizationStep) domain.CostMetrics {
	years := float64(plan.NumPayments) / 12

	var sum float64
	for _, s := range schedule {
		sum += s.BalanceBefore
	}
	avg := sum / float64(len(schedule))

	return domain.CostMetrics{
		SimpleAnnualPct:    totalFees / plan.PurchaseAmount / years * 100,
		FeePerMonthPct:     plan.MonthlyFee / plan.PurchaseAmount * 100,
		AvgBalance:         avg,
		EffectiveAnnualPct: totalFees / avg / years * 100,
		FeeOnlyAnnualPct:   plan.MonthlyFee * float64(plan.NumPayments) / avg / years * 100,
	}
}
