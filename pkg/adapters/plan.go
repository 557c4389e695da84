package adapters

import (
	"github.com/de-tools/finance-atlas/pkg/models/api"
	"github.com/de-tools/finance-atlas/pkg/models/domain"
)

func MapPaymentPlanApiToDomain(p api.PaymentPlan) domain.PaymentPlan {
	return domain.PaymentPlan{
		PurchaseAmount: p.PurchaseAmount,
		NumPayments:    p.NumPayments,
		MonthlyPayment: p.MonthlyPayment,
		MonthlyFee:     p.MonthlyFee,
	}
}

func MapPaymentPlanDomainToApi(p domain.PaymentPlan) api.PaymentPlan {
	return api.PaymentPlan{
		PurchaseAmount: p.PurchaseAmount,
		NumPayments:    p.NumPayments,
		MonthlyPayment: p.MonthlyPayment,
		MonthlyFee:     p.MonthlyFee,
	}
}

func MapSolvedRateDomainToApi(r domain.SolvedRate) api.SolvedRate {
	return api.SolvedRate{
		PeriodicRate:  r.PeriodicRate,
		AnnualPercent: r.AnnualPercent,
		Iterations:    r.Iterations,
	}
}

func MapComparisonRowDomainToApi(r domain.ComparisonRow) api.ComparisonRow {
	return api.ComparisonRow{
		Month:                r.Month,
		Principal:            r.Principal,
		Fee:                  r.Fee,
		Balance:              r.Balance,
		EffectiveMonthlyRate: r.EffectiveMonthlyRate,
		EffectiveAnnualRate:  r.EffectiveAnnualRate,
		RegularInterest:      r.RegularInterest,
		Difference:           r.Difference,
		HighCost:             r.HighCost,
	}
}

func MapPlanAnalysisDomainToApi(a *domain.PlanAnalysis) api.PlanAnalysis {
	res := api.PlanAnalysis{
		Plan:           MapPaymentPlanDomainToApi(a.Plan),
		RegularAPR:     a.RegularAPR,
		TotalCost:      a.TotalCost,
		TotalFees:      a.TotalFees,
		EquivalentRate: MapSolvedRateDomainToApi(a.EquivalentRate),
		Reference: api.ReferenceSummary{
			Periods:       a.Reference.Periods,
			TotalInterest: a.Reference.TotalInterest,
			TotalCost:     a.Reference.TotalCost,
		},
		Difference:     a.Difference,
		Rows:           make([]api.ComparisonRow, 0, len(a.Rows)),
		HighCostMonths: make([]int, 0, len(a.HighCostMonths)),
		Metrics: api.CostMetrics{
			SimpleAnnualPct:    a.Metrics.SimpleAnnualPct,
			FeePerMonthPct:     a.Metrics.FeePerMonthPct,
			AvgBalance:         a.Metrics.AvgBalance,
			EffectiveAnnualPct: a.Metrics.EffectiveAnnualPct,
			FeeOnlyAnnualPct:   a.Metrics.FeeOnlyAnnualPct,
		},
	}
	for _, row := range a.Rows {
		res.Rows = append(res.Rows, MapComparisonRowDomainToApi(row))
	}
	res.HighCostMonths = append(res.HighCostMonths, a.HighCostMonths...)
	if a.Recommendation != nil {
		res.Recommendation = &api.PayoffRecommendation{
			PayoffAfterMonth:      a.Recommendation.PayoffAfterMonth,
			RemainingBalance:      a.Recommendation.RemainingBalance,
			HighCostMonthsAvoided: a.Recommendation.HighCostMonthsAvoided,
		}
	}
	return res
}
