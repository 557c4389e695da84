package rates

import (
	"testing"

	"github.com/de-tools/finance-atlas/pkg/models/domain"
	"github.com/de-tools/finance-atlas/pkg/services/amortization"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveEquivalentRate_PublishedPlan(t *testing.T) {
	rate, err := SolveEquivalentRate(1196.00, 80.73, 18)

	require.NoError(t, err)
	assert.InDelta(t, 0.0213560383, rate.PeriodicRate, 1e-8)
	assert.InDelta(t, 25.6272460, rate.AnnualPercent, 1e-5)
	assert.Positive(t, rate.Iterations)
	assert.LessOrEqual(t, rate.Iterations, 200)
}

func TestSolveEquivalentRate_KnownPlans(t *testing.T) {
	tests := []struct {
		name     string
		purchase float64
		payment  float64
		periods  int
		periodic float64
		annual   float64
	}{
		{
			name:     "18 months of 80.73 for 1196.00",
			purchase: 1196.00,
			payment:  80.73,
			periods:  18,
			periodic: 0.0213560383,
			annual:   25.6272460,
		},
		{
			name:     "24 months of 129.14 for 2365.20",
			purchase: 2365.20,
			payment:  129.14,
			periods:  24,
			periodic: 0.0228609054,
			annual:   27.4330865,
		},
		{
			name:     "18 months of 13.51 for 200.00",
			purchase: 200.00,
			payment:  13.51,
			periods:  18,
			periodic: 0.0214407177,
			annual:   25.7288612,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, err := SolveEquivalentRate(tt.purchase, tt.payment, tt.periods)

			require.NoError(t, err)
			assert.InDelta(t, tt.periodic, rate.PeriodicRate, 1e-8)
			assert.InDelta(t, tt.annual, rate.AnnualPercent, 1e-5)
		})
	}
}

func TestSolveEquivalentRate_MonotoneInPayment(t *testing.T) {
	r1, err := SolveEquivalentRate(1200.00, 105.00, 12)
	require.NoError(t, err)
	r2, err := SolveEquivalentRate(1200.00, 110.00, 12)
	require.NoError(t, err)
	r3, err := SolveEquivalentRate(1200.00, 120.00, 12)
	require.NoError(t, err)

	assert.Less(t, r1.PeriodicRate, r2.PeriodicRate)
	assert.Less(t, r2.PeriodicRate, r3.PeriodicRate)

	assert.InDelta(t, 9.1046205, r1.AnnualPercent, 1e-3)
	assert.InDelta(t, 17.9719973, r2.AnnualPercent, 1e-3)
	assert.InDelta(t, 35.0742488, r3.AnnualPercent, 1e-3)
}

func TestSolveEquivalentRate_ZeroRate(t *testing.T) {
	rate, err := SolveEquivalentRate(1200.00, 100.00, 12)

	require.NoError(t, err)
	assert.Zero(t, rate.PeriodicRate)
	assert.Zero(t, rate.AnnualPercent)
	assert.Zero(t, rate.Iterations)
}

func TestSolveEquivalentRate_PaymentsTooSmall(t *testing.T) {
	_, err := SolveEquivalentRate(1200.00, 99.00, 12)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidPlan)
}

func TestSolveEquivalentRate_InvalidInputs(t *testing.T) {
	tests := []struct {
		name     string
		purchase float64
		payment  float64
		periods  int
	}{
		{name: "zero purchase", purchase: 0, payment: 10, periods: 12},
		{name: "negative payment", purchase: 100, payment: -10, periods: 12},
		{name: "no periods", purchase: 100, payment: 10, periods: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SolveEquivalentRate(tt.purchase, tt.payment, tt.periods)
			assert.ErrorIs(t, err, domain.ErrInvalidPlan)
		})
	}
}

func TestSolveEquivalentRate_BeyondBracket(t *testing.T) {
	// 12 payments of 1000 against a 10.00 purchase prices out above 1000%
	// per period.
	_, err := SolveEquivalentRate(10.00, 1000.00, 12)

	require.Error(t, err)
	var convErr *ConvergenceError
	require.ErrorAs(t, err, &convErr)
	assert.InDelta(t, maxPeriodicRate, convErr.Best, 1e-12)
	assert.InDelta(t, 90.0, convErr.Residual, 1e-6)
}

func TestSolveEquivalentRate_RoundTripsThroughSchedule(t *testing.T) {
	rate, err := SolveEquivalentRate(1196.00, 80.73, 18)
	require.NoError(t, err)

	mode := domain.ProportionalInterest{MonthlyRate: rate.PeriodicRate}
	steps, err := amortization.Simulate(1196.00, mode, 80.73, 18)

	require.NoError(t, err)
	require.Len(t, steps, 18)
	assert.Zero(t, steps[17].BalanceAfter)
}

func TestPresentValue(t *testing.T) {
	assert.InDelta(t, 1200.0, PresentValue(0, 100.0, 12), 1e-9)
	assert.Less(t, PresentValue(0.02, 100.0, 12), PresentValue(0.01, 100.0, 12))
}
