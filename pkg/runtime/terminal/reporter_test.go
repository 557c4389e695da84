package terminal

import (
	"bytes"
	"testing"

	"github.com/de-tools/finance-atlas/pkg/models/domain"
	"github.com/de-tools/finance-atlas/pkg/services/analysis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporter_Handle(t *testing.T) {
	a, err := analysis.Analyze(domain.PaymentPlan{
		PurchaseAmount: 1196.00,
		NumPayments:    18,
		MonthlyPayment: 80.73,
		MonthlyFee:     14.28,
	}, 27.0)
	require.NoError(t, err)

	var buf bytes.Buffer
	reporter := NewReporter(&buf)
	require.NoError(t, reporter.Handle(a))

	out := buf.String()
	assert.Contains(t, out, "--- Fixed Payment Plan Analysis ---")
	assert.Contains(t, out, "Purchase Amount: $1196.00")
	assert.Contains(t, out, "Equivalent APR: 25.63%")
	assert.Contains(t, out, "Comparison with Regular 27.00% APR")
	assert.Contains(t, out, "Regular Payments Needed: 19")
	assert.Contains(t, out, "<- optimal payoff point")
	assert.Contains(t, out, "--- Optimal Payoff Recommendation ---")
	assert.Contains(t, out, "Pay off the remaining $664.40 right after month 8.")
}

func TestReporter_Handle_NoRecommendation(t *testing.T) {
	// A free plan never beats itself; the fee is below regular interest in
	// every month, so there is nothing to recommend.
	a, err := analysis.Analyze(domain.PaymentPlan{
		PurchaseAmount: 1196.00,
		NumPayments:    18,
		MonthlyPayment: 66.45,
		MonthlyFee:     0,
	}, 27.0)
	require.NoError(t, err)
	require.Nil(t, a.Recommendation)

	var buf bytes.Buffer
	reporter := NewReporter(&buf)
	require.NoError(t, reporter.Handle(a))

	out := buf.String()
	assert.NotContains(t, out, "--- Optimal Payoff Recommendation ---")
	assert.NotContains(t, out, "optimal payoff point")
}
