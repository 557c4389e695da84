package export

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
	assert.Contains(t, out, "# Fixed Payment Plan Analysis")
	assert.Contains(t, out, "## Comparison with Regular 27.00% APR")
	assert.Contains(t, out, "- Equivalent APR: 25.63%")
	assert.Contains(t, out, "| Month | Principal | Fee | Balance |")
	assert.Contains(t, out, "**optimal payoff point**")
	assert.Contains(t, out, "## Optimal Payoff Recommendation")
	assert.Contains(t, out, "high cost")
}
