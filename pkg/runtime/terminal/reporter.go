package terminal

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/template"

	"github.com/de-tools/finance-atlas/pkg/models/domain"
)

// Reporter renders plan analyses to the console in a formatted text form
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(a *domain.PlanAnalysis) error {
	money := func(v float64) string { return fmt.Sprintf("$%.2f", v) }
	pct := func(v float64) string { return fmt.Sprintf("%.2f%%", v) }

	funcMap := template.FuncMap{
		"money": money,
		"pct":   pct,
		"months": func(months []int) string {
			parts := make([]string, 0, len(months))
			for _, m := range months {
				parts = append(parts, strconv.Itoa(m))
			}
			return strings.Join(parts, ", ")
		},
		"verdict": func(diff float64) string {
			if diff < 0 {
				return fmt.Sprintf("The fixed plan saves %s compared to the regular loan.", money(-diff))
			}
			return fmt.Sprintf("The fixed plan costs %s more than the regular loan.", money(diff))
		},
		"separator": func() string {
			return "+" + strings.Repeat("-", 7) +
				"+" + strings.Repeat("-", 12) +
				"+" + strings.Repeat("-", 10) +
				"+" + strings.Repeat("-", 12) +
				"+" + strings.Repeat("-", 13) +
				"+" + strings.Repeat("-", 12) +
				"+" + strings.Repeat("-", 14) +
				"+" + strings.Repeat("-", 28) + "+"
		},
		"headerRow": func() string {
			return fmt.Sprintf("| %5s | %10s | %8s | %10s | %11s | %10s | %12s | %-26s |",
				"Month", "Principal", "Fee", "Balance", "Eff. /mo", "Eff. APR", "Reg. Int.", "Note")
		},
		"scheduleRow": func(row domain.ComparisonRow) string {
			note := ""
			if row.HighCost {
				note = "*"
			}
			if a.Recommendation != nil && row.Month == a.Recommendation.PayoffAfterMonth {
				note = "<- optimal payoff point"
			}
			return fmt.Sprintf("| %5d | %10s | %8s | %10s | %11s | %10s | %12s | %-26s |",
				row.Month,
				money(row.Principal),
				money(row.Fee),
				money(row.Balance),
				pct(row.EffectiveMonthlyRate),
				pct(row.EffectiveAnnualRate),
				money(row.RegularInterest),
				note)
		},
	}

	tmpl := `
--- Fixed Payment Plan Analysis ---
Purchase Amount: {{money .Plan.PurchaseAmount}}
Number of Payments: {{.Plan.NumPayments}}
Monthly Payment: {{money .Plan.MonthlyPayment}}
Monthly Fee: {{money .Plan.MonthlyFee}}
Total Cost: {{money .TotalCost}}
Total Fees: {{money .TotalFees}}
Equivalent APR: {{pct .EquivalentRate.AnnualPercent}}

--- Comparison with Regular {{pct .RegularAPR}} APR ---
Regular Interest Paid: {{money .Reference.TotalInterest}}
Regular Total Cost: {{money .Reference.TotalCost}}
Regular Payments Needed: {{.Reference.Periods}}
Difference (Fixed Plan - Regular): {{money .Difference}}
{{verdict .Difference}}

--- Additional Analysis ---
Simple interest rate equivalent: {{pct .Metrics.SimpleAnnualPct}} APR
Monthly fee as % of purchase: {{pct .Metrics.FeePerMonthPct}} per month
Effective rate on average balance {{money .Metrics.AvgBalance}}: {{pct .Metrics.EffectiveAnnualPct}} APR (approximate)
Fee-only equivalent rate on average balance: {{pct .Metrics.FeeOnlyAnnualPct}} APR (approximate)

--- Balance Schedule and Optimal Payoff ---
{{separator}}
{{headerRow}}
{{separator}}
{{range .Rows}}{{scheduleRow .}}
{{end}}{{separator}}
{{if .HighCostMonths}}
Months where the fee exceeds regular interest: {{months .HighCostMonths}}
{{end}}{{with .Recommendation}}
--- Optimal Payoff Recommendation ---
Pay off the remaining {{money .RemainingBalance}} right after month {{.PayoffAfterMonth}}.
This avoids {{.HighCostMonthsAvoided}} months where the fixed fee exceeds regular interest.
{{end}}`

	t, err := template.New("analysis").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, a)
}
