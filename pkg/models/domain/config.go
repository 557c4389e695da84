package domain

import "fmt"

// DefaultRegularAPR is the benchmark loan rate applied when a config or
// request does not name one.
const DefaultRegularAPR = 27.0

// AnalysisConfig is a set of plans to analyze against one benchmark APR.
type AnalysisConfig struct {
	RegularAPR   float64       `json:"regular_apr" mapstructure:"regular_apr"`
	PaymentPlans []PaymentPlan `json:"payment_plans" mapstructure:"payment_plans"`
}

// OutputFormat selects how an analysis is rendered on the terminal.
type OutputFormat string

const (
	FormatConsole  OutputFormat = "console"
	FormatMarkdown OutputFormat = "markdown"
)

// Profile is a named defaults set from the user's profile file.
type Profile struct {
	Name       string
	RegularAPR float64
	Format     OutputFormat
}

func (p Profile) String() string {
	return fmt.Sprintf("%s (apr %.2f%%)", p.Name, p.RegularAPR)
}

// SamplePlans returns the built-in demonstration plans used when no config
// file is supplied.
func SamplePlans() []PaymentPlan {
	return []PaymentPlan{
		{PurchaseAmount: 1196.00, NumPayments: 18, MonthlyPayment: 80.73, MonthlyFee: 14.28},
		{PurchaseAmount: 2365.20, NumPayments: 24, MonthlyPayment: 129.14, MonthlyFee: 30.59},
		{PurchaseAmount: 200.00, NumPayments: 18, MonthlyPayment: 13.51, MonthlyFee: 2.39},
	}
}
